package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load parses a form schema document. JSON is tried first (job records store
// schemas as JSON strings); anything that is not valid JSON is parsed as YAML,
// which is how schemas are typically authored on disk. The parsed form is
// structurally validated before being returned.
//
// Errors wrap [ErrInvalidSchema].
func Load(document []byte) (*Form, error) {
	if len(strings.TrimSpace(string(document))) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidSchema)
	}

	var form Form
	if err := json.Unmarshal(document, &form); err != nil {
		yamlErr := yaml.Unmarshal(document, &form)
		if yamlErr != nil {
			return nil, fmt.Errorf("%w: not parseable as JSON (%v) or YAML (%v)", ErrInvalidSchema, err, yamlErr)
		}
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}
	return &form, nil
}

// LoadFile reads and parses a form schema document from path.
func LoadFile(path string) (*Form, error) {
	document, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	return Load(document)
}
