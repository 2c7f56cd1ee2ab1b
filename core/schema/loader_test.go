package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const jsonDocument = `{
  "form_id": "call_review_v2",
  "fields": [
    {"field_id": "agent_name", "field_name": "Agent Name", "field_type": "text", "required": true},
    {"field_id": "outcome", "field_name": "Call Outcome", "field_type": "select", "options": ["resolved", "escalated", "follow_up"]}
  ]
}`

const yamlDocument = `form_id: call_review_v2
fields:
  - field_id: agent_name
    field_name: Agent Name
    field_type: text
    required: true
  - field_id: outcome
    field_name: Call Outcome
    field_type: select
    options: [resolved, escalated, follow_up]
`

func TestLoad_JSONAndYAMLAreEquivalent(t *testing.T) {
	fromJSON, err := Load([]byte(jsonDocument))
	if err != nil {
		t.Fatalf("Load(json) failed: %v", err)
	}
	fromYAML, err := Load([]byte(yamlDocument))
	if err != nil {
		t.Fatalf("Load(yaml) failed: %v", err)
	}

	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Errorf("JSON and YAML documents loaded differently (-json +yaml):\n%s", diff)
	}
	if fromJSON.ID != "call_review_v2" {
		t.Errorf("form id = %q, want call_review_v2", fromJSON.ID)
	}
	if !fromJSON.Fields[0].Required {
		t.Error("agent_name should be required")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"empty document", "   \n"},
		{"fields not a sequence", `{"form_id": "f", "fields": "oops"}`},
		{"fields is an object", `{"form_id": "f", "fields": {"field_id": "a"}}`},
		{"duplicate ids", `{"form_id": "f", "fields": [{"field_id": "a", "field_type": "text"}, {"field_id": "a", "field_type": "text"}]}`},
		{"radio without options", `{"form_id": "f", "fields": [{"field_id": "a", "field_type": "radio"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.document))
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !errors.Is(err, ErrInvalidSchema) {
				t.Errorf("Load() error = %v, want wrapping ErrInvalidSchema", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(yamlDocument), 0o600); err != nil {
		t.Fatal(err)
	}

	form, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if len(form.Fields) != 2 {
		t.Errorf("LoadFile() loaded %d fields, want 2", len(form.Fields))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile() on a missing file succeeded, want error")
	}
}
