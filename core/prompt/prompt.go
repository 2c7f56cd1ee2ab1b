package prompt

import (
	"fmt"
	"strings"

	"github.com/formpipe/formpipe/core/schema"
)

// fieldIndent aligns field lines inside the example responses object.
const fieldIndent = ",\n            "

// Build constructs the extraction prompt for one pipeline invocation.
//
// Assembly order is fixed: optional definitions block, the content to
// analyze, extraction instructions built from the pre-fill-filtered schema,
// and the required output format built from the full schema. The content and
// definitions are included verbatim. Pure; no side effects.
func Build(form schema.Form, content string, preFilled map[string]any, definitions string) string {
	formID := form.ID
	if formID == "" {
		formID = "custom_form"
	}

	// The model only sees instructions for fields it must actually extract.
	filtered := form.Filter(preFilled)

	extractFields := make([]string, 0, len(filtered.Fields))
	for _, field := range filtered.Fields {
		extractFields = append(extractFields, fmt.Sprintf("%q: %q", field.ID, placeholder(field)))
	}

	var parts []string

	if definitions != "" {
		parts = append(parts, fmt.Sprintf(`Industry-Specific Definitions and Context:
%s

Use these definitions to accurately interpret the content and extract information.`, definitions))
	}

	// Content arrives with its "MODALITY: xxx" prefix already attached.
	parts = append(parts, fmt.Sprintf(`Analyze the following extracted content and extract structured information.

Content:
%s`, content))

	if len(extractFields) > 0 {
		parts = append(parts, fmt.Sprintf(`
Extract the following information from the content:
%s`, strings.Join(extractFields, fieldIndent)))
	}

	// The declared output format covers every field of the original schema,
	// pre-filled ones echoed as literals so the full record comes back intact.
	formatFields := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		if value, ok := preFilled[field.ID]; ok {
			formatFields = append(formatFields, fmt.Sprintf(`%q: "%v"`, field.ID, value))
			continue
		}
		if field.Kind.IsEnumerated() && len(field.Options) > 0 {
			formatFields = append(formatFields, fmt.Sprintf("%q: %q", field.ID, placeholder(field)))
			continue
		}
		formatFields = append(formatFields, fmt.Sprintf("%q: %q", field.ID, "<extracted value>"))
	}

	parts = append(parts, fmt.Sprintf(`
Return ONLY valid JSON in this exact format:
{
    "form_id": %q,
    "responses": {
        %s
    }
}

Important:
- Return ONLY the JSON, no other text
- Extract all fields from the content
- Use the definitions provided to interpret industry-specific terms
- If a field cannot be determined from the content, use "unknown" or best approximation`,
		formID, strings.Join(formatFields, fieldIndent)))

	return strings.Join(parts, "\n\n")
}

// placeholder renders the per-field instruction used both in the extraction
// block and the output format.
func placeholder(field schema.Field) string {
	if field.Kind.IsEnumerated() && len(field.Options) > 0 {
		return "<select one: " + strings.Join(field.Options, ", ") + ">"
	}
	return "<extract from content>"
}
