package extractor

import (
	"github.com/formpipe/formpipe/core/schema"
	"github.com/formpipe/formpipe/providers/ai"
)

// outputSchema derives the constrained-decoding schema for one extraction
// run from the form definition: an object echoing the form id plus a
// responses object with one string property per field, enumerated fields
// restricted to their declared options. Providers without structured-output
// support ignore it; the recovery layer copes either way.
func outputSchema(form schema.Form) *ai.Schema {
	properties := make(map[string]*ai.Schema, len(form.Fields))
	required := make([]string, 0, len(form.Fields))

	for _, field := range form.Fields {
		fieldSchema := &ai.Schema{
			Type:        "string",
			Description: field.Name,
		}
		if field.Kind.IsEnumerated() && len(field.Options) > 0 {
			fieldSchema.Enum = make([]any, len(field.Options))
			for i, option := range field.Options {
				fieldSchema.Enum[i] = option
			}
		}
		properties[field.ID] = fieldSchema
		required = append(required, field.ID)
	}

	return &ai.Schema{
		Type:                 "object",
		Required:             []string{"form_id", "responses"},
		AdditionalProperties: false,
		Properties: map[string]*ai.Schema{
			"form_id": {Type: "string"},
			"responses": {
				Type:                 "object",
				Properties:           properties,
				Required:             required,
				AdditionalProperties: false,
			},
		},
	}
}
