package validate

import (
	"fmt"
	"strings"

	"github.com/formpipe/formpipe/core/schema"
)

// Record validates a decoded extraction record against form. The returned
// slice preserves discovery order; an empty slice means the record is valid
// with respect to the checks that ran. Passing a nil form skips all
// field-level checks (callers that need to distinguish "no schema" from
// "valid" must track schema presence themselves).
//
// Structural checks always run first, in order: form_id presence, responses
// presence, responses being an object. A missing or non-object responses
// member stops validation, since no field-level check is meaningful without
// a responses block.
//
// Field-level checks run in schema field order: missing required fields
// first, then per-value checks (option membership for select/radio, string
// type for text). A panic while checking one field is converted into a
// descriptive error entry and does not abort the remaining fields.
func Record(record map[string]any, form *schema.Form) []string {
	errors := []string{}

	if _, ok := record["form_id"]; !ok {
		errors = append(errors, "Missing required field: form_id")
	}

	raw, ok := record["responses"]
	if !ok {
		return append(errors, "Missing required field: responses")
	}
	responses, ok := raw.(map[string]any)
	if !ok {
		return append(errors, "Field 'responses' must be an object")
	}

	if form == nil {
		return errors
	}

	for _, field := range form.Fields {
		if field.ID == "" {
			continue
		}
		if field.Required {
			if _, present := responses[field.ID]; !present {
				errors = append(errors, "Missing required field: "+field.ID)
			}
		}
	}

	for _, field := range form.Fields {
		errors = append(errors, valueErrors(field, responses)...)
	}

	return errors
}

// valueErrors checks a single field's value against its declared kind and
// options. Recovered panics become a single error entry for this field.
func valueErrors(field schema.Field, responses map[string]any) (errs []string) {
	defer func() {
		if r := recover(); r != nil {
			errs = append(errs, fmt.Sprintf("Error validating field '%s': %v", field.ID, r))
		}
	}()

	if field.ID == "" {
		return nil
	}
	value, present := responses[field.ID]
	if !present {
		return nil
	}

	if field.Kind.IsEnumerated() && len(field.Options) > 0 && !isEmpty(value) {
		if !isAllowed(value, field.Options) {
			errs = append(errs, fmt.Sprintf("Invalid value for '%s': must be one of [%s], got '%v'",
				field.ID, strings.Join(field.Options, ", "), value))
		}
	}

	if field.Kind == schema.KindText && value != nil {
		if _, isString := value.(string); !isString {
			errs = append(errs, fmt.Sprintf("Field '%s' must be a string", field.ID))
		}
	}

	return errs
}

// isAllowed reports whether value matches one of the declared options.
// Options are strings, so any non-string value can never match.
func isAllowed(value any, options []string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	for _, option := range options {
		if s == option {
			return true
		}
	}
	return false
}

// isEmpty reports whether value is one of the empty shapes (nil, empty
// string, false, numeric zero) that are exempt from option-membership
// checks. An empty extraction is a missing answer, not a wrong one.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case int:
		return v == 0
	default:
		return false
	}
}
