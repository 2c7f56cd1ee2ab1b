package schema

import (
	"errors"
	"fmt"
)

// ErrInvalidSchema is returned when a form schema document is structurally
// unusable (not an object, fields not a sequence, duplicate field ids, or an
// enumerated field without options). The error is wrapped with detail about
// the offending part, so callers can use [errors.Is] to detect the class and
// the message to locate the cause.
var ErrInvalidSchema = errors.New("formpipe: invalid form schema")

// Kind identifies how a field's value is produced and validated.
type Kind string

const (
	// KindText is free-text extraction; values must be strings.
	KindText Kind = "text"

	// KindSelect constrains the value to one of the field's declared options.
	KindSelect Kind = "select"

	// KindRadio behaves like KindSelect; the distinction only matters to
	// form-rendering collaborators, not to extraction or validation.
	KindRadio Kind = "radio"
)

// IsEnumerated reports whether the kind carries a closed option set.
// Unknown future kinds are treated as free text.
func (k Kind) IsEnumerated() bool {
	return k == KindSelect || k == KindRadio
}

// Field is one named, typed slot in a form schema.
type Field struct {
	ID       string   `json:"field_id" yaml:"field_id"`
	Name     string   `json:"field_name,omitempty" yaml:"field_name,omitempty"`
	Kind     Kind     `json:"field_type" yaml:"field_type"`
	Options  []string `json:"options,omitempty" yaml:"options,omitempty"`
	Required bool     `json:"required,omitempty" yaml:"required,omitempty"`
}

// Form is an ordered sequence of field definitions identified by a form id.
// Field order is preserved for deterministic prompt generation; it carries no
// validation meaning.
type Form struct {
	ID     string  `json:"form_id" yaml:"form_id"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Record is the structured result of one pipeline invocation: an echo of the
// form id plus a mapping from field id to extracted (or pre-filled) value.
// Records are value objects created fresh per invocation and never shared.
type Record struct {
	FormID    string         `json:"form_id"`
	Responses map[string]any `json:"responses"`
}

// Validate checks that the form is structurally usable: a non-empty field
// sequence entry must have an id, ids must be unique within the form, and
// enumerated kinds must declare at least one option. Returns an error wrapping
// [ErrInvalidSchema], or nil.
func (f *Form) Validate() error {
	seen := make(map[string]struct{}, len(f.Fields))
	for i, field := range f.Fields {
		if field.ID == "" {
			return fmt.Errorf("%w: field at index %d has no field_id", ErrInvalidSchema, i)
		}
		if _, dup := seen[field.ID]; dup {
			return fmt.Errorf("%w: duplicate field_id %q", ErrInvalidSchema, field.ID)
		}
		seen[field.ID] = struct{}{}

		if field.Kind.IsEnumerated() && len(field.Options) == 0 {
			return fmt.Errorf("%w: field %q is %s but declares no options", ErrInvalidSchema, field.ID, field.Kind)
		}
	}
	return nil
}

// Filter returns a working copy of the form without the fields whose ids
// appear as keys in preFilled. The filtered form drives the extraction
// instructions of a prompt: the model is only asked for fields the caller has
// not already decided. Keys in preFilled that match no field are ignored.
//
// The receiver is never modified; the returned form owns its own field slice.
func (f *Form) Filter(preFilled map[string]any) Form {
	filtered := Form{ID: f.ID}
	if len(preFilled) == 0 {
		filtered.Fields = append(filtered.Fields, f.Fields...)
		return filtered
	}

	for _, field := range f.Fields {
		if _, ok := preFilled[field.ID]; ok {
			continue
		}
		filtered.Fields = append(filtered.Fields, field)
	}
	return filtered
}

// DefaultForm returns the built-in media-analysis schema used when a job
// carries no custom form. Callers receive a fresh copy on every call.
func DefaultForm() Form {
	return Form{
		ID: "simple_media_analysis_v1",
		Fields: []Field{
			{
				ID:      "content_type",
				Name:    "Content Type",
				Kind:    KindSelect,
				Options: []string{"audio", "video", "document", "image"},
			},
			{
				ID:   "main_topics",
				Name: "Main Topics or Themes",
				Kind: KindText,
			},
			{
				ID:   "summary",
				Name: "Content Summary",
				Kind: KindText,
			},
			{
				ID:      "sentiment",
				Name:    "Overall Sentiment",
				Kind:    KindRadio,
				Options: []string{"positive", "neutral", "negative"},
			},
		},
	}
}
