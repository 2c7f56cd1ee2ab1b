// Package validate checks a merged extraction record against the dynamic
// form schema it was produced for.
//
// Validation is non-exceptional: the result is an ordered list of
// human-readable error strings, empty meaning valid. Structural problems
// (missing form_id, missing or non-object responses) abort further checks;
// field-level problems accumulate so a single bad field never hides the
// rest. A nil schema limits validation to the structural checks.
package validate
