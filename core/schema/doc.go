// Package schema defines the dynamic form-schema model shared by every stage
// of the extraction pipeline: the [Form] and [Field] types describing what a
// caller wants extracted, the [Record] type carrying extracted responses, and
// the loading/filtering operations that prepare a schema for prompt
// generation.
//
// Schemas are caller-supplied data, not Go types: a [Form] arrives as a JSON
// or YAML document (see [Load]) and its field set is only known at runtime.
// Field kinds are modeled as a small tagged enumeration ([Kind]) so prompt
// generation and validation can switch exhaustively over them.
package schema
