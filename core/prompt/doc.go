// Package prompt assembles the extraction prompt sent to the LLM from a form
// schema, the content under analysis, optional caller-supplied pre-filled
// values, and optional domain definitions.
//
// The builder is a pure function of its inputs: identical inputs always
// produce byte-identical output, which keeps prompts testable and cacheable
// by the provider. Fields the caller has already pre-filled are removed from
// the extraction instructions (the model must not re-derive them) but remain
// in the declared output format as literal echoes, so the model always
// returns the complete response shape.
package prompt
