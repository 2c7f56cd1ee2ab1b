// Package ai defines the provider-neutral request/response model and the
// [Provider] interface through which the extraction pipeline talks to an LLM
// service. Concrete implementations live in subpackages (e.g. [openai]); the
// pipeline itself only ever sees these types.
package ai
