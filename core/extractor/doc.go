// Package extractor orchestrates the schema-driven extraction pipeline:
// prompt assembly, the LLM provider call, response recovery, merging of
// authoritative pre-filled values, validation, and handoff of the result to
// the persistence collaborators.
//
// The entry point is [New], which accepts an [ai.Provider] and functional
// options ([WithConfig], [WithStores], [WithObserver], [WithMiddlewares]).
// [Extractor.Extract] runs the pure pipeline over in-hand inputs;
// [Extractor.Run] drives a full job: it loads the schema, definitions and
// pre-filled values from the job record, extracts, persists the result blob,
// and advances the job status.
//
// All configuration is carried in an explicit [Config]; there is no
// process-global state, so concurrent runs for different jobs need no
// coordination.
package extractor
