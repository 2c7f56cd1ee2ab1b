// Package observability defines the interfaces and semantic conventions used
// for tracing, metrics, and structured logging around the extraction
// pipeline. The pipeline core itself never logs; observation happens at the
// orchestration boundary (the extractor and the HTTP layer), which record
// spans and attributes through an injected [Provider].
//
// An active [Span] travels through a [context.Context] via [ContextWithSpan]
// and is retrieved with [SpanFromContext]. The semconv.go constants define
// the attribute keys and span names used across the module.
package observability
