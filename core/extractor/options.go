package extractor

import (
	"github.com/formpipe/formpipe/providers/observability"
	"github.com/formpipe/formpipe/providers/store"
)

// Config carries the per-extractor settings that would otherwise live in
// environment globals. The zero value is completed by defaults in [New].
type Config struct {
	// Model is the provider model identifier used for extraction calls.
	Model string

	// MaxTokens bounds the completion size. Extraction records are small;
	// the default of 1000 leaves generous headroom.
	MaxTokens int

	// ResultsPrefix is the object-store key prefix result blobs are written
	// under: {ResultsPrefix}/{job_id}/structured-data.json.
	ResultsPrefix string

	// StrictSchema asks the provider to strictly enforce the generated
	// output schema when it supports constrained decoding.
	StrictSchema bool
}

const (
	defaultModel         = "gpt-4o-mini"
	defaultMaxTokens     = 1000
	defaultResultsPrefix = "results"
)

// Option configures an Extractor during construction.
type Option func(*Extractor)

// WithConfig replaces the default configuration. Zero-valued members are
// still completed with defaults.
func WithConfig(config Config) Option {
	return func(e *Extractor) {
		e.config = config
	}
}

// WithStores attaches the job-record and object-store collaborators needed
// by [Extractor.Run]. [Extractor.Extract] works without them.
func WithStores(jobs store.Jobs, objects store.Objects) Option {
	return func(e *Extractor) {
		e.jobs = jobs
		e.objects = objects
	}
}

// WithObserver attaches an observability provider. Without one the extractor
// is silent, matching the pipeline core's no-logging contract.
func WithObserver(observer observability.Provider) Option {
	return func(e *Extractor) {
		e.observer = observer
	}
}

// WithMiddlewares wraps the provider call with the given middlewares. The
// first middleware is outermost, mirroring the declared order.
func WithMiddlewares(middlewares ...Middleware) Option {
	return func(e *Extractor) {
		e.middlewares = append(e.middlewares, middlewares...)
	}
}
