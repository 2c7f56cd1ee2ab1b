package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/formpipe/formpipe/core/content"
	"github.com/formpipe/formpipe/core/merge"
	"github.com/formpipe/formpipe/core/prompt"
	"github.com/formpipe/formpipe/core/recovery"
	"github.com/formpipe/formpipe/core/schema"
	"github.com/formpipe/formpipe/core/validate"
	"github.com/formpipe/formpipe/providers/ai"
	"github.com/formpipe/formpipe/providers/observability"
	"github.com/formpipe/formpipe/providers/store"
)

// ErrNoProvider is returned by [New] when no LLM provider is supplied.
var ErrNoProvider = errors.New("formpipe: provider must not be nil")

// ErrStoresRequired is returned by [Extractor.Run] when the extractor was
// built without persistence collaborators.
var ErrStoresRequired = errors.New("formpipe: job and object stores are required for Run")

// Extractor drives the extraction pipeline. It is safe for concurrent use:
// every invocation operates on its own values and the collaborators are
// required to be thread-safe.
type Extractor struct {
	provider    ai.Provider
	jobs        store.Jobs
	objects     store.Objects
	observer    observability.Provider
	config      Config
	middlewares []Middleware
	send        SendFunc
}

// New creates an Extractor around the given provider.
func New(provider ai.Provider, opts ...Option) (*Extractor, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}

	e := &Extractor{provider: provider}
	for _, opt := range opts {
		opt(e)
	}

	if e.config.Model == "" {
		e.config.Model = defaultModel
	}
	if e.config.MaxTokens == 0 {
		e.config.MaxTokens = defaultMaxTokens
	}
	if e.config.ResultsPrefix == "" {
		e.config.ResultsPrefix = defaultResultsPrefix
	}

	e.send = chain(provider.SendMessage, e.middlewares)
	return e, nil
}

// Result is the outcome of one pipeline invocation.
type Result struct {
	// Object is the full recovered record with pre-filled values merged in.
	Object map[string]any

	// Record is the typed view of Object.
	Record schema.Record

	// ValidationErrors lists non-conformances in discovery order; empty
	// means valid with respect to the checks that ran.
	ValidationErrors []string

	// Valid is true when ValidationErrors is empty.
	Valid bool

	// SchemaValidated reports whether field-level checks ran at all. A run
	// without a caller schema is structurally checked only, and Valid alone
	// cannot tell the two cases apart.
	SchemaValidated bool

	// Usage carries the provider's token accounting when available.
	Usage *ai.Usage

	// StructuredKey is the object-store key the result was persisted under.
	// Only set by Run.
	StructuredKey string
}

// Extract runs the pipeline over in-hand inputs without touching any store:
// prompt → provider → recovery → merge → validation.
//
// A nil form falls back to the built-in media-analysis schema for prompting,
// but skips field-level validation: without a caller schema there is nothing
// authoritative to validate against. Pre-filled values are never overwritten
// by model output, and keys that match no schema field are carried through
// untouched.
func (e *Extractor) Extract(ctx context.Context, form *schema.Form, contentText string, preFilled map[string]any, definitions string) (*Result, error) {
	extractionForm := form
	if extractionForm == nil {
		builtin := schema.DefaultForm()
		extractionForm = &builtin
	}

	promptText := prompt.Build(*extractionForm, contentText, preFilled, definitions)
	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent("prompt.built",
			observability.String(observability.AttrFormID, extractionForm.ID),
			observability.Int(observability.AttrFormFields, len(extractionForm.Fields)),
			observability.Int(observability.AttrFormFieldsFiltered, len(extractionForm.Filter(preFilled).Fields)),
			observability.Int(observability.AttrPreFilledCount, len(preFilled)),
			observability.Int(observability.AttrPromptLength, len(promptText)),
		)
	}

	response, err := e.send(ctx, ai.ChatRequest{
		Model:    e.config.Model,
		Messages: []ai.Message{{Role: ai.RoleUser, Content: promptText}},
		GenerationConfig: &ai.GenerationConfig{
			MaxTokens:   e.config.MaxTokens,
			Temperature: 0,
		},
		ResponseFormat: &ai.ResponseFormat{
			OutputSchema: outputSchema(*extractionForm),
			Strict:       e.config.StrictSchema,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("LLM invocation failed: %w", err)
	}
	if response == nil || response.Content == "" {
		return nil, fmt.Errorf("empty response from LLM")
	}

	object, err := recovery.Object(response.Content)
	if err != nil {
		return nil, err
	}

	if len(preFilled) > 0 {
		modelResponses, _ := object["responses"].(map[string]any)
		object["responses"] = merge.Responses(modelResponses, preFilled)
	}

	validationErrors := validate.Record(object, form)

	return &Result{
		Object:           object,
		Record:           recordFromObject(object),
		ValidationErrors: validationErrors,
		Valid:            len(validationErrors) == 0,
		SchemaValidated:  form != nil,
		Usage:            response.Usage,
	}, nil
}

// Run drives a full job: it loads the form schema, definitions and
// pre-filled values from the job record, normalizes the content, extracts,
// persists the result blob under {prefix}/{job_id}/structured-data.json, and
// advances the job status (PROCESSING_STRUCTURED_DATA after persistence,
// VALIDATING with the validation outcome after checking).
func (e *Extractor) Run(ctx context.Context, jobID string, rawContent string) (result *Result, err error) {
	if e.jobs == nil || e.objects == nil {
		return nil, ErrStoresRequired
	}
	if jobID == "" {
		return nil, fmt.Errorf("missing required field: job_id")
	}
	if rawContent == "" {
		return nil, fmt.Errorf("missing required field: content")
	}

	ctx, span := e.startSpan(ctx, observability.SpanPipelineRun,
		observability.String(observability.AttrJobID, jobID),
		observability.Int(observability.AttrContentLength, len(rawContent)),
	)
	defer func() {
		if span == nil {
			return
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, "pipeline run failed")
		} else {
			span.SetStatus(observability.StatusOK, "")
		}
		span.End()
	}()
	defer func() {
		if e.observer == nil {
			return
		}
		if err != nil {
			e.observer.Counter(observability.MetricJobsFailed).Add(ctx, 1)
		} else {
			e.observer.Counter(observability.MetricJobsProcessed).Add(ctx, 1)
		}
	}()

	job, err := e.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job record: %w", err)
	}

	var form *schema.Form
	if job.FormSchema != "" {
		form, err = schema.Load([]byte(job.FormSchema))
		if err != nil {
			return nil, fmt.Errorf("failed to load form schema for job %s: %w", jobID, err)
		}
	}

	// Pre-filled values are optional; an unreadable document is treated as
	// absent rather than failing the job, matching their advisory role.
	var preFilled map[string]any
	if job.PreFilledValues != "" {
		if unmarshalErr := json.Unmarshal([]byte(job.PreFilledValues), &preFilled); unmarshalErr != nil {
			preFilled = nil
			if e.observer != nil {
				e.observer.Warn(ctx, "ignoring unparseable pre-filled values",
					observability.String(observability.AttrJobID, jobID),
					observability.Error(unmarshalErr),
				)
			}
		}
	}

	normalized := content.Normalize(rawContent, job.Modality)

	result, err = e.Extract(ctx, form, normalized, preFilled, job.Definitions)
	if err != nil {
		return nil, err
	}

	structuredKey := fmt.Sprintf("%s/%s/structured-data.json", e.config.ResultsPrefix, jobID)
	body, err := json.MarshalIndent(result.Object, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode structured data: %w", err)
	}
	if err = e.objects.Put(ctx, structuredKey, body, "application/json"); err != nil {
		return nil, fmt.Errorf("failed to store structured data: %w", err)
	}
	if _, err = e.jobs.Update(ctx, jobID, func(j *store.Job) {
		j.Status = store.StatusProcessingStructuredData
		j.StructuredKey = structuredKey
	}); err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}

	valid := result.Valid
	if _, err = e.jobs.Update(ctx, jobID, func(j *store.Job) {
		j.Status = store.StatusValidating
		j.IsValid = &valid
		j.ValidationErrors = result.ValidationErrors
	}); err != nil {
		return nil, fmt.Errorf("failed to record validation outcome: %w", err)
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrResultKey, structuredKey),
			observability.Int(observability.AttrValidationErrors, len(result.ValidationErrors)),
			observability.Bool("result.valid", valid),
		)
	}
	if e.observer != nil && !valid {
		e.observer.Counter(observability.MetricValidationFailures).Add(ctx, 1)
	}

	result.StructuredKey = structuredKey
	return result, nil
}

// startSpan begins a span when an observer is configured; otherwise it
// returns the context unchanged and a nil span.
func (e *Extractor) startSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	if e.observer == nil {
		return ctx, nil
	}
	return e.observer.StartSpan(ctx, name, attrs...)
}

// recordFromObject builds the typed view of a recovered record. Members with
// unexpected types are left zero; the validator reports them.
func recordFromObject(object map[string]any) schema.Record {
	record := schema.Record{}
	if formID, ok := object["form_id"].(string); ok {
		record.FormID = formID
	}
	if responses, ok := object["responses"].(map[string]any); ok {
		record.Responses = responses
	}
	return record
}
