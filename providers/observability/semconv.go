package observability

// Semantic conventions for observability attributes. Components record
// observations under these keys so dashboards and log queries stay
// consistent across the module.

// --- Job / Pipeline Attributes ---

const (
	// AttrJobID is the job identifier a pipeline run belongs to.
	AttrJobID = "job.id"

	// AttrJobStatus is the job status written by the run.
	AttrJobStatus = "job.status"

	// AttrFormID is the form schema identifier in use.
	AttrFormID = "form.id"

	// AttrFormFields is the number of fields in the schema.
	AttrFormFields = "form.fields"

	// AttrFormFieldsFiltered is the number of fields the model is asked to
	// extract (schema fields minus pre-filled ones).
	AttrFormFieldsFiltered = "form.fields.filtered"

	// AttrPreFilledCount is the number of caller-supplied values.
	AttrPreFilledCount = "prefilled.count"

	// AttrContentLength is the length of the normalized content in bytes.
	AttrContentLength = "content.length"

	// AttrPromptLength is the length of the assembled prompt in bytes.
	AttrPromptLength = "prompt.length"

	// AttrValidationErrors is the number of validation errors in a result.
	AttrValidationErrors = "validation.errors"

	// AttrResultKey is the object-store key the result was persisted under.
	AttrResultKey = "result.key"
)

// --- LLM Provider Attributes ---

const (
	// AttrLLMModel is the model identifier (e.g. "gpt-4o-mini").
	AttrLLMModel = "llm.model"

	// AttrLLMFinishReason is the reason the generation finished.
	AttrLLMFinishReason = "llm.finish_reason"

	// AttrLLMTokensPrompt is the number of prompt tokens.
	AttrLLMTokensPrompt = "llm.tokens.prompt" // #nosec G101 -- LLM tokens, not a credential

	// AttrLLMTokensCompletion is the number of completion tokens.
	AttrLLMTokensCompletion = "llm.tokens.completion" // #nosec G101 -- LLM tokens, not a credential

	// AttrLLMTokensTotal is the total number of tokens.
	AttrLLMTokensTotal = "llm.tokens.total" // #nosec G101 -- LLM tokens, not a credential
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, ...).
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code.
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL.
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes.
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes.
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- General Attributes ---

const (
	// AttrError is the error message.
	AttrError = "error"

	// AttrDuration is the operation duration.
	AttrDuration = "duration"

	// AttrStatus is the operation status.
	AttrStatus = "status"

	// AttrStatusDescription is the status description.
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanPipelineRun is the span around one full pipeline invocation.
	SpanPipelineRun = "pipeline.run"

	// SpanLLMRequest is the span around one LLM provider call.
	SpanLLMRequest = "llm.request"
)

// --- Metric Names ---

const (
	// MetricJobsProcessed counts completed pipeline runs.
	MetricJobsProcessed = "pipeline.jobs.processed"

	// MetricJobsFailed counts pipeline runs that ended in an error.
	MetricJobsFailed = "pipeline.jobs.failed"

	// MetricValidationFailures counts runs whose record failed validation.
	MetricValidationFailures = "pipeline.validation.failures"
)
