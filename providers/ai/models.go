package ai

// MessageRole identifies the author of a message in a conversation.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`
}

// ChatRequest represents a request to send a chat message.
type ChatRequest struct {
	Model            string            `json:"model,omitempty"`
	Messages         []Message         `json:"messages"`
	SystemPrompt     string            `json:"system_prompt,omitempty"`
	ResponseFormat   *ResponseFormat   `json:"response_format,omitempty"`
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"`
}

// GenerationConfig carries sampling parameters. Extraction runs want
// determinism, so the pipeline sets Temperature to zero.
type GenerationConfig struct {
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float32 `json:"temperature"` // [0..2]; lower => more deterministic
}

// ResponseFormat asks the provider for structured output. Implementation
// varies by provider; providers without native support ignore it (the
// pipeline's recovery layer copes either way).
type ResponseFormat struct {
	OutputSchema *Schema `json:"output_schema,omitempty"`
	Strict       bool    `json:"strict,omitempty"`
}

// Schema is the minimal JSON Schema subset needed to describe an extraction
// record to providers that support constrained decoding: an object with
// typed, optionally enumerated properties.
type Schema struct {
	Type                 string             `json:"type,omitempty"`
	Description          string             `json:"description,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Enum                 []any              `json:"enum,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
}

// Usage reports token consumption for one provider call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ChatResponse represents the completed response from a provider.
type ChatResponse struct {
	Id           string `json:"id,omitempty"`
	Model        string `json:"model,omitempty"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason,omitempty"`
	Usage        *Usage `json:"usage,omitempty"`
}
