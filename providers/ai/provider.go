package ai

import (
	"context"
	"net/http"
)

// Provider is the interface every LLM provider implementation must satisfy.
// It covers the lifecycle of a single synchronous request: authentication,
// endpoint configuration, dispatch, and response interpretation. The
// extraction pipeline never needs streaming or tool calling, so neither is
// part of the contract.
type Provider interface {
	// SendMessage sends a chat request to the provider and returns the
	// completed response. Returns an error if the provider call fails,
	// the context is cancelled, or the response cannot be decoded.
	SendMessage(ctx context.Context, request ChatRequest) (*ChatResponse, error)

	// IsStopMessage reports whether the response represents a terminal
	// completion, using the provider's own finish-reason semantics.
	IsStopMessage(message *ChatResponse) bool

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHttpClient sets the HTTP client used for outbound requests.
	WithHttpClient(httpClient *http.Client) Provider
}
