package extractor

import (
	"context"
	"log/slog"
	"time"

	"github.com/formpipe/formpipe/providers/ai"
)

// SendFunc is the signature of one provider call. Middlewares wrap it.
type SendFunc func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error)

// Middleware wraps a SendFunc with cross-cutting behavior (logging,
// deadlines). Retry is deliberately not provided here: the pipeline never
// retries the LLM call, that decision belongs to the caller.
type Middleware func(next SendFunc) SendFunc

// chain composes middlewares around base so that the first middleware in the
// slice is the outermost wrapper.
func chain(base SendFunc, middlewares []Middleware) SendFunc {
	send := base
	for i := len(middlewares) - 1; i >= 0; i-- {
		send = middlewares[i](send)
	}
	return send
}

// NewLoggingMiddleware emits structured slog entries before and after every
// provider call: model and message count going out, duration, finish reason
// and token usage coming back. Prompt and response content are never logged;
// they contain user media text.
//
// The logger must not be nil; use slog.Default() if no custom logger is
// configured.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			logger.InfoContext(ctx, "llm send",
				slog.String("model", request.Model),
				slog.Int("messages", len(request.Messages)),
			)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "llm send failed",
					slog.String("model", request.Model),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			attrs := []any{
				slog.String("model", response.Model),
				slog.Duration("duration", elapsed),
				slog.String("finish_reason", response.FinishReason),
			}
			if response.Usage != nil {
				attrs = append(attrs,
					slog.Int("prompt_tokens", response.Usage.PromptTokens),
					slog.Int("completion_tokens", response.Usage.CompletionTokens),
				)
			}
			logger.InfoContext(ctx, "llm send completed", attrs...)

			return response, nil
		}
	}
}

// NewTimeoutMiddleware bounds each provider call with a deadline. A
// non-positive timeout disables the bound.
func NewTimeoutMiddleware(timeout time.Duration) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			if timeout <= 0 {
				return next(ctx, request)
			}
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return next(ctx, request)
		}
	}
}
