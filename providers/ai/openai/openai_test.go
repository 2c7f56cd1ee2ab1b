package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/formpipe/formpipe/providers/ai"
)

func TestRequestFromGeneric(t *testing.T) {
	request := ai.ChatRequest{
		Model:        "gpt-4o-mini",
		SystemPrompt: "You extract structured data.",
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: "extract this"},
		},
		GenerationConfig: &ai.GenerationConfig{MaxTokens: 1000, Temperature: 0},
		ResponseFormat: &ai.ResponseFormat{
			OutputSchema: &ai.Schema{Type: "object"},
			Strict:       true,
		},
	}

	got := requestFromGeneric(request)

	if got.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", got.Model)
	}
	wantMessages := []chatMessage{
		{Role: "system", Content: "You extract structured data."},
		{Role: "user", Content: "extract this"},
	}
	if diff := cmp.Diff(wantMessages, got.Messages); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}

	// Temperature zero is meaningful for extraction and must be sent, not
	// omitted.
	if got.Temperature == nil || *got.Temperature != 0 {
		t.Errorf("temperature = %v, want explicit 0", got.Temperature)
	}
	if got.MaxCompletionTokens == nil || *got.MaxCompletionTokens != 1000 {
		t.Errorf("max_completion_tokens = %v, want 1000", got.MaxCompletionTokens)
	}

	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_schema" {
		t.Fatalf("response format = %+v", got.ResponseFormat)
	}
	if got.ResponseFormat.JSONSchema.Name != "extraction_record" || !got.ResponseFormat.JSONSchema.Strict {
		t.Errorf("json schema = %+v", got.ResponseFormat.JSONSchema)
	}
}

func TestRequestFromGeneric_Minimal(t *testing.T) {
	got := requestFromGeneric(ai.ChatRequest{
		Model:    "gpt-4o-mini",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})

	if got.Temperature != nil || got.MaxCompletionTokens != nil || got.ResponseFormat != nil {
		t.Errorf("optional members should be omitted: %+v", got)
	}
	if len(got.Messages) != 1 {
		t.Errorf("messages = %+v, no system message expected", got.Messages)
	}
}

func TestResponseToGeneric(t *testing.T) {
	var resp chatCompletionResponse
	raw := `{
		"id": "chatcmpl-1",
		"model": "gpt-4o-mini-2024-07-18",
		"choices": [
			{"index": 0, "message": {"role": "assistant", "content": "{\"form_id\": \"f\"}"}, "finish_reason": "stop"},
			{"index": 1, "message": {"role": "assistant", "content": "ignored"}, "finish_reason": "stop"}
		],
		"usage": {"prompt_tokens": 100, "completion_tokens": 20, "total_tokens": 120}
	}`
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatal(err)
	}

	got := responseToGeneric(resp)

	if got.Id != "chatcmpl-1" || got.Model != "gpt-4o-mini-2024-07-18" {
		t.Errorf("identity = %q / %q", got.Id, got.Model)
	}
	if got.Content != `{"form_id": "f"}` {
		t.Errorf("content = %q, want the first choice only", got.Content)
	}
	if got.FinishReason != "stop" {
		t.Errorf("finish reason = %q", got.FinishReason)
	}
	if got.Usage == nil || got.Usage.TotalTokens != 120 {
		t.Errorf("usage = %+v", got.Usage)
	}
}

func TestSendMessage(t *testing.T) {
	var received chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("request body not JSON: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{}"}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	provider := New().WithAPIKey("test-key").WithBaseURL(server.URL)

	response, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Model:    "gpt-4o-mini",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "extract"}},
	})
	if err != nil {
		t.Fatalf("SendMessage() failed: %v", err)
	}

	if response.Content != "{}" || response.FinishReason != "stop" {
		t.Errorf("response = %+v", response)
	}
	if received.Model != "gpt-4o-mini" || len(received.Messages) != 1 {
		t.Errorf("server received %+v", received)
	}
}

func TestSendMessage_Errors(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		provider := &Provider{client: &http.Client{}}
		if _, err := provider.SendMessage(context.Background(), ai.ChatRequest{}); err == nil {
			t.Error("SendMessage() without an API key succeeded")
		}
	})

	t.Run("non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": {"message": "rate limited"}}`))
		}))
		defer server.Close()

		provider := New().WithAPIKey("k").WithBaseURL(server.URL)
		if _, err := provider.SendMessage(context.Background(), ai.ChatRequest{Model: "m"}); err == nil {
			t.Error("SendMessage() succeeded on a 429")
		}
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": "chatcmpl-1", "model": "m", "choices": []}`))
		}))
		defer server.Close()

		provider := New().WithAPIKey("k").WithBaseURL(server.URL)
		if _, err := provider.SendMessage(context.Background(), ai.ChatRequest{Model: "m"}); err == nil {
			t.Error("SendMessage() succeeded with no choices")
		}
	})
}

func TestIsStopMessage(t *testing.T) {
	provider := New()

	tests := []struct {
		name    string
		message *ai.ChatResponse
		want    bool
	}{
		{"nil message", nil, true},
		{"stop", &ai.ChatResponse{Content: "x", FinishReason: "stop"}, true},
		{"length", &ai.ChatResponse{Content: "x", FinishReason: "length"}, true},
		{"content filter", &ai.ChatResponse{Content: "x", FinishReason: "content_filter"}, true},
		{"empty content", &ai.ChatResponse{FinishReason: "tool_calls"}, true},
		{"mid stream", &ai.ChatResponse{Content: "x", FinishReason: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := provider.IsStopMessage(tt.message); got != tt.want {
				t.Errorf("IsStopMessage() = %v, want %v", got, tt.want)
			}
		})
	}
}
