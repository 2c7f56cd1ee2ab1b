package openai

import "github.com/formpipe/formpipe/providers/ai"

/*
	CHAT COMPLETIONS API - INPUT
*/

// chatCompletionRequest represents the /v1/chat/completions request format.
type chatCompletionRequest struct {
	Model               string              `json:"model"`
	Messages            []chatMessage       `json:"messages"`
	Temperature         *float64            `json:"temperature,omitempty"`
	MaxCompletionTokens *int                `json:"max_completion_tokens,omitempty"`
	ResponseFormat      *chatResponseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content,omitempty"`
}

type chatResponseFormat struct {
	Type       string          `json:"type"` // "text", "json_object", "json_schema"
	JSONSchema *chatJSONSchema `json:"json_schema,omitempty"`
}

type chatJSONSchema struct {
	Name   string    `json:"name"`
	Schema ai.Schema `json:"schema"`
	Strict bool      `json:"strict,omitempty"`
}

// requestFromGeneric converts the provider-neutral request into the chat
// completions wire format.
func requestFromGeneric(request ai.ChatRequest) chatCompletionRequest {
	out := chatCompletionRequest{Model: request.Model}

	if request.SystemPrompt != "" {
		out.Messages = append(out.Messages, chatMessage{Role: string(ai.RoleSystem), Content: request.SystemPrompt})
	}
	for _, message := range request.Messages {
		out.Messages = append(out.Messages, chatMessage{Role: string(message.Role), Content: message.Content})
	}

	if cfg := request.GenerationConfig; cfg != nil {
		temperature := float64(cfg.Temperature)
		out.Temperature = &temperature
		if cfg.MaxTokens > 0 {
			maxTokens := cfg.MaxTokens
			out.MaxCompletionTokens = &maxTokens
		}
	}

	if rf := request.ResponseFormat; rf != nil && rf.OutputSchema != nil {
		out.ResponseFormat = &chatResponseFormat{
			Type: "json_schema",
			JSONSchema: &chatJSONSchema{
				Name:   "extraction_record",
				Schema: *rf.OutputSchema,
				Strict: rf.Strict,
			},
		}
	}

	return out
}

/*
	CHAT COMPLETIONS API - OUTPUT
*/

// chatCompletionResponse represents the /v1/chat/completions response format.
type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
}

// responseToGeneric converts the wire response into the provider-neutral
// ChatResponse. Only the first choice is consumed.
func responseToGeneric(resp chatCompletionResponse) *ai.ChatResponse {
	out := &ai.ChatResponse{
		Id:           resp.ID,
		Model:        resp.Model,
		Content:      resp.Choices[0].Message.Content,
		FinishReason: resp.Choices[0].FinishReason,
	}
	if resp.Usage != nil {
		out.Usage = &ai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return out
}
