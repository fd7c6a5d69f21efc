package openai

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"genbridge/core/parse"
	"genbridge/genai"
)

/*
	REQUEST CONVERSION
*/

// requestToChatCompletion converts a unified request into the chat
// completions wire format. The conversion is pure: turn order is preserved,
// roles are mapped (user -> user, model -> assistant, function responses ->
// tool messages), and tool schemas are forwarded untouched. The streaming
// flag is owned by the caller, never set here.
func requestToChatCompletion(request genai.GenerateContentRequest, defaultModel string) chatCompletionRequest {
	req := chatCompletionRequest{
		Model: request.Model,
	}
	if req.Model == "" {
		req.Model = defaultModel
	}

	if request.SystemInstruction != "" {
		req.Messages = append(req.Messages, chatMessage{
			Role:    "system",
			Content: request.SystemInstruction,
		})
	}

	for _, content := range request.Contents {
		req.Messages = append(req.Messages, contentToMessages(content)...)
	}

	// Convert tool declarations
	for _, tool := range request.Tools {
		for _, declaration := range tool.FunctionDeclarations {
			req.Tools = append(req.Tools, chatTool{
				Type: "function",
				Function: chatFunction{
					Name:        declaration.Name,
					Description: declaration.Description,
					Parameters:  declaration.Parameters,
				},
			})
		}
	}
	if len(req.Tools) > 0 {
		req.ToolChoice = "auto"
	}

	// Map generation config
	if cfg := request.GenerationConfig; cfg != nil {
		req.Temperature = cfg.Temperature
		req.TopP = cfg.TopP
		if cfg.MaxOutputTokens > 0 {
			maxTokens := cfg.MaxOutputTokens
			req.MaxCompletion = &maxTokens
		}
		req.Stop = cfg.StopSequences
	}

	return req
}

// contentToMessages maps one conversation turn to its wire messages. A turn
// usually maps to one message; function-response parts fan out into separate
// role=tool messages because the wire format allows only one tool result per
// message.
func contentToMessages(content genai.Content) []chatMessage {
	var messages []chatMessage
	var text string
	var toolCalls []chatToolCall

	for _, part := range content.Parts {
		switch {
		case part.FunctionResponse != nil:
			messages = append(messages, chatMessage{
				Role:       "tool",
				Name:       part.FunctionResponse.Name,
				ToolCallID: part.FunctionResponse.ID,
				Content:    string(part.FunctionResponse.Response),
			})

		case part.FunctionCall != nil:
			toolCall := chatToolCall{
				ID:   part.FunctionCall.ID,
				Type: "function",
			}
			toolCall.Function.Name = part.FunctionCall.Name
			toolCall.Function.Arguments = marshalArguments(part.FunctionCall.Args)
			toolCalls = append(toolCalls, toolCall)

		default:
			if text != "" && part.Text != "" {
				text += "\n"
			}
			text += part.Text
		}
	}

	if text != "" || len(toolCalls) > 0 {
		role := "user"
		if content.Role == genai.RoleModel {
			role = "assistant"
		}
		messages = append(messages, chatMessage{
			Role:      role,
			Content:   text,
			ToolCalls: toolCalls,
		})
	}

	return messages
}

// marshalArguments serializes parsed function-call arguments back to the wire
// string. Nil args serialize to an empty object, the wire convention for
// zero-argument calls.
func marshalArguments(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

/*
	RESPONSE CONVERSION
*/

// completionToResponse converts one non-streaming completion into exactly one
// unified response. The full tool-call payload is available atomically here,
// so argument parsing happens once, synchronously; a parse failure is a hard
// error since there is no stream to continue.
func completionToResponse(resp chatCompletionResponse) (*genai.GenerateContentResponse, error) {
	response := &genai.GenerateContentResponse{
		ModelVersion:  resp.Model,
		UsageMetadata: usageToMetadata(resp.Usage),
	}

	for _, choice := range resp.Choices {
		var parts []genai.Part

		if choice.Message.Content != "" {
			parts = append(parts, genai.Part{Text: choice.Message.Content})
		}

		for _, toolCall := range choice.Message.ToolCalls {
			args, err := parse.ParseArguments(toolCall.Function.Arguments)
			if err != nil {
				return nil, fmt.Errorf("tool call %q: %w", toolCall.Function.Name, err)
			}
			parts = append(parts, genai.Part{FunctionCall: &genai.FunctionCall{
				ID:   callID(toolCall.ID),
				Name: toolCall.Function.Name,
				Args: args,
			}})
		}

		finishReason := mapFinishReason(choice.FinishReason)
		if len(choice.Message.ToolCalls) > 0 && finishReason == genai.FinishReasonStop {
			finishReason = genai.FinishReasonToolCalls
		}

		response.Candidates = append(response.Candidates, genai.Candidate{
			Index:        choice.Index,
			FinishReason: finishReason,
			Content: &genai.Content{
				Role:  genai.RoleModel,
				Parts: parts,
			},
		})
	}

	return response, nil
}

// callID returns the provider's tool-call ID, synthesizing one when the
// provider omits it (several OpenAI-compatible deployments do).
func callID(id string) string {
	if id != "" {
		return id
	}
	return "call_" + uuid.NewString()
}

// mapFinishReason converts a chat-completions finish reason to the unified enum.
func mapFinishReason(reason string) genai.FinishReason {
	switch reason {
	case "":
		return genai.FinishReasonUnspecified
	case "stop":
		return genai.FinishReasonStop
	case "length":
		return genai.FinishReasonMaxTokens
	case "content_filter":
		return genai.FinishReasonSafety
	case "tool_calls", "function_call":
		return genai.FinishReasonToolCalls
	default:
		return genai.FinishReasonOther
	}
}

// usageToMetadata maps wire usage to unified usage metadata.
func usageToMetadata(usage *chatUsage) *genai.UsageMetadata {
	if usage == nil {
		return nil
	}
	metadata := &genai.UsageMetadata{
		PromptTokenCount:     usage.PromptTokens,
		CandidatesTokenCount: usage.CompletionTokens,
		TotalTokenCount:      usage.TotalTokens,
	}
	if usage.PromptTokensDetails != nil {
		metadata.CachedTokenCount = usage.PromptTokensDetails.CachedTokens
	}
	return metadata
}
