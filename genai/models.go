package genai

import "encoding/json"

/*
	##### UNIFIED REQUEST #####
*/

// GenerateContentRequest represents a unified content-generation request.
// Contents are ordered conversation turns; the order determines the
// conversational context seen by the model and must be preserved by adapters.
// The request is treated as immutable input by every adapter.
type GenerateContentRequest struct {
	Model             string            `json:"model,omitempty"`             // Model name or identifier
	Contents          []Content         `json:"contents"`                    // Ordered conversation turns
	SystemInstruction string            `json:"system_instruction,omitempty"`
	Tools             []Tool            `json:"tools,omitempty"`             // Declared tools the model may call
	GenerationConfig  *GenerationConfig `json:"generation_config,omitempty"` // Optional generation parameters
}

// Content is a single conversation turn: a role plus an ordered list of parts.
type Content struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts"`
}

// Part is one unit of turn content. Exactly one field is expected to be set.
type Part struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *FunctionCall     `json:"function_call,omitempty"`     // Model-requested tool invocation
	FunctionResponse *FunctionResponse `json:"function_response,omitempty"` // Caller-supplied tool result
}

// FunctionCall is a completed tool invocation requested by the model.
// Args holds the parsed argument payload; adapters must parse the raw
// argument text exactly once before constructing a FunctionCall.
type FunctionCall struct {
	ID   string         `json:"id,omitempty"`
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// FunctionResponse carries the result of executing a previously requested
// function call back to the model.
type FunctionResponse struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Response json.RawMessage `json:"response,omitempty"`
}

// Tool groups function declarations offered to the model.
type Tool struct {
	FunctionDeclarations []FunctionDeclaration `json:"function_declarations,omitempty"`
}

// FunctionDeclaration describes one callable function. Parameters is an
// opaque JSON schema: the adapter forwards it to the provider untouched.
type FunctionDeclaration struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// GenerationConfig holds optional generation parameters.
type GenerationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	TopP            *float64 `json:"top_p,omitempty"`
	MaxOutputTokens int      `json:"max_output_tokens,omitempty"`
	StopSequences   []string `json:"stop_sequences,omitempty"`
}

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"  // End-user (and tool-result) turns
	RoleModel Role = "model" // Model responses
)

/*
	##### UNIFIED RESPONSE #####
*/

// GenerateContentResponse is the unified response shape. A non-streaming call
// produces exactly one; a streaming call produces one per provider chunk, in
// provider order. Each response is self-contained: a completed function call
// appears only on the chunk whose finish reason finalized it, with its
// arguments already parsed.
type GenerateContentResponse struct {
	Candidates    []Candidate    `json:"candidates,omitempty"`
	UsageMetadata *UsageMetadata `json:"usage_metadata,omitempty"`
	ModelVersion  string         `json:"model_version,omitempty"`
}

// Candidate is one generated completion.
type Candidate struct {
	Content      *Content     `json:"content,omitempty"`
	FinishReason FinishReason `json:"finish_reason,omitempty"`
	Index        int          `json:"index,omitempty"`
}

// FinishReason explains why a candidate stopped generating.
type FinishReason string

const (
	FinishReasonUnspecified FinishReason = ""
	FinishReasonStop        FinishReason = "stop"
	FinishReasonMaxTokens   FinishReason = "max_tokens"
	FinishReasonSafety      FinishReason = "safety"
	FinishReasonToolCalls   FinishReason = "tool_calls"
	FinishReasonOther       FinishReason = "other"
)

// UsageMetadata carries token accounting reported by the provider.
type UsageMetadata struct {
	PromptTokenCount     int `json:"prompt_token_count,omitempty"`
	CandidatesTokenCount int `json:"candidates_token_count,omitempty"`
	CachedTokenCount     int `json:"cached_token_count,omitempty"`
	TotalTokenCount      int `json:"total_token_count,omitempty"`
}

// Text returns the concatenated text of the first candidate's text parts.
// Returns the empty string when the response carries no text.
func (response *GenerateContentResponse) Text() string {
	if response == nil || len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, p := range response.Candidates[0].Content.Parts {
		text += p.Text
	}
	return text
}

// FunctionCalls returns every completed function call carried by the response.
func (response *GenerateContentResponse) FunctionCalls() []*FunctionCall {
	if response == nil {
		return nil
	}
	var calls []*FunctionCall
	for _, candidate := range response.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, p := range candidate.Content.Parts {
			if p.FunctionCall != nil {
				calls = append(calls, p.FunctionCall)
			}
		}
	}
	return calls
}

/*
	##### AUXILIARY OPERATIONS #####
*/

// CountTokensRequest asks for the token count of a request's contents under
// the named model's encoding.
type CountTokensRequest struct {
	Model    string    `json:"model,omitempty"`
	Contents []Content `json:"contents"`
}

// CountTokensResponse reports the total token count. TotalTokens is always >= 0.
type CountTokensResponse struct {
	TotalTokens int `json:"total_tokens"`
}

// EmbedContentRequest types the embedding operation. Adapters that do not
// support embeddings fail the operation immediately rather than attempting a
// best-effort call.
type EmbedContentRequest struct {
	Model    string    `json:"model,omitempty"`
	Contents []Content `json:"contents"`
}

// EmbedContentResponse carries embedding vectors for supported adapters.
type EmbedContentResponse struct {
	Embeddings [][]float64 `json:"embeddings,omitempty"`
}

/*
	##### CONSTRUCTORS #####
*/

// NewUserContent builds a single-text user turn.
func NewUserContent(text string) Content {
	return Content{Role: RoleUser, Parts: []Part{{Text: text}}}
}

// NewModelContent builds a single-text model turn.
func NewModelContent(text string) Content {
	return Content{Role: RoleModel, Parts: []Part{{Text: text}}}
}
