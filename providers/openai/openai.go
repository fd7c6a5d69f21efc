package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"genbridge/core/tokenizer"
	"genbridge/genai"
	"genbridge/internal/utils"
	"genbridge/providers/observability"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"
)

// Generator implements genai.ContentGenerator against any OpenAI-compatible
// chat-completions endpoint. Configuration (model, API key, base URL, extra
// headers) is fixed at construction and read-only afterwards; the generator
// itself holds no per-call state, so independent calls may run concurrently
// against the same instance.
type Generator struct {
	model   string
	apiKey  string
	baseURL string
	headers []utils.HeaderOption
	client  *http.Client
}

// Ensure Generator implements the unified interface
var _ genai.ContentGenerator = (*Generator)(nil)

// New creates a new generator with default values. The API key and base URL
// default to the OPENAI_API_KEY and OPENAI_BASE_URL environment variables.
func New() *Generator {
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Generator{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithModel sets the default model used when a request does not name one.
func (generator *Generator) WithModel(model string) *Generator {
	generator.model = model
	return generator
}

// WithAPIKey sets the API key for the generator
func (generator *Generator) WithAPIKey(apiKey string) *Generator {
	generator.apiKey = apiKey
	return generator
}

// WithBaseURL overrides the default base URL for API requests
func (generator *Generator) WithBaseURL(baseURL string) *Generator {
	generator.baseURL = baseURL
	return generator
}

// WithHeader adds an extra HTTP header sent on every request. Useful for
// proxy deployments that require custom auth or routing headers.
func (generator *Generator) WithHeader(key, value string) *Generator {
	generator.headers = append(generator.headers, utils.HeaderOption{Key: key, Value: value})
	return generator
}

// WithHTTPClient sets a custom HTTP client
func (generator *Generator) WithHTTPClient(client *http.Client) *Generator {
	generator.client = client
	return generator
}

// GenerateContent implements the non-streaming half of
// genai.ContentGenerator: one request, one completed response. Transport
// errors are propagated unchanged; a completion whose tool-call arguments
// cannot be parsed is an error.
func (generator *Generator) GenerateContent(ctx context.Context, request genai.GenerateContentRequest) (*genai.GenerateContentResponse, error) {
	logger := observability.LoggerFromContext(ctx)

	if generator.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	chatRequest := requestToChatCompletion(request, generator.model)

	httpResponse, completion, err := utils.DoPostSync[chatCompletionResponse](ctx, generator.client, generator.baseURL+chatCompletionsEndpoint, generator.apiKey, chatRequest, generator.headers...)
	if err != nil {
		return nil, err
	}

	if completion == nil {
		return nil, fmt.Errorf("empty response from provider: %s", httpResponse.Status)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	if logger != nil {
		logger.Debug("completion received",
			observability.String(observability.AttrLLMProvider, "openai"),
			observability.String(observability.AttrLLMResponseID, completion.ID),
			observability.String(observability.AttrLLMFinishReason, completion.Choices[0].FinishReason),
		)
	}

	return completionToResponse(*completion)
}

// CountTokens implements genai.ContentGenerator. The count is computed
// locally from the model's token encoding; no provider call is made. An
// unresolvable model identifier is a configuration error.
func (generator *Generator) CountTokens(_ context.Context, request genai.CountTokensRequest) (*genai.CountTokensResponse, error) {
	model := request.Model
	if model == "" {
		model = generator.model
	}

	counter, err := tokenizer.NewCounter(model)
	if err != nil {
		return nil, err
	}

	return &genai.CountTokensResponse{
		TotalTokens: counter.CountContents(request.Contents),
	}, nil
}

// EmbedContent implements genai.ContentGenerator. The chat-completions
// surface has no embedding endpoint, so the operation always fails with
// genai.ErrEmbedContentUnsupported rather than attempting a best-effort call.
func (generator *Generator) EmbedContent(_ context.Context, _ genai.EmbedContentRequest) (*genai.EmbedContentResponse, error) {
	return nil, genai.ErrEmbedContentUnsupported
}
