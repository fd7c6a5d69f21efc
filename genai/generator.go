package genai

import (
	"context"
	"errors"
)

// ErrEmbedContentUnsupported is returned by adapters whose backing provider
// has no embedding endpoint. Callers can detect it with errors.Is.
var ErrEmbedContentUnsupported = errors.New("embed content is not supported by this content generator")

// ContentGenerator is the unified interface backed interchangeably by
// different model providers. Implementations are stateless aside from fixed
// configuration supplied at construction; independent calls may run
// concurrently against the same instance.
type ContentGenerator interface {
	// GenerateContent sends the request and returns the single completed
	// response. Transport and provider errors are propagated unchanged.
	GenerateContent(ctx context.Context, request GenerateContentRequest) (*GenerateContentResponse, error)

	// GenerateContentStream sends the request in streaming mode and returns a
	// ResponseStream yielding one response per provider chunk, in provider
	// order. Pre-stream errors (auth, bad request, network) are returned
	// directly; mid-stream errors are yielded through the stream's error
	// channel.
	GenerateContentStream(ctx context.Context, request GenerateContentRequest) (*ResponseStream, error)

	// CountTokens returns the token count of the request's contents under the
	// model's encoding, without calling the provider.
	CountTokens(ctx context.Context, request CountTokensRequest) (*CountTokensResponse, error)

	// EmbedContent generates embeddings, or fails with
	// ErrEmbedContentUnsupported when the provider has no embedding surface.
	EmbedContent(ctx context.Context, request EmbedContentRequest) (*EmbedContentResponse, error)
}
