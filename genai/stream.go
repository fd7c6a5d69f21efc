package genai

import (
	"iter"
	"strings"
)

// ResponseStream wraps a streaming iterator over unified responses. It
// supports range-based iteration for real-time consumption and a convenience
// Collect() for callers who want one merged response.
//
// The stream is consumer-pulled: the adapter advances the underlying provider
// stream only when the next item is requested, so backpressure propagates
// naturally to the transport. Callers must consume the stream, either by
// iterating with Iter() (breaking out early is fine) or by calling Collect();
// the adapter holds the provider connection open until the iterator completes
// or is abandoned via a loop break.
type ResponseStream struct {
	iterator iter.Seq2[*GenerateContentResponse, error]
}

// NewResponseStream creates a ResponseStream from a raw iterator. The
// iterator yields responses with a nil error for normal chunks and may yield
// a non-nil error to signal a mid-stream failure.
func NewResponseStream(iterator iter.Seq2[*GenerateContentResponse, error]) *ResponseStream {
	return &ResponseStream{iterator: iterator}
}

// Iter returns the underlying iterator for use with range-over-func loops.
//
// Example:
//
//	for response, err := range stream.Iter() {
//	    if err != nil { handle error }
//	    fmt.Print(response.Text())
//	}
func (stream *ResponseStream) Iter() iter.Seq2[*GenerateContentResponse, error] {
	return stream.iterator
}

// Collect consumes the entire stream and returns one merged response: text
// deltas concatenated into a single text part, completed function calls
// appended in arrival order, the last observed finish reason and usage kept.
// A mid-stream error terminates collection and returns the partial result
// with the error.
func (stream *ResponseStream) Collect() (*GenerateContentResponse, error) {
	merged := &GenerateContentResponse{}
	var text strings.Builder
	var calls []Part
	var finishReason FinishReason

	for response, err := range stream.iterator {
		if err != nil {
			return finalizeCollected(merged, text.String(), calls, finishReason), err
		}
		if response == nil {
			continue
		}
		if response.UsageMetadata != nil {
			merged.UsageMetadata = response.UsageMetadata
		}
		if response.ModelVersion != "" {
			merged.ModelVersion = response.ModelVersion
		}
		for _, candidate := range response.Candidates {
			if candidate.FinishReason != FinishReasonUnspecified {
				finishReason = candidate.FinishReason
			}
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part.FunctionCall != nil {
					calls = append(calls, part)
					continue
				}
				text.WriteString(part.Text)
			}
		}
	}

	return finalizeCollected(merged, text.String(), calls, finishReason), nil
}

func finalizeCollected(merged *GenerateContentResponse, text string, calls []Part, finishReason FinishReason) *GenerateContentResponse {
	var parts []Part
	if text != "" {
		parts = append(parts, Part{Text: text})
	}
	parts = append(parts, calls...)

	if len(parts) > 0 || finishReason != FinishReasonUnspecified {
		merged.Candidates = []Candidate{{
			Content:      &Content{Role: RoleModel, Parts: parts},
			FinishReason: finishReason,
		}}
	}
	return merged
}
