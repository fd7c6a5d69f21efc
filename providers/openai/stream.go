package openai

import (
	"context"
	"fmt"
	"io"
	"strings"

	"genbridge/core/parse"
	"genbridge/genai"
	"genbridge/internal/utils"
	"genbridge/providers/observability"
)

// GenerateContentStream implements the streaming half of
// genai.ContentGenerator. It sends the request with stream=true and returns a
// ResponseStream that yields one unified response per provider chunk as SSE
// events arrive, reconstructing multi-chunk tool calls along the way.
//
// Pre-stream errors (auth, bad request, network) are returned directly.
// Mid-stream errors, including unparseable tool-call arguments, are yielded
// through the iterator's error channel and terminate the stream.
func (generator *Generator) GenerateContentStream(ctx context.Context, request genai.GenerateContentRequest) (*genai.ResponseStream, error) {
	logger := observability.LoggerFromContext(ctx)

	if generator.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	chatRequest := requestToChatCompletion(request, generator.model)

	// Enable streaming with usage reporting
	chatRequest.Stream = utils.Ptr(true)
	chatRequest.StreamOptions = &streamOptions{IncludeUsage: true}

	if logger != nil {
		logger.Debug("preparing streaming request",
			observability.String(observability.AttrLLMProvider, "openai"),
			observability.String(observability.AttrLLMEndpoint, generator.baseURL),
			observability.String(observability.AttrLLMModel, chatRequest.Model),
			observability.Int(observability.AttrRequestContentsCount, len(request.Contents)),
			observability.Int(observability.AttrRequestToolsCount, len(chatRequest.Tools)),
		)
	}

	// Send the streaming request; the body is left open for SSE reading
	streamURL := generator.baseURL + chatCompletionsEndpoint
	httpResponse, err := utils.DoPostStream(ctx, generator.client, streamURL, generator.apiKey, chatRequest, generator.headers...)
	if err != nil {
		return nil, err
	}

	sseScanner := utils.NewSSEScanner(httpResponse.Body)

	iteratorFunc := func(yield func(*genai.GenerateContentResponse, error) bool) {
		// Ensure the response body is closed when the iterator is done,
		// including when the caller abandons the loop early.
		defer utils.CloseWithLog(httpResponse.Body)

		assembler := newStreamAssembler()

		for {
			// Check for context cancellation
			if ctx.Err() != nil {
				yield(nil, ctx.Err())
				return
			}

			payload, sseErr := sseScanner.Next()
			if sseErr == io.EOF {
				// Stream finished normally. Accumulated fragments that never
				// reached a terminal marker are discarded with the assembler.
				return
			}
			if sseErr != nil {
				yield(nil, fmt.Errorf("SSE read error: %w", sseErr))
				return
			}

			chunk, parseErr := unmarshalStreamChunk(payload)
			if parseErr != nil {
				yield(nil, fmt.Errorf("failed to parse streaming chunk: %w", parseErr))
				return
			}

			response, assembleErr := assembler.next(chunk)
			if assembleErr != nil {
				yield(nil, assembleErr)
				return
			}

			if !yield(response, nil) {
				return // Caller stopped iterating
			}
		}
	}

	return genai.NewResponseStream(iteratorFunc), nil
}

/*
	STREAM ASSEMBLY
*/

// functionCallAccumulator collects the fragments of one in-progress tool call
// across chunks. Fields are append-only until the call is finalized: the ID
// takes its first non-empty fragment, name and arguments grow by
// concatenation.
type functionCallAccumulator struct {
	id        string
	name      string
	arguments strings.Builder
}

// empty reports whether no fragment has arrived for this accumulator yet.
func (accumulator *functionCallAccumulator) empty() bool {
	return accumulator.id == "" && accumulator.name == "" && accumulator.arguments.Len() == 0
}

// streamAssembler turns an ordered chunk sequence into an ordered unified
// response sequence, exactly one response per chunk. It holds the only
// mutable state of a streaming call: the per-index tool-call accumulators.
// A single consumer advances it in strict arrival order, so no
// synchronization is needed, and memory stays O(1) in the number of chunks.
type streamAssembler struct {
	calls []*functionCallAccumulator
}

func newStreamAssembler() *streamAssembler {
	return &streamAssembler{}
}

// next consumes one chunk and produces its unified response.
//
// Tool-call fragments are folded into the accumulator first. When the
// chunk's finish reason marks the call complete ("tool_calls", or the
// equivalent legacy "function_call"), the
// accumulated argument text is parsed exactly once and the completed call is
// emitted in this chunk's response; any text delta on that chunk is dropped
// in favor of the call. Unparseable arguments are an error, never a
// silently-empty response. Every other chunk passes its text delta through
// verbatim (empty string when absent).
func (assembler *streamAssembler) next(chunk *chatCompletionStreamChunk) (*genai.GenerateContentResponse, error) {
	response := &genai.GenerateContentResponse{
		ModelVersion:  chunk.Model,
		UsageMetadata: usageToMetadata(chunk.Usage),
	}

	// Usage-only chunks (empty choices) still produce a response, keeping the
	// output sequence 1:1 with the input sequence.
	if len(chunk.Choices) == 0 {
		return response, nil
	}

	choice := chunk.Choices[0]

	for _, toolCallPart := range choice.Delta.ToolCalls {
		assembler.accumulate(toolCallPart)
	}

	finishReason := genai.FinishReasonUnspecified
	if choice.FinishReason != nil {
		finishReason = mapFinishReason(*choice.FinishReason)
	}

	if finishReason == genai.FinishReasonToolCalls {
		parts, err := assembler.finalize()
		if err != nil {
			return nil, err
		}
		if len(parts) > 0 {
			response.Candidates = []genai.Candidate{{
				Index:        choice.Index,
				FinishReason: finishReason,
				Content:      &genai.Content{Role: genai.RoleModel, Parts: parts},
			}}
			return response, nil
		}
	}

	var text string
	if choice.Delta.Content != nil {
		text = *choice.Delta.Content
	}

	response.Candidates = []genai.Candidate{{
		Index:        choice.Index,
		FinishReason: finishReason,
		Content:      &genai.Content{Role: genai.RoleModel, Parts: []genai.Part{{Text: text}}},
	}}
	return response, nil
}

// accumulate folds one tool-call delta into the accumulator for its index,
// growing the accumulator list when a new index appears. The ID is written
// once (first fragment wins); name and arguments are concatenated.
func (assembler *streamAssembler) accumulate(delta streamToolCallPart) {
	for len(assembler.calls) <= delta.Index {
		assembler.calls = append(assembler.calls, &functionCallAccumulator{})
	}

	accumulator := assembler.calls[delta.Index]

	if accumulator.id == "" && delta.ID != "" {
		accumulator.id = delta.ID
	}
	if delta.Function.Name != "" {
		accumulator.name += delta.Function.Name
	}
	if delta.Function.Arguments != "" {
		accumulator.arguments.WriteString(delta.Function.Arguments)
	}
}

// finalize parses every accumulated call's argument text and returns the
// completed calls as parts, in index order. The accumulators are consumed:
// state never leaks into a later call on the same stream.
func (assembler *streamAssembler) finalize() ([]genai.Part, error) {
	calls := assembler.calls
	assembler.calls = nil

	var parts []genai.Part
	for _, accumulator := range calls {
		if accumulator.empty() {
			continue
		}

		args, err := parse.ParseArguments(accumulator.arguments.String())
		if err != nil {
			return nil, fmt.Errorf("tool call %q: %w", accumulator.name, err)
		}

		parts = append(parts, genai.Part{FunctionCall: &genai.FunctionCall{
			ID:   callID(accumulator.id),
			Name: accumulator.name,
			Args: args,
		}})
	}
	return parts, nil
}
