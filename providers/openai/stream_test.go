package openai

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"genbridge/genai"
)

// writeSSE is a test helper that writes an SSE data line to the response writer and flushes.
func writeSSE(writer http.ResponseWriter, data string) {
	fmt.Fprintf(writer, "data: %s\n\n", data)
	if flusher, ok := writer.(http.Flusher); ok {
		flusher.Flush()
	}
}

// writeSSEDone writes the [DONE] sentinel to signal end of stream.
func writeSSEDone(writer http.ResponseWriter) {
	fmt.Fprintf(writer, "data: [DONE]\n\n")
	if flusher, ok := writer.(http.Flusher); ok {
		flusher.Flush()
	}
}

// newStreamServer builds an SSE test server that replays the given chunk
// payloads followed by the [DONE] sentinel.
func newStreamServer(chunks ...string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "text/event-stream")
		writer.WriteHeader(http.StatusOK)
		for _, chunk := range chunks {
			writeSSE(writer, chunk)
		}
		writeSSEDone(writer)
	}))
}

// TestGenerateContentStream_TextPassthrough verifies that a text-only stream
// reproduces each delta verbatim, one response per chunk, in input order,
// with no function calls.
func TestGenerateContentStream_TextPassthrough(t *testing.T) {
	server := newStreamServer(
		`{"id":"chatcmpl-1","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"role":"assistant","content":"Hello"},"finish_reason":null}]}`,
		`{"id":"chatcmpl-1","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"content":" world"},"finish_reason":null}]}`,
		`{"id":"chatcmpl-1","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"content":"!"},"finish_reason":"stop"}]}`,
	)
	defer server.Close()

	generator := New().WithBaseURL(server.URL).WithAPIKey("test-key")

	stream, err := generator.GenerateContentStream(context.Background(), genai.GenerateContentRequest{
		Model:    "gpt-4o",
		Contents: []genai.Content{genai.NewUserContent("Hi")},
	})
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	var deltas []string
	var finishReason genai.FinishReason
	for response, iterErr := range stream.Iter() {
		if iterErr != nil {
			t.Fatalf("unexpected error: %v", iterErr)
		}
		if calls := response.FunctionCalls(); len(calls) != 0 {
			t.Fatalf("unexpected function calls in text-only stream: %v", calls)
		}
		deltas = append(deltas, response.Text())
		if len(response.Candidates) > 0 && response.Candidates[0].FinishReason != genai.FinishReasonUnspecified {
			finishReason = response.Candidates[0].FinishReason
		}
	}

	if len(deltas) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(deltas))
	}
	if joined := strings.Join(deltas, ""); joined != "Hello world!" {
		t.Errorf("expected 'Hello world!', got %q", joined)
	}
	if deltas[0] != "Hello" || deltas[1] != " world" || deltas[2] != "!" {
		t.Errorf("deltas out of order: %v", deltas)
	}
	if finishReason != genai.FinishReasonStop {
		t.Errorf("expected finish reason stop, got %q", finishReason)
	}
}

// TestGenerateContentStream_ToolCallAccumulation verifies that name and
// argument fragments spread across chunks are reconstructed into exactly one
// completed function call, emitted only on the terminal chunk.
func TestGenerateContentStream_ToolCallAccumulation(t *testing.T) {
	server := newStreamServer(
		`{"id":"chatcmpl-2","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"role":"assistant","tool_calls":[{"index":0,"id":"call_abc123","type":"function","function":{"name":"get_","arguments":""}}]},"finish_reason":null}]}`,
		`{"id":"chatcmpl-2","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"function":{"name":"weather","arguments":"{\"city\":"}}]},"finish_reason":null}]}`,
		`{"id":"chatcmpl-2","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"function":{"arguments":"\"ny\"}"}}]},"finish_reason":null}]}`,
		`{"id":"chatcmpl-2","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{},"finish_reason":"tool_calls"}]}`,
	)
	defer server.Close()

	generator := New().WithBaseURL(server.URL).WithAPIKey("test-key")

	stream, err := generator.GenerateContentStream(context.Background(), genai.GenerateContentRequest{
		Model:    "gpt-4o",
		Contents: []genai.Content{genai.NewUserContent("What's the weather?")},
	})
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	var responses []*genai.GenerateContentResponse
	for response, iterErr := range stream.Iter() {
		if iterErr != nil {
			t.Fatalf("unexpected error: %v", iterErr)
		}
		responses = append(responses, response)
	}

	if len(responses) != 4 {
		t.Fatalf("expected 4 responses (one per chunk), got %d", len(responses))
	}

	// No premature emission: the call appears only on the terminal chunk.
	for i, response := range responses[:3] {
		if calls := response.FunctionCalls(); len(calls) != 0 {
			t.Errorf("response %d carries a function call before the terminal chunk", i)
		}
	}

	calls := responses[3].FunctionCalls()
	if len(calls) != 1 {
		t.Fatalf("expected exactly 1 function call on the terminal chunk, got %d", len(calls))
	}
	call := calls[0]
	if call.ID != "call_abc123" {
		t.Errorf("expected call ID 'call_abc123', got %q", call.ID)
	}
	if call.Name != "get_weather" {
		t.Errorf("expected function name 'get_weather', got %q", call.Name)
	}
	if city, ok := call.Args["city"].(string); !ok || city != "ny" {
		t.Errorf("expected parsed argument city=ny, got %v", call.Args)
	}
	if responses[3].Candidates[0].FinishReason != genai.FinishReasonToolCalls {
		t.Errorf("expected finish reason tool_calls, got %q", responses[3].Candidates[0].FinishReason)
	}
}

// TestGenerateContentStream_TextDroppedOnFinalizationChunk verifies the
// explicit policy that a text delta sharing the chunk that finalizes a tool
// call is dropped in favor of the call.
func TestGenerateContentStream_TextDroppedOnFinalizationChunk(t *testing.T) {
	server := newStreamServer(
		`{"id":"chatcmpl-3","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"id":"call_1","function":{"name":"lookup","arguments":"{}"}}]},"finish_reason":null}]}`,
		`{"id":"chatcmpl-3","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"content":"ignored"},"finish_reason":"tool_calls"}]}`,
	)
	defer server.Close()

	generator := New().WithBaseURL(server.URL).WithAPIKey("test-key")

	stream, err := generator.GenerateContentStream(context.Background(), genai.GenerateContentRequest{
		Contents: []genai.Content{genai.NewUserContent("lookup")},
	})
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	var responses []*genai.GenerateContentResponse
	for response, iterErr := range stream.Iter() {
		if iterErr != nil {
			t.Fatalf("unexpected error: %v", iterErr)
		}
		responses = append(responses, response)
	}

	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	final := responses[1]
	if final.Text() != "" {
		t.Errorf("expected text dropped on finalization chunk, got %q", final.Text())
	}
	if calls := final.FunctionCalls(); len(calls) != 1 || calls[0].Name != "lookup" {
		t.Errorf("expected the completed lookup call, got %v", calls)
	}
}

// TestGenerateContentStream_MalformedArguments verifies that a terminal chunk
// whose accumulated argument text cannot be parsed (even after repair) yields
// an explicit error through the iterator rather than a silently-empty
// response.
func TestGenerateContentStream_MalformedArguments(t *testing.T) {
	server := newStreamServer(
		`{"id":"chatcmpl-4","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"id":"call_1","function":{"name":"get_weather","arguments":"[1, 2, 3]"}}]},"finish_reason":null}]}`,
		`{"id":"chatcmpl-4","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{},"finish_reason":"tool_calls"}]}`,
	)
	defer server.Close()

	generator := New().WithBaseURL(server.URL).WithAPIKey("test-key")

	stream, err := generator.GenerateContentStream(context.Background(), genai.GenerateContentRequest{
		Contents: []genai.Content{genai.NewUserContent("weather")},
	})
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	var streamErr error
	var callSeen bool
	for response, iterErr := range stream.Iter() {
		if iterErr != nil {
			streamErr = iterErr
			break
		}
		if len(response.FunctionCalls()) > 0 {
			callSeen = true
		}
	}

	if streamErr == nil {
		t.Fatal("expected an error for unparseable tool-call arguments, got none")
	}
	if !strings.Contains(streamErr.Error(), "get_weather") {
		t.Errorf("expected error to name the failing call, got: %v", streamErr)
	}
	if callSeen {
		t.Error("no function call should be emitted when arguments are unparseable")
	}
}

// TestGenerateContentStream_RepairedArguments verifies that slightly
// malformed argument JSON (single quotes, trailing comma) is repaired and the
// call still completes.
func TestGenerateContentStream_RepairedArguments(t *testing.T) {
	server := newStreamServer(
		`{"id":"chatcmpl-5","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"id":"call_1","function":{"name":"get_weather","arguments":"{'city': 'ny',}"}}]},"finish_reason":null}]}`,
		`{"id":"chatcmpl-5","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{},"finish_reason":"tool_calls"}]}`,
	)
	defer server.Close()

	generator := New().WithBaseURL(server.URL).WithAPIKey("test-key")

	stream, err := generator.GenerateContentStream(context.Background(), genai.GenerateContentRequest{
		Contents: []genai.Content{genai.NewUserContent("weather")},
	})
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	collected, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}

	calls := collected.FunctionCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 function call, got %d", len(calls))
	}
	if city, ok := calls[0].Args["city"].(string); !ok || city != "ny" {
		t.Errorf("expected repaired argument city=ny, got %v", calls[0].Args)
	}
}

// TestGenerateContentStream_LegacyFunctionCallFinishReason verifies that the
// legacy "function_call" finish reason finalizes the pending call exactly
// like "tool_calls".
func TestGenerateContentStream_LegacyFunctionCallFinishReason(t *testing.T) {
	server := newStreamServer(
		`{"id":"chatcmpl-6","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"id":"call_1","function":{"name":"ping","arguments":"{}"}}]},"finish_reason":null}]}`,
		`{"id":"chatcmpl-6","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{},"finish_reason":"function_call"}]}`,
	)
	defer server.Close()

	generator := New().WithBaseURL(server.URL).WithAPIKey("test-key")

	stream, err := generator.GenerateContentStream(context.Background(), genai.GenerateContentRequest{
		Contents: []genai.Content{genai.NewUserContent("ping")},
	})
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	collected, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if calls := collected.FunctionCalls(); len(calls) != 1 || calls[0].Name != "ping" {
		t.Errorf("expected the completed ping call, got %v", calls)
	}
}

// TestGenerateContentStream_NoTerminalMarker verifies that accumulated
// fragments are discarded when the stream ends without a terminal finish
// reason: no function call is ever emitted.
func TestGenerateContentStream_NoTerminalMarker(t *testing.T) {
	server := newStreamServer(
		`{"id":"chatcmpl-7","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"id":"call_1","function":{"name":"get_weather","arguments":"{\"city\":"}}]},"finish_reason":null}]}`,
	)
	defer server.Close()

	generator := New().WithBaseURL(server.URL).WithAPIKey("test-key")

	stream, err := generator.GenerateContentStream(context.Background(), genai.GenerateContentRequest{
		Contents: []genai.Content{genai.NewUserContent("weather")},
	})
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	responseCount := 0
	for response, iterErr := range stream.Iter() {
		if iterErr != nil {
			t.Fatalf("unexpected error: %v", iterErr)
		}
		if len(response.FunctionCalls()) > 0 {
			t.Error("incomplete call must not be emitted")
		}
		responseCount++
	}
	if responseCount != 1 {
		t.Errorf("expected 1 response, got %d", responseCount)
	}
}

// TestGenerateContentStream_EmptyStream verifies that a stream with zero
// chunks produces zero responses.
func TestGenerateContentStream_EmptyStream(t *testing.T) {
	server := newStreamServer()
	defer server.Close()

	generator := New().WithBaseURL(server.URL).WithAPIKey("test-key")

	stream, err := generator.GenerateContentStream(context.Background(), genai.GenerateContentRequest{
		Contents: []genai.Content{genai.NewUserContent("Hi")},
	})
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	responseCount := 0
	for _, iterErr := range stream.Iter() {
		if iterErr != nil {
			t.Fatalf("unexpected error: %v", iterErr)
		}
		responseCount++
	}
	if responseCount != 0 {
		t.Errorf("expected 0 responses from an empty stream, got %d", responseCount)
	}
}

// TestGenerateContentStream_UsageChunk verifies that a usage-only final chunk
// still yields a response and that usage is mapped to unified metadata.
func TestGenerateContentStream_UsageChunk(t *testing.T) {
	server := newStreamServer(
		`{"id":"chatcmpl-8","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"content":"Hi"},"finish_reason":"stop"}]}`,
		`{"id":"chatcmpl-8","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[],"usage":{"prompt_tokens":10,"completion_tokens":3,"total_tokens":13}}`,
	)
	defer server.Close()

	generator := New().WithBaseURL(server.URL).WithAPIKey("test-key")

	stream, err := generator.GenerateContentStream(context.Background(), genai.GenerateContentRequest{
		Contents: []genai.Content{genai.NewUserContent("Hi")},
	})
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	collected, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if collected.Text() != "Hi" {
		t.Errorf("expected text 'Hi', got %q", collected.Text())
	}
	if collected.UsageMetadata == nil {
		t.Fatal("expected usage metadata")
	}
	if collected.UsageMetadata.TotalTokenCount != 13 {
		t.Errorf("expected 13 total tokens, got %d", collected.UsageMetadata.TotalTokenCount)
	}
}

// TestGenerateContentStream_ContextCancellation verifies that cancelling the
// context terminates the stream with a context error and releases the
// transport.
func TestGenerateContentStream_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "text/event-stream")
		writer.WriteHeader(http.StatusOK)
		writeSSE(writer, `{"id":"chatcmpl-9","object":"chat.completion.chunk","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"delta":{"role":"assistant","content":"Hello"},"finish_reason":null}]}`)
		<-request.Context().Done()
	}))
	defer server.Close()

	generator := New().WithBaseURL(server.URL).WithAPIKey("test-key")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := generator.GenerateContentStream(ctx, genai.GenerateContentRequest{
		Contents: []genai.Content{genai.NewUserContent("Hi")},
	})
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	responseCount := 0
	for response, iterErr := range stream.Iter() {
		if iterErr != nil {
			break // expected: context cancellation surfaced mid-stream
		}
		responseCount++
		if response.Text() != "" {
			cancel()
		}
	}

	if responseCount == 0 {
		t.Error("expected at least one response before cancellation")
	}
}

// TestGenerateContentStream_PreStreamError verifies that HTTP-level failures
// are returned from GenerateContentStream directly, not through the iterator.
func TestGenerateContentStream_PreStreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(writer, `{"error":{"message":"Invalid API key"}}`)
	}))
	defer server.Close()

	generator := New().WithBaseURL(server.URL).WithAPIKey("bad-key")

	_, err := generator.GenerateContentStream(context.Background(), genai.GenerateContentRequest{
		Contents: []genai.Content{genai.NewUserContent("Hi")},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("expected 401 error, got: %v", err)
	}
}

// TestStreamAssembler_Isolation verifies that two assembler instances never
// cross-contaminate accumulator state when fed interleaved chunks.
func TestStreamAssembler_Isolation(t *testing.T) {
	first := newStreamAssembler()
	second := newStreamAssembler()

	nameChunk := func(name string) *chatCompletionStreamChunk {
		chunk := &chatCompletionStreamChunk{Choices: []streamChoice{{}}}
		part := streamToolCallPart{Index: 0}
		part.Function.Name = name
		chunk.Choices[0].Delta.ToolCalls = []streamToolCallPart{part}
		return chunk
	}
	argsChunk := func(args string) *chatCompletionStreamChunk {
		chunk := &chatCompletionStreamChunk{Choices: []streamChoice{{}}}
		part := streamToolCallPart{Index: 0}
		part.Function.Arguments = args
		chunk.Choices[0].Delta.ToolCalls = []streamToolCallPart{part}
		return chunk
	}
	terminalChunk := func() *chatCompletionStreamChunk {
		reason := "tool_calls"
		return &chatCompletionStreamChunk{Choices: []streamChoice{{FinishReason: &reason}}}
	}

	// Interleave the two streams' chunks.
	steps := []struct {
		assembler *streamAssembler
		chunk     *chatCompletionStreamChunk
	}{
		{first, nameChunk("alpha")},
		{second, nameChunk("beta")},
		{first, argsChunk(`{"a":1}`)},
		{second, argsChunk(`{"b":2}`)},
	}
	for _, step := range steps {
		if _, err := step.assembler.next(step.chunk); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	firstFinal, err := first.next(terminalChunk())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	secondFinal, err := second.next(terminalChunk())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firstCalls := firstFinal.FunctionCalls()
	secondCalls := secondFinal.FunctionCalls()
	if len(firstCalls) != 1 || len(secondCalls) != 1 {
		t.Fatalf("expected one call per stream, got %d and %d", len(firstCalls), len(secondCalls))
	}
	if firstCalls[0].Name != "alpha" || secondCalls[0].Name != "beta" {
		t.Errorf("accumulator state leaked across assemblers: %q, %q", firstCalls[0].Name, secondCalls[0].Name)
	}
	if _, ok := firstCalls[0].Args["a"]; !ok {
		t.Errorf("expected first stream's arguments, got %v", firstCalls[0].Args)
	}
	if _, ok := secondCalls[0].Args["b"]; !ok {
		t.Errorf("expected second stream's arguments, got %v", secondCalls[0].Args)
	}
}

// TestStreamAssembler_IDFirstWriteWins verifies that the call ID takes its
// first non-empty fragment and subsequent ID fragments are ignored.
func TestStreamAssembler_IDFirstWriteWins(t *testing.T) {
	assembler := newStreamAssembler()

	idChunk := func(id string) *chatCompletionStreamChunk {
		chunk := &chatCompletionStreamChunk{Choices: []streamChoice{{}}}
		chunk.Choices[0].Delta.ToolCalls = []streamToolCallPart{{Index: 0, ID: id}}
		return chunk
	}

	for _, chunk := range []*chatCompletionStreamChunk{idChunk("call_first"), idChunk("call_second")} {
		if _, err := assembler.next(chunk); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	nameChunk := &chatCompletionStreamChunk{Choices: []streamChoice{{}}}
	part := streamToolCallPart{Index: 0}
	part.Function.Name = "noop"
	part.Function.Arguments = "{}"
	nameChunk.Choices[0].Delta.ToolCalls = []streamToolCallPart{part}
	if _, err := assembler.next(nameChunk); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reason := "tool_calls"
	final, err := assembler.next(&chatCompletionStreamChunk{Choices: []streamChoice{{FinishReason: &reason}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := final.FunctionCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].ID != "call_first" {
		t.Errorf("expected first ID fragment to win, got %q", calls[0].ID)
	}
}

// TestStreamAssembler_SynthesizedID verifies that a call whose provider never
// sent an ID fragment still gets a usable ID at finalization.
func TestStreamAssembler_SynthesizedID(t *testing.T) {
	assembler := newStreamAssembler()

	chunk := &chatCompletionStreamChunk{Choices: []streamChoice{{}}}
	part := streamToolCallPart{Index: 0}
	part.Function.Name = "noop"
	part.Function.Arguments = "{}"
	chunk.Choices[0].Delta.ToolCalls = []streamToolCallPart{part}
	if _, err := assembler.next(chunk); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reason := "tool_calls"
	final, err := assembler.next(&chatCompletionStreamChunk{Choices: []streamChoice{{FinishReason: &reason}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := final.FunctionCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if !strings.HasPrefix(calls[0].ID, "call_") || len(calls[0].ID) <= len("call_") {
		t.Errorf("expected a synthesized call ID, got %q", calls[0].ID)
	}
}
