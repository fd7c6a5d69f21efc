// Package openai implements the genai.ContentGenerator interface against
// OpenAI-compatible chat-completions APIs.
//
// The main entry point is [New], which reads OPENAI_API_KEY and
// OPENAI_BASE_URL from the environment. Use [Generator.WithModel],
// [Generator.WithAPIKey], [Generator.WithBaseURL] and [Generator.WithHeader]
// to override configuration programmatically; configuration is immutable once
// requests start flowing.
//
// Streaming is available through [Generator.GenerateContentStream], which
// returns a [genai.ResponseStream] yielding exactly one unified response per
// provider chunk, in provider order. Tool calls streamed as fragments across
// chunks are reconstructed by the package's stream assembler and emitted as a
// single completed function call on the chunk that finalizes them.
package openai
