// Package genai defines the shared, provider-agnostic types and the unified
// ContentGenerator interface backed by provider adapters. Each adapter's
// conversion layer maps these types to its own wire format, keeping callers
// decoupled from provider-specific details.
//
// Requests flow through [GenerateContentRequest]; non-streaming responses
// come back as a single [GenerateContentResponse], and streaming responses
// arrive through a [ResponseStream] of self-contained response objects that
// callers can treat uniformly regardless of how the underlying call was made.
package genai
