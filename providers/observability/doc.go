// Package observability defines the logging interface and semantic
// conventions used for structured logging throughout genbridge.
//
// The central entry point is [Logger]. Callers attach a logger to a
// [context.Context] with [ContextWithLogger]; adapters retrieve it with
// [LoggerFromContext] and stay silent when none is attached, so logging is
// always optional.
//
// The semconv.go file contains the standard attribute-key constants that
// should be used when recording observations, ensuring consistency across
// providers and components.
package observability
