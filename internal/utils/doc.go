// Package utils provides shared low-level helpers used throughout the
// genbridge internals. It covers HTTP request helpers for both synchronous
// and streaming (SSE) communication with provider APIs, plus generic pointer
// and string utilities.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips,
// [DoPostStream] together with [SSEScanner] for Server-Sent Events streaming,
// and [Ptr] for converting values to pointers.
package utils
