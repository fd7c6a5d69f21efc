// Package parse decodes tool-call argument payloads produced by language
// models. Models frequently emit slightly malformed JSON (single quotes,
// trailing commas, unquoted keys), so parsing is strict-first with an
// automatic jsonrepair retry before giving up.
package parse
