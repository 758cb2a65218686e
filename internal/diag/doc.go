// Package diag renders compiler-style, location-aware diagnostic frames for
// configuration-document failures.
//
// # Purpose
//
//   - Resolve a document identifier to a canonical path, load its lines and
//     validate the requested error location (resolver.go).
//   - Compute the context window around the error line and assemble the
//     printable frame: header, gutter, highlighted source rows, caret row,
//     cause footer and optional annotation block (compose.go).
//   - Select one of two fixed palettes: external (red marks) for user
//     content, self-diagnostic (magenta marks) for the renderer's own misuse
//     (palette.go).
//
// # Scope
//
// Package diag does not parse any document format and does not recover from
// anything: every failure path ends in a rendered diagnostic, and fatal paths
// terminate the process with status 1. Translating format-specific decode
// failures into Request values lives in internal/decode, and syntax
// highlighting lives in internal/highlight.
//
// # Fatal paths
//
// Caller misuse (inline-code sentinel paths, unreadable documents, line
// numbers outside the document) is reported against the caller's own source
// location through an internal constructor that clamps its coordinates to
// known-valid values, so the self-report can never re-enter validation.
package diag
