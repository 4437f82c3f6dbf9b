// Copyright (c) 2025 A Bit of Help, Inc.

// Package normalize turns raw user-typed phone number text into a clean
// digit string, and separates a trailing extension from the number it
// belongs to.
//
// Everything here is pure and stateless: no metadata, no I/O, just the
// Unicode-aware pattern matching compiled once in internal/patterns.
package normalize
