// Copyright (c) 2025 A Bit of Help, Inc.

// Package errors provides the internal error taxonomy used while loading
// metadata and interpreting phone numbers.
//
// None of these types are thrown across the public surface of the library.
// Public operations (Normalize, RegionCodeForNumber, NumberType,
// IsValidNumber, ...) answer in the caller-facing vocabulary instead: a
// boolean, an absent value, or one of the declared result enums. The only
// producer of these errors is the metadata loader, which builds one for a
// malformed metadata file and logs it rather than returning it.
package errors
