// Copyright (c) 2025 A Bit of Help, Inc.

// Package patterns compiles, once per process, every literal regular
// expression and lookup table the normalizer and classifier need: the
// digit class, the plus-sign variants, the valid-punctuation class, the
// alpha-to-keypad (E.161) mapping, the viable-phone-number pattern, and the
// extension pattern.
//
// Nothing here depends on metadata; these are the fixed literals from the
// specification, not per-region data.
package patterns
