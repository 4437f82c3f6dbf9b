// Copyright (c) 2025 A Bit of Help, Inc.

// Package stringutil provides additional string manipulation utilities
// beyond what's available in the standard library.
//
// It offers a small collection of helper functions for string operations
// not directly available in the standard library's strings package:
// whitespace detection (IsEmpty, IsNotEmpty) and grammatically correct
// string joining (JoinWithAnd), used by the validate package when it
// reports which checks a number failed.
package stringutil
