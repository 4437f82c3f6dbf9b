// Copyright (c) 2025 A Bit of Help, Inc.

// Package countrycode holds the static, process-wide country-calling-code
// index: which region codes share a given calling code, in priority order,
// and which one is the default "main" region for that code.
package countrycode
