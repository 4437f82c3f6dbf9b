// Copyright (c) 2025 A Bit of Help, Inc.

// Package core provides the core error handling functionality for the errors package.
package core

// ErrorCode represents a unique error code for categorizing errors.
type ErrorCode string

// MetadataUnavailableCode is used when a metadata file is missing or malformed
// at first touch.
const MetadataUnavailableCode ErrorCode = "METADATA_UNAVAILABLE"
