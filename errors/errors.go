// Copyright (c) 2025 A Bit of Help, Inc.

// Package errors provides a small internal error taxonomy for the phone
// number library. It currently carries only what the metadata store's load
// path exercises; see DESIGN.md for the teacher surface trimmed from here.
package errors

import (
	"github.com/abitofhelp/phonenumber/errors/core"
	"github.com/abitofhelp/phonenumber/errors/domain"
)

// ErrorCode is an alias for core.ErrorCode.
type ErrorCode = core.ErrorCode

// MetadataUnavailableCode categorizes a metadata file that is missing or
// malformed at first touch.
const MetadataUnavailableCode = core.MetadataUnavailableCode

// DomainError is an alias for domain.DomainError.
type DomainError = domain.DomainError

// NewMetadataUnavailable creates an error describing why a region's metadata
// could not be materialized.
func NewMetadataUnavailable(region string, cause error) *DomainError {
	return domain.NewDomainError(MetadataUnavailableCode, "metadata unavailable for region "+region, cause)
}
