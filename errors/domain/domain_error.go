// Copyright (c) 2025 A Bit of Help, Inc.

// Package domain provides domain-level error types layered on top of errors/core.
package domain

import (
	"github.com/abitofhelp/phonenumber/errors/core"
)

// DomainError represents a domain-specific failure, such as a malformed
// metadata record or a region that is syntactically well-formed but not
// recognized by the country-code index.
type DomainError struct {
	*core.BaseError
}

// NewDomainError creates a new DomainError.
func NewDomainError(code core.ErrorCode, message string, cause error) *DomainError {
	return &DomainError{BaseError: core.NewBaseError(code, message, cause)}
}
