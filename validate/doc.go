// Copyright (c) 2025 A Bit of Help, Inc.

// Package validate composes normalize, classify, and metadata.Store to
// answer possibility and validity questions about a phone number. It adds
// no state of its own: every function here is a pure composition of its
// collaborators' lookups.
package validate
