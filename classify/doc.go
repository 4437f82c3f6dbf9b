// Copyright (c) 2025 A Bit of Help, Inc.

// Package classify resolves which region a phone number belongs to and
// what kind of number it is, against metadata served by metadata.Store.
//
// Region resolution and number-type classification are both deterministic
// match ladders: region resolution walks the country-code index in its
// declared order, and number-type classification walks a fixed category
// priority, returning the first hit in each case.
package classify
