// Copyright (c) 2025 A Bit of Help, Inc.

// Package phonenumber is the public surface of this module: the
// PhoneNumber value type, its associated enums, and an Instance that wires
// together a metadata store, the country-code index, the classifier, and
// the validator so callers don't have to assemble the pieces themselves.
package phonenumber
