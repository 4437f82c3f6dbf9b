// Copyright (c) 2025 A Bit of Help, Inc.

// Package config carries the settings phonenumber.Instance and
// metadata.Store need at construction time: the metadata file-name prefix,
// an optional external metadata filesystem, and the default log level.
//
// Values can be built fluently with the With* setters, or loaded from
// environment variables with Load, using the same koanf stack the metadata
// package uses for its own declarative records.
package config
