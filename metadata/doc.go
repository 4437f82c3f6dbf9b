// Copyright (c) 2025 A Bit of Help, Inc.

// Package metadata defines the per-region phone number record model and the
// lazy, concurrency-safe Store that materializes it from embedded YAML.
//
// Entries are immutable once loaded: there is no invalidation, no TTL, and
// no eviction, because the backing data never changes for the life of the
// process.
package metadata
