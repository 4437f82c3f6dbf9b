// Copyright (c) 2025 A Bit of Help, Inc.

// Package stringutil provides additional string manipulation utilities
// beyond what's available in the standard library.
package stringutil

import (
	"strings"
)

// JoinWithAnd joins a slice of strings with commas and "and".
// It handles different list lengths appropriately and supports Oxford comma usage.
// Parameters:
//   - items: The slice of strings to join
//   - useOxfordComma: Whether to include a comma before "and" for lists of 3 or more items
//
// Returns:
//   - string: The joined string, or an empty string if items is empty
func JoinWithAnd(items []string, useOxfordComma bool) string {
	length := len(items)

	if length == 0 {
		return ""
	}

	if length == 1 {
		return items[0]
	}

	if length == 2 {
		return items[0] + " and " + items[1]
	}

	// For 3 or more items
	var result string
	for i := 0; i < length-1; i++ {
		result += items[i] + ", "
	}

	// Remove the trailing comma and space
	result = result[:len(result)-2]

	// Add the final part with or without Oxford comma
	if useOxfordComma {
		result += ", and " + items[length-1]
	} else {
		result += " and " + items[length-1]
	}

	return result
}

// IsEmpty checks if a string is empty or contains only whitespace.
// It uses strings.TrimSpace to remove all leading and trailing whitespace.
// Parameters:
//   - s: The string to check
//
// Returns:
//   - bool: true if the string is empty or contains only whitespace, false otherwise
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotEmpty checks if a string is not empty and contains non-whitespace characters.
// It's the logical opposite of IsEmpty.
// Parameters:
//   - s: The string to check
//
// Returns:
//   - bool: true if the string contains non-whitespace characters, false otherwise
func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}
