// Copyright (c) 2025 A Bit of Help, Inc.

package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinWithAnd(t *testing.T) {
	tests := []struct {
		name           string
		items          []string
		useOxfordComma bool
		expected       string
	}{
		{
			name:           "empty slice",
			items:          []string{},
			useOxfordComma: false,
			expected:       "",
		},
		{
			name:           "single item",
			items:          []string{"apple"},
			useOxfordComma: false,
			expected:       "apple",
		},
		{
			name:           "two items without Oxford comma",
			items:          []string{"apple", "banana"},
			useOxfordComma: false,
			expected:       "apple and banana",
		},
		{
			name:           "two items with Oxford comma (should be the same)",
			items:          []string{"apple", "banana"},
			useOxfordComma: true,
			expected:       "apple and banana",
		},
		{
			name:           "three items without Oxford comma",
			items:          []string{"apple", "banana", "cherry"},
			useOxfordComma: false,
			expected:       "apple, banana and cherry",
		},
		{
			name:           "three items with Oxford comma",
			items:          []string{"apple", "banana", "cherry"},
			useOxfordComma: true,
			expected:       "apple, banana, and cherry",
		},
		{
			name:           "four items without Oxford comma",
			items:          []string{"apple", "banana", "cherry", "date"},
			useOxfordComma: false,
			expected:       "apple, banana, cherry and date",
		},
		{
			name:           "four items with Oxford comma",
			items:          []string{"apple", "banana", "cherry", "date"},
			useOxfordComma: true,
			expected:       "apple, banana, cherry, and date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := JoinWithAnd(tt.items, tt.useOxfordComma)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		expected bool
	}{
		{
			name:     "empty string",
			s:        "",
			expected: true,
		},
		{
			name:     "whitespace only",
			s:        "   \t\n",
			expected: true,
		},
		{
			name:     "non-empty string",
			s:        "hello",
			expected: false,
		},
		{
			name:     "string with whitespace",
			s:        "  hello  ",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsEmpty(tt.s)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsNotEmpty(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		expected bool
	}{
		{
			name:     "empty string",
			s:        "",
			expected: false,
		},
		{
			name:     "whitespace only",
			s:        "   \t\n",
			expected: false,
		},
		{
			name:     "non-empty string",
			s:        "hello",
			expected: true,
		},
		{
			name:     "string with whitespace",
			s:        "  hello  ",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNotEmpty(tt.s)
			assert.Equal(t, tt.expected, result)
		})
	}
}
