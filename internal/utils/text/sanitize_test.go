package text_test

import (
	"testing"

	"clipdigest/internal/utils/text"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "collapses runs of spaces",
			input:    "Hello    world",
			expected: "Hello world",
		},
		{
			name:     "collapses tabs and spaces",
			input:    "Hello\t\t  world",
			expected: "Hello world",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  Hello world  \n",
			expected: "Hello world",
		},
		{
			name:     "keeps single newlines",
			input:    "line one\nline two",
			expected: "line one\nline two",
		},
		{
			name:     "keeps paragraph breaks",
			input:    "paragraph one\n\nparagraph two",
			expected: "paragraph one\n\nparagraph two",
		},
		{
			name:     "collapses three newlines to two",
			input:    "paragraph one\n\n\nparagraph two",
			expected: "paragraph one\n\nparagraph two",
		},
		{
			name:     "collapses many newlines to two",
			input:    "paragraph one\n\n\n\n\n\nparagraph two",
			expected: "paragraph one\n\nparagraph two",
		},
		{
			name:     "strips spaces around newlines",
			input:    "line one   \n   line two",
			expected: "line one\nline two",
		},
		{
			name:     "normalizes CRLF line endings",
			input:    "line one\r\nline two\r\n\r\n\r\nline three",
			expected: "line one\nline two\n\nline three",
		},
		{
			name:     "whitespace only becomes empty",
			input:    " \t \n \n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello    world",
		"  para one\n\n\n\npara two\t\tend  ",
		"already clean text",
		"",
	}

	for _, input := range inputs {
		once := text.Sanitize(input)
		twice := text.Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
