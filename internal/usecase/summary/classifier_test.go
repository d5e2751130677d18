package summary_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"clipdigest/internal/domain/entity"
	"clipdigest/internal/usecase/summary"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "An unexpected error occurred.",
		},
		{
			name:     "categorized error returns its message",
			err:      entity.NewSummaryError(entity.KindRemoteAuth, "Invalid API key. Please check your API key and try again.", nil),
			expected: "Invalid API key. Please check your API key and try again.",
		},
		{
			name:     "categorized error without message falls back to the kind",
			err:      entity.NewSummaryError(entity.KindRateLimited, "", nil),
			expected: "Rate limit exceeded. Please wait a moment and try again.",
		},
		{
			name:     "wrapped categorized error",
			err:      fmt.Errorf("summarize: %w", entity.NewSummaryError(entity.KindNetwork, "Network error. Please check your connection and try again.", nil)),
			expected: "Network error. Please check your connection and try again.",
		},
		{
			name:     "untyped 401",
			err:      errors.New("API error: status 401 Unauthorized"),
			expected: "Invalid API key. Please check your API key and try again.",
		},
		{
			name:     "untyped 429",
			err:      errors.New("status 429: too many requests"),
			expected: "Rate limit exceeded. Please wait a moment and try again.",
		},
		{
			name:     "untyped 500",
			err:      errors.New("upstream returned 500"),
			expected: "Summarization service error. Please try again later.",
		},
		{
			name:     "401 takes priority over 500",
			err:      errors.New("401 after retrying 500"),
			expected: "Invalid API key. Please check your API key and try again.",
		},
		{
			name:     "untyped error passes through verbatim",
			err:      errors.New("Something went wrong"),
			expected: "Something went wrong",
		},
		{
			name:     "empty message falls back to generic",
			err:      errors.New(""),
			expected: "An unexpected error occurred.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, summary.Classify(tt.err))
		})
	}
}

func TestMessageForKind(t *testing.T) {
	tests := []struct {
		kind     entity.Kind
		expected string
	}{
		{entity.KindInvalidCredential, "Missing or invalid API key. Please save a valid key first."},
		{entity.KindRemoteAuth, "Invalid API key. Please check your API key and try again."},
		{entity.KindRateLimited, "Rate limit exceeded. Please wait a moment and try again."},
		{entity.KindRemoteService, "Summarization service error. Please try again later."},
		{entity.KindNetwork, "Network error. Please check your connection and try again."},
		{entity.KindInvalidResponse, "Invalid response from summarization service."},
		{entity.KindGeneric, "An unexpected error occurred."},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, summary.MessageForKind(tt.kind))
		})
	}
}

func TestKindForStatus(t *testing.T) {
	tests := []struct {
		code     int
		expected entity.Kind
	}{
		{401, entity.KindRemoteAuth},
		{429, entity.KindRateLimited},
		{500, entity.KindRemoteService},
		{502, entity.KindRemoteService},
		{503, entity.KindRemoteService},
		{400, entity.KindGeneric},
		{403, entity.KindGeneric},
		{404, entity.KindGeneric},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, summary.KindForStatus(tt.code))
		})
	}
}
