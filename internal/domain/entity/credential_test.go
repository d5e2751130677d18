package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCredential(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected bool
	}{
		{
			name:     "valid key",
			token:    "sk-" + strings.Repeat("a", 20),
			expected: true,
		},
		{
			name:     "empty token",
			token:    "",
			expected: false,
		},
		{
			name:     "missing prefix",
			token:    strings.Repeat("a", 30),
			expected: false,
		},
		{
			name:     "wrong prefix",
			token:    "pk-" + strings.Repeat("a", 30),
			expected: false,
		},
		{
			name:     "exactly 20 characters is rejected",
			token:    "sk-" + strings.Repeat("a", 17),
			expected: false,
		},
		{
			name:     "21 characters is accepted",
			token:    "sk-" + strings.Repeat("a", 18),
			expected: true,
		},
		{
			name:     "prefix only",
			token:    "sk-",
			expected: false,
		},
		{
			name:     "prefix must be at the start",
			token:    " sk-" + strings.Repeat("a", 20),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateCredential(tt.token))
		})
	}
}
