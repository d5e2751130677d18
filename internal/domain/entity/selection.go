package entity

import (
	"fmt"
	"strings"

	"clipdigest/internal/utils/text"
)

const (
	// MinSelectionLength is the minimum trimmed length eligible for summarization.
	MinSelectionLength = 10

	// MaxSelectionLength is the maximum trimmed length eligible for summarization.
	MaxSelectionLength = 10000
)

// Fixed user-facing validation messages. Validation failures are surfaced
// directly to the display, so these are the exact strings users see.
var (
	msgNoText = "No text provided"
	msgTooShort = fmt.Sprintf(
		"Text is too short to summarize (minimum %d characters)", MinSelectionLength)
	msgTooLong = fmt.Sprintf(
		"Text is too long to summarize (maximum %d characters)", MaxSelectionLength)
)

// ValidateSelectionText checks that s is eligible for summarization.
// It returns a *SummaryError with a fixed message when the trimmed text is
// empty, shorter than MinSelectionLength, or longer than MaxSelectionLength.
// Length is measured in Unicode characters, not bytes.
func ValidateSelectionText(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return NewSummaryError(KindNoText, msgNoText, nil)
	}

	length := text.CountRunes(trimmed)
	if length < MinSelectionLength {
		return NewSummaryError(KindTextTooShort, msgTooShort, nil)
	}
	if length > MaxSelectionLength {
		return NewSummaryError(KindTextTooLong, msgTooLong, nil)
	}

	return nil
}
