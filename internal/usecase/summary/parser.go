package summary

import (
	"strings"

	"clipdigest/internal/domain/entity"
)

// ParseSummary extracts the generated summary from a provider completion.
// The expected shape is at least one choice whose message carries non-empty
// content; anything else fails with an invalid-response error.
// On success the trimmed content of the first choice is returned.
func ParseSummary(completion *Completion) (string, error) {
	if completion == nil || len(completion.Choices) == 0 {
		return "", entity.NewSummaryError(
			entity.KindInvalidResponse, msgInvalidResponse, entity.ErrInvalidResponse)
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", entity.NewSummaryError(
			entity.KindInvalidResponse, msgInvalidResponse, entity.ErrInvalidResponse)
	}

	return content, nil
}
