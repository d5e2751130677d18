package respond

import (
	"regexp"
)

// apiKeyPattern matches provider API keys so they never reach logs verbatim.
var apiKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9-_]{10,}`)

// SanitizeError returns the error message with sensitive values masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	return apiKeyPattern.ReplaceAllString(err.Error(), "sk-****")
}
