package text

import (
	"regexp"
	"strings"
)

var (
	// horizontalRun matches runs of spaces and tabs (but not newlines).
	horizontalRun = regexp.MustCompile(`[ \t\f\v]+`)

	// newlinePadding matches spaces hugging a newline on either side.
	newlinePadding = regexp.MustCompile(` *\n *`)

	// newlineRun matches three or more consecutive newlines.
	newlineRun = regexp.MustCompile(`\n{3,}`)
)

// Sanitize normalizes selection text before it is embedded in a prompt.
// It trims the text, collapses runs of spaces and tabs to a single space,
// and collapses three or more consecutive newlines to exactly two, keeping
// intentional paragraph breaks intact.
//
// Sanitize is idempotent: Sanitize(Sanitize(s)) == Sanitize(s).
// Empty input returns "".
func Sanitize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = horizontalRun.ReplaceAllString(s, " ")
	s = newlinePadding.ReplaceAllString(s, "\n")
	s = newlineRun.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}
