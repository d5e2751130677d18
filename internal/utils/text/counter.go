// Package text provides utilities for text processing.
// It includes character counting and whitespace sanitization used by the
// selection validator and the summarization pipeline.
package text

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Length limits on selections are defined in characters, not bytes, so this
// handles multi-byte input (CJK text, emoji) correctly.
//
// Examples:
//
//	CountRunes("hello")          // returns 5
//	CountRunes("こんにちは")       // returns 5
//	CountRunes("")               // returns 0
func CountRunes(text string) int {
	return len([]rune(text))
}
