package entity

import "strings"

const (
	// CredentialPrefix is the required prefix for provider API keys.
	CredentialPrefix = "sk-"

	// minCredentialLength is the minimum total key length (exclusive bound:
	// a valid key must be strictly longer than 20 characters).
	minCredentialLength = 20
)

// ValidateCredential reports whether token looks like a usable provider API key.
// A valid key starts with the fixed prefix and is longer than 20 characters.
// No further format or cryptographic validation is performed; the provider is
// the authority on whether the key actually works.
func ValidateCredential(token string) bool {
	if token == "" {
		return false
	}
	if !strings.HasPrefix(token, CredentialPrefix) {
		return false
	}
	return len(token) > minCredentialLength
}
