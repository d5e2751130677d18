package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrNoSelection indicates that no selection text is available to summarize
	ErrNoSelection = errors.New("no selection available")

	// ErrInvalidResponse indicates that the remote provider returned a payload
	// without the expected message content
	ErrInvalidResponse = errors.New("invalid response from summarization service")
)

// Kind categorizes a summarization failure. Kinds are carried through the
// call chain and formatted to user-facing text only at the display boundary.
type Kind int

const (
	// KindGeneric is any failure without a more specific category.
	KindGeneric Kind = iota
	// KindInvalidCredential indicates a missing or malformed API key.
	KindInvalidCredential
	// KindNoText indicates that no text was provided for summarization.
	KindNoText
	// KindTextTooShort indicates the text is below the minimum length.
	KindTextTooShort
	// KindTextTooLong indicates the text exceeds the maximum length.
	KindTextTooLong
	// KindInvalidResponse indicates a malformed remote payload.
	KindInvalidResponse
	// KindRemoteAuth indicates the provider rejected the credential (HTTP 401).
	KindRemoteAuth
	// KindRateLimited indicates the provider rate limit was hit (HTTP 429).
	KindRateLimited
	// KindRemoteService indicates a provider-side failure (HTTP 5xx).
	KindRemoteService
	// KindNetwork indicates a transport-level failure before any response.
	KindNetwork
)

// String returns a short identifier for the kind, used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindInvalidCredential:
		return "invalid_credential"
	case KindNoText:
		return "no_text"
	case KindTextTooShort:
		return "text_too_short"
	case KindTextTooLong:
		return "text_too_long"
	case KindInvalidResponse:
		return "invalid_response"
	case KindRemoteAuth:
		return "remote_auth"
	case KindRateLimited:
		return "rate_limited"
	case KindRemoteService:
		return "remote_service"
	case KindNetwork:
		return "network"
	default:
		return "generic"
	}
}

// SummaryError is a categorized error produced by the summarization pipeline.
// Message is safe to show to users; Err holds the underlying cause for logs.
type SummaryError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the user-facing message, implementing the error interface.
func (e *SummaryError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a SummaryError with the given kind and message.
func NewSummaryError(kind Kind, message string, err error) *SummaryError {
	return &SummaryError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain.
// Returns KindGeneric when the error carries no category.
func KindOf(err error) Kind {
	var sumErr *SummaryError
	if errors.As(err, &sumErr) {
		return sumErr.Kind
	}
	return KindGeneric
}

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
