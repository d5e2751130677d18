package summary

import (
	"errors"
	"net/http"
	"strings"

	"clipdigest/internal/domain/entity"
)

// Fixed user-facing messages per failure category. These exact strings are
// part of the display contract and must not drift.
const (
	msgInvalidCredential = "Missing or invalid API key. Please save a valid key first."
	msgRemoteAuth        = "Invalid API key. Please check your API key and try again."
	msgRateLimited       = "Rate limit exceeded. Please wait a moment and try again."
	msgRemoteService     = "Summarization service error. Please try again later."
	msgNetwork           = "Network error. Please check your connection and try again."
	msgInvalidResponse   = "Invalid response from summarization service."
	msgGeneric           = "An unexpected error occurred."
)

// MessageForKind formats a failure category to its fixed display message.
// Validation kinds have no entry here: validation errors already carry their
// display message and are surfaced without classification.
func MessageForKind(kind entity.Kind) string {
	switch kind {
	case entity.KindInvalidCredential:
		return msgInvalidCredential
	case entity.KindRemoteAuth:
		return msgRemoteAuth
	case entity.KindRateLimited:
		return msgRateLimited
	case entity.KindRemoteService:
		return msgRemoteService
	case entity.KindNetwork:
		return msgNetwork
	case entity.KindInvalidResponse:
		return msgInvalidResponse
	default:
		return msgGeneric
	}
}

// KindForStatus maps an HTTP status code from the provider to a failure category.
func KindForStatus(code int) entity.Kind {
	switch {
	case code == http.StatusUnauthorized:
		return entity.KindRemoteAuth
	case code == http.StatusTooManyRequests:
		return entity.KindRateLimited
	case code >= http.StatusInternalServerError:
		return entity.KindRemoteService
	default:
		return entity.KindGeneric
	}
}

// Classify maps an error to its user-facing display string.
//
// Errors produced inside the pipeline carry a structured kind and their
// message is returned as-is. For untyped errors the legacy substring rules
// apply: "401", "429" and "500" are checked in that priority order against
// the error text; otherwise the error's own message passes through verbatim,
// falling back to a generic message when empty.
func Classify(err error) string {
	if err == nil {
		return msgGeneric
	}

	var sumErr *entity.SummaryError
	if errors.As(err, &sumErr) {
		if sumErr.Message != "" {
			return sumErr.Message
		}
		return MessageForKind(sumErr.Kind)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "401"):
		return msgRemoteAuth
	case strings.Contains(msg, "429"):
		return msgRateLimited
	case strings.Contains(msg, "500"):
		return msgRemoteService
	case msg != "":
		return msg
	default:
		return msgGeneric
	}
}
