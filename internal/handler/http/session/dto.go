// Package session provides HTTP handlers for the popup-facing session
// endpoints: state inspection, credential management, selection capture,
// summarization, and the clipboard copy side effect.
package session

import (
	"time"

	sessUC "clipdigest/internal/usecase/session"
)

// StateDTO represents the JSON structure of the session state handed
// to the popup.
type StateDTO struct {
	State            string `json:"state" example:"showing_summary"`
	Summary          string `json:"summary,omitempty" example:"A short summary."`
	SummaryCreatedAt string `json:"summary_created_at,omitempty" example:"2025-10-26T12:00:00Z"`
	ErrorMessage     string `json:"error_message,omitempty"`
	CopiedRecently   bool   `json:"copied_recently"`
}

// toDTO converts a session snapshot to its wire representation.
func toDTO(s sessUC.Snapshot) StateDTO {
	dto := StateDTO{
		State:          s.State.String(),
		Summary:        s.Summary,
		ErrorMessage:   s.ErrorMessage,
		CopiedRecently: s.CopiedRecently,
	}
	if !s.SummaryCreatedAt.IsZero() {
		dto.SummaryCreatedAt = s.SummaryCreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return dto
}
