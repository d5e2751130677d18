package session

import (
	"errors"
	"net/http"
	"time"

	"clipdigest/internal/domain/entity"
	"clipdigest/internal/handler/http/respond"
	"clipdigest/internal/usecase/summary"
)

// SummaryDTO represents the JSON structure of a persisted summary.
type SummaryDTO struct {
	Text      string `json:"text"`
	CreatedAt string `json:"created_at,omitempty"`
}

type LastSummaryHandler struct{ Svc *summary.Service }

// ServeHTTP returns the most recently persisted summary, surviving daemon
// restarts. Responds 404 when no summary has been produced yet.
func (h LastSummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	last, err := h.Svc.LastSummary(r.Context())
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, entity.ErrNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	out := SummaryDTO{Text: last.Text}
	if !last.CreatedAt.IsZero() {
		out.CreatedAt = last.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	respond.JSON(w, http.StatusOK, out)
}
