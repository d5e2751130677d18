package session

import (
	"net/http"

	"clipdigest/internal/handler/http/respond"
	sessUC "clipdigest/internal/usecase/session"
)

type SummarizeHandler struct{ Ctrl *sessUC.Controller }

// ServeHTTP triggers a summarization attempt against the stored selection.
// The outcome is folded into the session state, so the response is always
// 200 with a snapshot; failures surface as ShowingError with a display
// message rather than an HTTP error.
func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, toDTO(h.Ctrl.Summarize(r.Context())))
}
