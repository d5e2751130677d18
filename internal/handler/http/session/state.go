package session

import (
	"net/http"

	"clipdigest/internal/handler/http/respond"
	sessUC "clipdigest/internal/usecase/session"
)

type StateHandler struct{ Ctrl *sessUC.Controller }

// ServeHTTP returns the current session view without triggering any work.
// The popup polls this endpoint to render its display.
func (h StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, toDTO(h.Ctrl.Snapshot()))
}

type OpenHandler struct{ Ctrl *sessUC.Controller }

// ServeHTTP handles popup open: it re-checks the stored credential and,
// when a valid key is present, immediately attempts a summarization.
func (h OpenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Ctrl.Open(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(snapshot))
}
