package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"clipdigest/internal/domain/entity"
	"clipdigest/internal/handler/http/respond"
	sessUC "clipdigest/internal/usecase/session"
)

type SaveCredentialHandler struct{ Ctrl *sessUC.Controller }

// ServeHTTP stores a new API key and reports the resulting session state.
// Saving a valid key immediately kicks off a summarization attempt, so the
// returned snapshot reflects its outcome.
func (h SaveCredentialHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	snapshot, err := h.Ctrl.SaveCredential(r.Context(), req.Token)
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(snapshot))
}

type ClearCredentialHandler struct{ Ctrl *sessUC.Controller }

// ServeHTTP removes the stored API key and resets the session.
func (h ClearCredentialHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Ctrl.ClearCredential(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(snapshot))
}
