package session

import (
	"encoding/json"
	"net/http"

	"clipdigest/internal/handler/http/respond"
	"clipdigest/internal/repository"
)

type SaveSelectionHandler struct{ Store repository.StateRepository }

// ServeHTTP records the text the content script captured. The text is stored
// as-is; length checks and whitespace normalization happen at summarize time
// so the stored value always mirrors what the user actually selected.
func (h SaveSelectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Store.SaveSelection(r.Context(), req.Text); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type GetSelectionHandler struct{ Store repository.StateRepository }

// ServeHTTP returns the currently stored selection. An empty text means no
// selection has been captured yet.
func (h GetSelectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	text, err := h.Store.Selection(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, struct {
		Text string `json:"text"`
	}{Text: text})
}
