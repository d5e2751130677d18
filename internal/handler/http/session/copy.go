package session

import (
	"errors"
	"net/http"

	"clipdigest/internal/handler/http/respond"
	sessUC "clipdigest/internal/usecase/session"
)

type CopyHandler struct{ Ctrl *sessUC.Controller }

// ServeHTTP hands the popup the summary text for the clipboard and starts the
// transient copy confirmation. Copy is only meaningful while a summary is on
// display; any other state yields 409 Conflict.
func (h CopyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	text, err := h.Ctrl.Copy()
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, sessUC.ErrCopyUnavailable) {
			code = http.StatusConflict
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, struct {
		Text string `json:"text"`
	}{Text: text})
}
