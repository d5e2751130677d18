package session

import (
	"net/http"

	"clipdigest/internal/repository"
	sessUC "clipdigest/internal/usecase/session"
	"clipdigest/internal/usecase/summary"
)

// Register registers all session-related HTTP handlers with the given mux.
// It sets up routes for state inspection, credential save/clear, selection
// capture, summarization, the last persisted summary, and clipboard copy.
func Register(mux *http.ServeMux, ctrl *sessUC.Controller, svc *summary.Service, store repository.StateRepository) {
	mux.Handle("GET    /v1/state", StateHandler{Ctrl: ctrl})
	mux.Handle("POST   /v1/open", OpenHandler{Ctrl: ctrl})
	mux.Handle("POST   /v1/credential", SaveCredentialHandler{Ctrl: ctrl})
	mux.Handle("DELETE /v1/credential", ClearCredentialHandler{Ctrl: ctrl})
	mux.Handle("PUT    /v1/selection", SaveSelectionHandler{Store: store})
	mux.Handle("GET    /v1/selection", GetSelectionHandler{Store: store})
	mux.Handle("POST   /v1/summarize", SummarizeHandler{Ctrl: ctrl})
	mux.Handle("GET    /v1/summary/last", LastSummaryHandler{Svc: svc})
	mux.Handle("POST   /v1/copy", CopyHandler{Ctrl: ctrl})
}
