package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipdigest/internal/handler/http/requestid"
)

func TestMiddleware_GeneratesID(t *testing.T) {
	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/state", nil))

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err, "generated ID is a UUID")
	assert.Equal(t, seen, rec.Header().Get(requestid.RequestIDHeader))
}

func TestMiddleware_PropagatesExistingID(t *testing.T) {
	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/state", nil)
	req.Header.Set(requestid.RequestIDHeader, "client-id-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "client-id-42", seen)
	assert.Equal(t, "client-id-42", rec.Header().Get(requestid.RequestIDHeader))
}

func TestFromContext_Missing(t *testing.T) {
	assert.Empty(t, requestid.FromContext(context.Background()))
}
