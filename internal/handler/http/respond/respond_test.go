package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipdigest/internal/handler/http/respond"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	respond.JSON(rec, http.StatusOK, map[string]string{"text": "A short summary."})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"text":"A short summary."}`, rec.Body.String())
}

func TestJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()

	respond.JSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		err      error
		expected string
	}{
		{
			name:     "validation message passes through",
			code:     http.StatusBadRequest,
			err:      errors.New("Text is too short to summarize (minimum 10 characters)"),
			expected: "Text is too short to summarize (minimum 10 characters)",
		},
		{
			name:     "api key message passes through",
			code:     http.StatusBadRequest,
			err:      errors.New("Missing or invalid API key. Please save a valid key first."),
			expected: "Missing or invalid API key. Please save a valid key first.",
		},
		{
			name:     "no summary message passes through",
			code:     http.StatusConflict,
			err:      errors.New("no summary available to copy"),
			expected: "no summary available to copy",
		},
		{
			name:     "not found message passes through",
			code:     http.StatusNotFound,
			err:      errors.New("entity not found"),
			expected: "entity not found",
		},
		{
			name:     "internal detail is masked",
			code:     http.StatusBadRequest,
			err:      errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			expected: "internal server error",
		},
		{
			name:     "5xx is always masked",
			code:     http.StatusInternalServerError,
			err:      errors.New("api key sk-abcdefghijklmnop rejected"),
			expected: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			respond.SafeError(rec, tt.code, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.expected, decodeError(t, rec))
		})
	}
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "masks api keys",
			err:      errors.New("request with key sk-abcdefghijklmnopqrstuvwx failed"),
			expected: "request with key sk-**** failed",
		},
		{
			name:     "short sk prefix is left alone",
			err:      errors.New("task sk-1 done"),
			expected: "task sk-1 done",
		},
		{
			name:     "plain message unchanged",
			err:      errors.New("connection refused"),
			expected: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, respond.SanitizeError(tt.err))
		})
	}
}
