//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// PerformRequest sends body as JSON with an optional bearer token.
func PerformRequest(t *testing.T, router http.Handler, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
	}
	return PerformRaw(t, router, method, path, reqBody, authToken)
}

// PerformRaw sends raw bytes, for malformed payload cases.
func PerformRaw(t *testing.T, router http.Handler, method, path string, body []byte, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
