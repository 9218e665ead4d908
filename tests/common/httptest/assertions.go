//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorBody mirrors httperr.Response on the wire.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail    map[string]any `json:"detail"`
	RequestID string         `json:"requestId"`
}

// AssertSuccessResponse checks the status and decodes a 2xx body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "undecodable body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the public message contains
// expectedMsg. The decoded body is returned for detail checks.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body ErrorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "undecodable error body: %s", w.Body.String())

	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg, "error message mismatch")
	}
	return body
}
