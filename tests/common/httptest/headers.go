//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const requestIDHeader = "X-Request-ID"

// AssertRequestID checks that the response carries a request ID and returns it.
func AssertRequestID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	id := w.Header().Get(requestIDHeader)
	assert.NotEmpty(t, id, "response has no %s header", requestIDHeader)
	return id
}
