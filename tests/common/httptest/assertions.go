//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail"`
}

// AssertSuccessResponse checks the status and, for 2xx, decodes the body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "undecodable body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that error.message contains expectedMsg.
// An empty expectedMsg only checks the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body errorBody
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "undecodable error body: %s", w.Body.String()) {
		return
	}
	assert.NotEmpty(t, body.Error.Message, "error.message missing")
	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg)
	}
}
