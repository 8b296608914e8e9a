package client

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
	Detail  any
}

func newAPIError(resp *resty.Response) *APIError {
	e := &APIError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	if body, ok := resp.Error().(*errorBody); ok && body.Error.Message != "" {
		e.Message = body.Error.Message
		e.Detail = body.Detail
	}
	return e
}

func (e *APIError) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// FailureReason lets the reconciler tell permission problems from server faults.
func (e *APIError) FailureReason() string {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "permission"
	}
	return "server"
}

// TransportError means the request never got an HTTP answer.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) FailureReason() string {
	return "connectivity"
}
