package session

import (
	"encoding/json"
	"fmt"
	"net/http"

	"fintrack/internal/core"
)

// APIError carries the HTTP status and the server-provided message for a
// terminal response. It unwraps to one of the core taxonomy sentinels so
// callers can match with errors.Is.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (status %d): %s", e.kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s (status %d)", e.kind, e.Status)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// newAPIError classifies a terminal response from an authenticated call.
// Authorization failure is signaled by 401 only; every other 4xx/5xx is
// terminal and never triggers a refresh.
func newAPIError(status int, body []byte) *APIError {
	var kind error
	switch status {
	case http.StatusUnauthorized:
		kind = core.ErrSessionExpired
	case http.StatusNotFound:
		kind = core.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = core.ErrValidationFailed
	default:
		kind = core.ErrUnexpected
	}
	return &APIError{Status: status, Message: serverMessage(body), kind: kind}
}

// newAuthError classifies a failed login attempt, keeping the server message
// when one was provided.
func newAuthError(status int, body []byte) *APIError {
	msg := serverMessage(body)
	if msg == "" {
		msg = "invalid email or password"
	}
	return &APIError{Status: status, Message: msg, kind: core.ErrAuthenticationFailed}
}

// serverMessage extracts the error message the API puts in its JSON bodies.
// Older endpoints use {"error": ...}, newer ones {"message": ...}.
func serverMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
