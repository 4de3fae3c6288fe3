package core

import "errors"

// Failure taxonomy shared by the session manager and the resource clients.
// Callers match these with errors.Is; the concrete error usually carries
// the server-provided message as well.
var (
	// ErrAuthenticationFailed means a login attempt was rejected.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrSessionExpired means an authorized call failed and the silent
	// refresh could not recover it.
	ErrSessionExpired = errors.New("session expired")
	// ErrNotFound means the server reported the resource absent.
	ErrNotFound = errors.New("resource not found")
	// ErrValidationFailed means the server rejected one or more fields.
	ErrValidationFailed = errors.New("validation failed")
	// ErrNetworkFailure means no response was received at all.
	ErrNetworkFailure = errors.New("network failure")
	// ErrUnexpected covers any other terminal server response.
	ErrUnexpected = errors.New("unexpected failure")
)
