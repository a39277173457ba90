package adapter

import "errors"

// Sentinel errors returned (wrapped) by the HTTP adapter.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	// ErrServerUnavailable covers 503/504 and transport failures
	// (refused connection, DNS, timeouts).
	ErrServerUnavailable = errors.New("server unavailable")
	// ErrInvalidResponse is returned when a 2xx response cannot be decoded.
	ErrInvalidResponse = errors.New("invalid server response")
)
