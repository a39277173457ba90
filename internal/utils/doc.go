// Package utils provides small helpers shared by the client layers:
// bearer-token parsing, idempotency key generation and the HTTP client
// constructor used by the adapter.
package utils
