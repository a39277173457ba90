// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the chat backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-thread-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the chat
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called after a successful Login or when a
	// stored session is reused.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates with the backend. On success it stores the returned
	// bearer token via SetToken and returns the account, with Token set.
	Login(ctx context.Context, creds models.Credentials) (models.Account, error)

	// ListThreads returns the inbox of the authenticated account.
	ListThreads(ctx context.Context) ([]models.ThreadSummary, error)

	// GetThread returns a full snapshot of one thread.
	GetThread(ctx context.Context, threadID string) (models.Thread, error)

	// SendMessage posts a text message to a thread. idempotencyKey lets the
	// backend drop a duplicate delivery of the same message.
	SendMessage(ctx context.Context, threadID, text, idempotencyKey string) error
}
