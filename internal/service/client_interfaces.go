// Package service holds the client business logic between the TUI and the
// transport/storage layers: authentication with session reuse, and the
// thread gateway used by chat sessions.
package service

import (
	"context"

	"github.com/MKhiriev/go-thread-chat/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for authentication.
type ClientAuthService interface {
	// Login returns an authenticated account for creds.Login. A stored,
	// unexpired session for that login is reused without contacting the
	// backend; otherwise the password is required and the new session is
	// stored for the next run.
	//
	// Returns [ErrPasswordRequired] when no session can be reused and
	// creds.Password is empty.
	Login(ctx context.Context, creds models.Credentials) (models.Account, error)

	// Logout forgets the stored session of login and the adapter token.
	Logout(ctx context.Context, login string) error
}

// ClientThreadService defines the client-side contract for reading and
// writing threads. It satisfies chat.Gateway.
type ClientThreadService interface {
	// Inbox returns the threads that have at least one participant.
	Inbox(ctx context.Context) ([]models.ThreadSummary, error)

	// FetchThread returns a full snapshot of threadID. Errors wrap
	// [ErrFetchThread].
	FetchThread(ctx context.Context, threadID string) (models.Thread, error)

	// SendMessage sends text to threadID under a fresh idempotency key.
	// Errors wrap [ErrSendMessage].
	SendMessage(ctx context.Context, threadID, text string) error
}

// IDGenerator produces unique string identifiers.
type IDGenerator interface {
	Generate() string
}
