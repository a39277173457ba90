package store

import (
	"context"

	"github.com/MKhiriev/go-thread-chat/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists backend sessions on the client device, one per
// login, so that a restart can skip the password prompt while the token is
// still valid.
type SessionRepository interface {
	// SaveSession inserts or replaces the session stored for s.Login.
	SaveSession(ctx context.Context, s models.Session) error
	// GetSession returns the session stored for login, or [ErrSessionNotFound].
	GetSession(ctx context.Context, login string) (models.Session, error)
	// DeleteSession removes the session stored for login. Removing a missing
	// session is not an error.
	DeleteSession(ctx context.Context, login string) error
}
