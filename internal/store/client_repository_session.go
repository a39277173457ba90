package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-thread-chat/internal/logger"
	"github.com/MKhiriev/go-thread-chat/models"
)

const sessionsTable = "sessions"

var sessionColumns = []string{"login", "user_id", "name", "token", "expires_at", "updated_at"}

// sessionRepository is the SQLite-backed implementation of [SessionRepository].
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] over db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db, logger: logger}
}

// SaveSession implements [SessionRepository]. Times are stored in UTC; a
// zero ExpiresAt is stored as NULL.
func (r *sessionRepository) SaveSession(ctx context.Context, s models.Session) error {
	if s.Login == "" || s.Token == "" {
		return ErrInvalidSession
	}

	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	query, args, err := sq.Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(s.Login, s.UserID, s.Name, s.Token, nullableTime(s.ExpiresAt), updatedAt.UTC()).
		Suffix("ON CONFLICT(login) DO UPDATE SET " +
			"user_id = excluded.user_id, name = excluded.name, token = excluded.token, " +
			"expires_at = excluded.expires_at, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession implements [SessionRepository].
func (r *sessionRepository) GetSession(ctx context.Context, login string) (models.Session, error) {
	query, args, err := sq.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		s         models.Session
		expiresAt sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.Login, &s.UserID, &s.Name, &s.Token, &expiresAt, &s.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, ErrSessionNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if expiresAt.Valid {
		s.ExpiresAt = expiresAt.Time
	}
	return s, nil
}

// DeleteSession implements [SessionRepository].
func (r *sessionRepository) DeleteSession(ctx context.Context, login string) error {
	query, args, err := sq.Delete(sessionsTable).
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func nullableTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
