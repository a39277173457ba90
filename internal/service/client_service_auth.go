package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-thread-chat/internal/adapter"
	"github.com/MKhiriev/go-thread-chat/internal/logger"
	"github.com/MKhiriev/go-thread-chat/internal/store"
	"github.com/MKhiriev/go-thread-chat/internal/utils"
	"github.com/MKhiriev/go-thread-chat/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	now      func() time.Time
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Account, error) {
	creds.Login = strings.TrimSpace(creds.Login)
	if creds.Login == "" {
		return models.Account{}, ErrEmptyLogin
	}

	// L1: переиспользуем сохранённую сессию, если токен ещё жив
	if account, ok := a.restore(ctx, creds.Login); ok {
		return account, nil
	}

	if creds.Password == "" {
		return models.Account{}, ErrPasswordRequired
	}

	// L2: логинимся на сервере
	account, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Account{}, mapLoginError(err)
	}

	// L3: сохраняем сессию; ошибка хранилища не мешает работе
	a.persist(ctx, account)

	return account, nil
}

func (a *clientAuthService) Logout(ctx context.Context, login string) error {
	a.adapter.SetToken("")
	if err := a.sessions.DeleteSession(ctx, login); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func (a *clientAuthService) restore(ctx context.Context, login string) (models.Account, bool) {
	session, err := a.sessions.GetSession(ctx, login)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			a.logger.Warn().Err(err).Str("login", login).Msg("stored session is unreadable")
		}
		return models.Account{}, false
	}

	if session.Expired(a.now()) || session.UserID == "" {
		a.logger.Debug().Str("login", login).Msg("stored session expired")
		return models.Account{}, false
	}

	a.adapter.SetToken(session.Token)
	a.logger.Debug().Str("login", login).Msg("reusing stored session")
	return session.Account(), true
}

func (a *clientAuthService) persist(ctx context.Context, account models.Account) {
	token, err := utils.ParseToken(account.Token)
	if err != nil {
		// без срока действия сессию не храним
		a.logger.Warn().Err(err).Msg("token has no readable claims, session not stored")
		return
	}

	err = a.sessions.SaveSession(ctx, models.Session{
		Login:     account.Login,
		UserID:    account.UserID,
		Name:      account.Name,
		Token:     account.Token,
		ExpiresAt: token.ExpiresAt(),
		UpdatedAt: a.now(),
	})
	if err != nil {
		a.logger.Warn().Err(err).Msg("error saving session")
	}
}
