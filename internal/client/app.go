package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-thread-chat/internal/config"
	"github.com/MKhiriev/go-thread-chat/internal/logger"
	"github.com/MKhiriev/go-thread-chat/internal/service"
	"github.com/MKhiriev/go-thread-chat/internal/tui"
	"github.com/MKhiriev/go-thread-chat/models"
)

var ErrNilDependency = errors.New("client: nil dependency")

type App struct {
	auth   service.ClientAuthService
	ui     UI
	creds  models.Credentials
	logger *logger.Logger
}

func NewApp(auth service.ClientAuthService, ui UI, appCfg config.ClientApp, log *logger.Logger) (*App, error) {
	if auth == nil || ui == nil {
		return nil, ErrNilDependency
	}

	return &App{
		auth:   auth,
		ui:     ui,
		creds:  models.Credentials{Login: appCfg.Username, Password: appCfg.Password},
		logger: log,
	}, nil
}

// Run blocks until the user quits from the inbox (nil), interrupts
// ([tui.ErrInterrupted]) or an unrecoverable error occurs.
func (a *App) Run(ctx context.Context) error {
	account, err := a.ui.LoginFlow(ctx, a.creds)
	if err != nil {
		return err
	}
	a.logger.Info().Str("login", account.Login).Str("user_id", account.UserID).Msg("logged in")

	for {
		thread, err := a.ui.SelectThread(ctx, account)
		switch {
		case errors.Is(err, tui.ErrUserQuit):
			return nil
		case errors.Is(err, service.ErrUnauthorized):
			if account, err = a.relogin(ctx, account); err != nil {
				return err
			}
			continue
		case err != nil:
			return fmt.Errorf("error selecting thread: %w", err)
		}

		err = a.ui.ChatSession(ctx, account, thread)
		switch {
		case err == nil:
			// /end: назад к списку потоков
		case errors.Is(err, service.ErrUnauthorized):
			if account, err = a.relogin(ctx, account); err != nil {
				return err
			}
		case errors.Is(err, tui.ErrInterrupted):
			return err
		default:
			return fmt.Errorf("error in chat %q: %w", thread.Title, err)
		}
	}
}

// relogin drops the rejected session and asks for the password again.
func (a *App) relogin(ctx context.Context, account models.Account) (models.Account, error) {
	a.logger.Warn().Str("login", account.Login).Msg("session rejected by server, logging in again")

	if err := a.auth.Logout(ctx, account.Login); err != nil {
		a.logger.Warn().Err(err).Msg("error forgetting rejected session")
	}

	creds := models.Credentials{Login: account.Login}
	if a.creds.Login == account.Login {
		creds.Password = a.creds.Password
	}
	return a.ui.LoginFlow(ctx, creds)
}
