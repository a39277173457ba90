// Package tui contains the bubbletea programs of the client: the login
// screen, the inbox and the host of a live chat session. Each flow runs its
// own tea.Program inline in the terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-thread-chat/internal/chat"
	"github.com/MKhiriev/go-thread-chat/internal/logger"
	"github.com/MKhiriev/go-thread-chat/internal/service"
	"github.com/MKhiriev/go-thread-chat/internal/workers"
	"github.com/MKhiriev/go-thread-chat/models"
)

var errNilServices = errors.New("tui: services are required")

type TUI struct {
	services     *service.ClientServices
	participants *chat.ParticipantCache
	pollInterval time.Duration
	logger       *logger.Logger
	options      []tea.ProgramOption
}

// New creates the TUI. The participant cache it owns is shared by the inbox
// and every chat session of the process.
func New(services *service.ClientServices, pollInterval time.Duration, log *logger.Logger, opts ...tea.ProgramOption) (*TUI, error) {
	if services == nil {
		return nil, errNilServices
	}
	if pollInterval <= 0 {
		pollInterval = workers.DefaultPollInterval
	}

	return &TUI{
		services:     services,
		participants: chat.NewParticipantCache(),
		pollInterval: pollInterval,
		logger:       log,
		options:      opts,
	}, nil
}

// LoginFlow authenticates the user, prompting for whatever creds lacks.
func (t *TUI) LoginFlow(ctx context.Context, creds models.Credentials) (models.Account, error) {
	model := NewLoginModel(ctx, t.services.AuthService, creds)
	if err := t.run(ctx, model); err != nil {
		return models.Account{}, err
	}
	if err := model.Err(); err != nil {
		return models.Account{}, err
	}
	return model.Account(), nil
}

// SelectThread shows the inbox of account and returns the chosen thread.
func (t *TUI) SelectThread(ctx context.Context, account models.Account) (models.ThreadSummary, error) {
	renderer := chat.NewRenderer(account.UserID, t.participants, time.Now)
	model := NewInboxModel(ctx, t.services.ThreadService, renderer, t.participants)
	if err := t.run(ctx, model); err != nil {
		return models.ThreadSummary{}, err
	}
	if err := model.Err(); err != nil {
		return models.ThreadSummary{}, err
	}

	selected, ok := model.Selected()
	if !ok {
		return models.ThreadSummary{}, ErrUserQuit
	}
	return selected, nil
}

// ChatSession runs a live chat in thread until the user ends it with /end
// (nil), interrupts it ([ErrInterrupted]) or the thread cannot be loaded.
func (t *TUI) ChatSession(ctx context.Context, account models.Account, thread models.ThreadSummary) error {
	session, err := chat.NewSession(chat.SessionConfig{
		ThreadID:     thread.ID,
		Title:        thread.Title,
		PollInterval: t.pollInterval,
		Renderer:     chat.NewRenderer(account.UserID, t.participants, time.Now),
		Participants: t.participants,
	})
	if err != nil {
		return fmt.Errorf("error creating chat session: %w", err)
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := t.logger.GetChildLogger()
	log.Info().Str("thread", thread.ID).Dur("poll_interval", t.pollInterval).Msg("chat session started")

	model := NewChatModel(sessionCtx, t.services.ThreadService, session, workers.NewPollTimer(), log)
	defer model.Close()

	if err = t.run(sessionCtx, model); err != nil {
		return err
	}

	log.Info().Str("thread", thread.ID).Bool("ended", model.Ended()).Msg("chat session finished")
	return model.Err()
}

func (t *TUI) run(ctx context.Context, model tea.Model) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}
