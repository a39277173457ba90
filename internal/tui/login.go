// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-thread-chat/internal/service"
	"github.com/MKhiriev/go-thread-chat/models"
)

type loginStage int

const (
	loginStageForm loginStage = iota
	loginStageSubmitting
	loginStageDone
)

// LoginModel is the Bubble Tea model for the login screen. When a username is
// known up front it logs in straight away (reusing a stored session if there
// is one) and falls back to the form only when the password is missing or
// wrong.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	stage   loginStage
	errMsg  string

	account     models.Account
	quit        bool
	interrupted bool
}

// NewLoginModel creates a [LoginModel] prefilled with creds.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService, creds models.Credentials) *LoginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "username"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.SetValue(strings.TrimSpace(creds.Login))

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.SetValue(creds.Password)

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := &LoginModel{
		ctx:     ctx,
		auth:    auth,
		inputs:  []textinput.Model{loginInput, passwordInput},
		spinner: s,
	}

	if loginInput.Value() != "" {
		m.stage = loginStageSubmitting
	}
	m.setFocus(0)

	return m
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	if m.stage == loginStageSubmitting {
		return tea.Batch(m.spinner.Tick, m.cmdLogin())
	}
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		return m.handleResult(msg)
	case spinner.TickMsg:
		if m.stage != loginStageSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if key.Matches(msg, keys.interrupt) {
			m.interrupted = true
			return m, tea.Quit
		}
		if m.stage != loginStageForm {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if strings.TrimSpace(m.inputs[0].Value()) == "" {
				m.errMsg = "Username is required"
				m.setFocus(0)
				return m, nil
			}
			m.errMsg = ""
			m.stage = loginStageSubmitting
			return m, tea.Batch(m.spinner.Tick, m.cmdLogin())
		}
	}

	if m.stage != loginStageForm {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	switch m.stage {
	case loginStageSubmitting:
		return m.spinner.View() + " Logging in as " + m.username() + "\n"
	case loginStageDone:
		return successStyle.Render("✔") + " You are logged in as " + m.username() + "\n"
	}

	var b strings.Builder
	b.WriteString("Username │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Password │ ")
	b.WriteString(m.inputs[1].View())

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("LOGIN", b.String(), "tab: next field │ enter: log in │ esc: quit")
}

// Account returns the logged-in account once the program has finished.
func (m *LoginModel) Account() models.Account {
	return m.account
}

// Err reports why the login screen closed without an account.
func (m *LoginModel) Err() error {
	switch {
	case m.interrupted:
		return ErrInterrupted
	case m.quit:
		return ErrUserQuit
	}
	return nil
}

func (m *LoginModel) handleResult(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil {
		m.stage = loginStageDone
		m.account = msg.account
		return m, tea.Quit
	}

	m.stage = loginStageForm
	switch {
	case errors.Is(msg.err, service.ErrPasswordRequired):
		// пароль не передан и сохранённой сессии нет: просто спрашиваем
		m.errMsg = ""
		m.setFocus(1)
	case errors.Is(msg.err, service.ErrWrongPassword):
		m.errMsg = "Wrong username or password"
		m.inputs[1].SetValue("")
		m.setFocus(1)
	default:
		m.errMsg = humanizeServerUnavailableError(msg.err)
	}

	return m, textinput.Blink
}

func (m *LoginModel) cmdLogin() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	creds := models.Credentials{
		Login:    m.username(),
		Password: m.inputs[1].Value(),
	}

	return func() tea.Msg {
		account, err := auth.Login(ctx, creds)
		return loginDoneMsg{account: account, err: err}
	}
}

func (m *LoginModel) username() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m *LoginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
