package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-thread-chat/internal/chat"
	"github.com/MKhiriev/go-thread-chat/internal/service"
	"github.com/MKhiriev/go-thread-chat/models"
)

const inboxLineWidth = 100

// InboxModel lists the account's threads and lets the user pick one.
// Participants of every listed thread are recorded in the shared cache, so
// the model must run on the same goroutine as every other cache writer.
type InboxModel struct {
	ctx      context.Context
	threads  service.ClientThreadService
	renderer *chat.Renderer
	cache    *chat.ParticipantCache
	copy     func(string) error

	spinner spinner.Model
	loading bool
	items   []models.ThreadSummary
	idx     int
	status  string
	err     error

	selected    *models.ThreadSummary
	quit        bool
	interrupted bool
}

// NewInboxModel creates an [InboxModel]. renderer formats the last message of
// every thread; cache receives every listed participant.
func NewInboxModel(ctx context.Context, threads service.ClientThreadService, renderer *chat.Renderer, cache *chat.ParticipantCache) *InboxModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &InboxModel{
		ctx:      ctx,
		threads:  threads,
		renderer: renderer,
		cache:    cache,
		copy:     clipboard.WriteAll,
		spinner:  s,
		loading:  true,
	}
}

// Init implements [tea.Model].
func (m *InboxModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

// Update implements [tea.Model].
func (m *InboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case inboxLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			if errors.Is(msg.err, service.ErrUnauthorized) {
				return m, tea.Quit
			}
			return m, nil
		}
		m.err = nil
		m.cache.UpsertSummaries(msg.threads)
		m.items = msg.threads
		m.status = "All threads have been fetched"
		m.idx = max(0, min(m.idx, len(m.items)-1))
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied thread id " + msg.threadID
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// View implements [tea.Model].
func (m *InboxModel) View() string {
	if m.selected != nil || m.quit || m.interrupted {
		return ""
	}
	if m.loading {
		return m.spinner.View() + " Fetching all threads\n"
	}

	var b strings.Builder
	if m.status != "" {
		b.WriteString(successStyle.Render("✔"))
		b.WriteString(" ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString("No threads")
	}
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(m.threadLine(item))
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + humanizeServerUnavailableError(m.err)))
	}

	return renderPage("Inbox threads", b.String(), "↑/↓: move │ enter: open │ c: copy id │ r: reload │ q: quit")
}

// Selected returns the chosen thread, if any.
func (m *InboxModel) Selected() (models.ThreadSummary, bool) {
	if m.selected == nil {
		return models.ThreadSummary{}, false
	}
	return *m.selected, true
}

// Err reports why the inbox closed without a selection.
func (m *InboxModel) Err() error {
	switch {
	case m.interrupted:
		return ErrInterrupted
	case m.quit:
		return ErrUserQuit
	case m.err != nil && errors.Is(m.err, service.ErrUnauthorized):
		return m.err
	}
	return nil
}

func (m *InboxModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.interrupt) {
		m.interrupted = true
		return m, tea.Quit
	}
	if key.Matches(msg, keys.quit) {
		m.quit = true
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if len(m.items) == 0 {
			return m, nil
		}
		selected := m.items[m.idx]
		m.selected = &selected
		return m, tea.Quit
	case key.Matches(msg, keys.reload):
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case key.Matches(msg, keys.copy):
		if len(m.items) == 0 {
			return m, nil
		}
		return m, m.cmdCopy(m.items[m.idx].ID)
	}

	return m, nil
}

func (m *InboxModel) threadLine(t models.ThreadSummary) string {
	title := threadStyle.Render(chat.BracketTitle(t.Title))
	if t.LastMessage == nil {
		return title
	}
	return fmt.Sprintf("%s - %s", title, fitText(m.renderer.MessageLine(*t.LastMessage), inboxLineWidth))
}

func (m *InboxModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	threads := m.threads

	return func() tea.Msg {
		items, err := threads.Inbox(ctx)
		return inboxLoadedMsg{threads: items, err: err}
	}
}

func (m *InboxModel) cmdCopy(threadID string) tea.Cmd {
	copyFn := m.copy

	return func() tea.Msg {
		return copiedMsg{threadID: threadID, err: copyFn(threadID)}
	}
}
