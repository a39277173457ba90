package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-thread-chat/internal/chat"
	"github.com/MKhiriev/go-thread-chat/internal/logger"
	"github.com/MKhiriev/go-thread-chat/internal/workers"
)

// ChatModel hosts a [chat.Session] on the bubbletea event queue. Keys, poll
// ticks and gateway results all arrive as messages and are handed to the
// session one at a time; the effects it returns are executed in order.
type ChatModel struct {
	ctx     context.Context
	gateway chat.Gateway
	session *chat.Session
	poller  workers.Poller
	logger  *logger.Logger

	// ticks holds at most one pending poll tick.
	ticks chan uint64
	epoch uint64

	spinner spinner.Model

	ended       bool
	interrupted bool
	err         error
}

// NewChatModel creates a [ChatModel]. The session must not have been started.
func NewChatModel(ctx context.Context, gateway chat.Gateway, session *chat.Session, poller workers.Poller, log *logger.Logger) *ChatModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &ChatModel{
		ctx:     ctx,
		gateway: gateway,
		session: session,
		poller:  poller,
		logger:  log,
		ticks:   make(chan uint64, 1),
		spinner: s,
	}
}

// Init implements [tea.Model].
func (m *ChatModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitTick(), m.apply(m.session.Start()))
}

// Update implements [tea.Model].
func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.apply(m.session.HandleKey(keyEvent(msg)))
	case pollTickMsg:
		next := m.waitTick()
		if msg.epoch != m.epoch {
			return m, next
		}
		return m, tea.Batch(next, m.apply(m.session.HandleTick()))
	case fetchedMsg:
		if msg.Err != nil {
			m.logger.Warn().Err(msg.Err).Uint64("generation", msg.Generation).
				Str("thread", m.session.ThreadID()).Msg("fetch failed")
		}
		return m, m.apply(m.session.HandleFetched(chat.FetchResult(msg)))
	case sentMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("thread", m.session.ThreadID()).Msg("send failed")
		}
		return m, m.apply(m.session.HandleSent(msg.err))
	case spinner.TickMsg:
		if m.session.State() != chat.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements [tea.Model].
func (m *ChatModel) View() string {
	if m.session.State() == chat.StateLoading {
		return m.spinner.View() + " Loading " + chat.BracketTitle(m.session.Title())
	}
	return m.session.View()
}

// Err reports how the chat ended: nil after /end, [ErrInterrupted] after
// ctrl+c, or the error that stopped the initial load.
func (m *ChatModel) Err() error {
	switch {
	case m.interrupted:
		return ErrInterrupted
	case m.err != nil:
		return m.err
	}
	return nil
}

// Ended reports whether the user left the chat with /end.
func (m *ChatModel) Ended() bool {
	return m.ended
}

// Close stops polling. It is safe to call more than once.
func (m *ChatModel) Close() {
	m.stopPolling()
}

func (m *ChatModel) apply(effects []chat.Effect) tea.Cmd {
	var cmds []tea.Cmd

	for _, effect := range effects {
		switch e := effect.(type) {
		case chat.FetchThread:
			cmds = append(cmds, m.cmdFetch(e))
		case chat.SendMessage:
			cmds = append(cmds, m.cmdSend(e))
		case chat.StartPolling:
			m.startPolling(e.Interval)
		case chat.StopPolling:
			m.stopPolling()
		case chat.EndSession:
			m.ended = true
			cmds = append(cmds, tea.Quit)
		case chat.Interrupt:
			m.interrupted = true
			cmds = append(cmds, tea.Quit)
		case chat.Fail:
			m.err = e.Err
			cmds = append(cmds, tea.Quit)
		}
	}

	return tea.Batch(cmds...)
}

func (m *ChatModel) startPolling(interval time.Duration) {
	m.poller.Stop()
	m.epoch++

	epoch := m.epoch
	ticks := m.ticks
	m.poller.Start(m.ctx, interval, func() {
		select {
		case ticks <- epoch:
		default:
		}
	})
}

func (m *ChatModel) stopPolling() {
	m.poller.Stop()
	m.epoch++
}

// waitTick turns the next queued poll tick into a message.
func (m *ChatModel) waitTick() tea.Cmd {
	ctx := m.ctx
	ticks := m.ticks

	return func() tea.Msg {
		select {
		case epoch := <-ticks:
			return pollTickMsg{epoch: epoch}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m *ChatModel) cmdFetch(e chat.FetchThread) tea.Cmd {
	ctx := m.ctx
	gateway := m.gateway

	return func() tea.Msg {
		thread, err := gateway.FetchThread(ctx, e.ThreadID)
		return fetchedMsg{Generation: e.Generation, Thread: thread, Err: err}
	}
}

func (m *ChatModel) cmdSend(e chat.SendMessage) tea.Cmd {
	ctx := m.ctx
	gateway := m.gateway

	return func() tea.Msg {
		return sentMsg{err: gateway.SendMessage(ctx, e.ThreadID, e.Text)}
	}
}
