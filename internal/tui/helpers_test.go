package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// collect выполняет cmd и раскрывает tea.BatchMsg в плоский список сообщений.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

// drive прогоняет сообщения через модель, пока очередь не опустеет.
// Возвращает true, если модель запросила tea.Quit.
func drive(m tea.Model, cmd tea.Cmd) (quit bool) {
	queue := collect(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]

		switch msg.(type) {
		case tea.QuitMsg:
			quit = true
			continue
		case spinner.TickMsg, cursor.BlinkMsg:
			continue
		}

		var next tea.Cmd
		m, next = m.Update(msg)
		queue = append(queue, collect(next)...)
	}
	return quit
}

// cancelledCtx не даёт ожиданию тиков блокировать тест.
func cancelledCtx() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, s string) bool {
	quit := false
	for _, r := range s {
		_, cmd := m.Update(runes(string(r)))
		quit = drive(m, cmd) || quit
	}
	return quit
}

func press(m tea.Model, t tea.KeyType) bool {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return drive(m, cmd)
}

func plain(s string) string {
	return ansi.Strip(s)
}

// fakePoller запоминает запуски и остановки, не создавая горутин.
type fakePoller struct {
	starts  []time.Duration
	stops   int
	running bool
	onTick  func()
}

func (p *fakePoller) Start(_ context.Context, interval time.Duration, onTick func()) {
	p.starts = append(p.starts, interval)
	p.running = true
	p.onTick = onTick
}

func (p *fakePoller) Stop() {
	p.stops++
	p.running = false
}
