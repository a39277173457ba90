package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-thread-chat/internal/chat"
)

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	interrupt key.Binding
	submit    key.Binding
	backspace key.Binding
	reload    key.Binding
	copy      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	submit:    key.NewBinding(key.WithKeys("enter", "ctrl+u")),
	backspace: key.NewBinding(key.WithKeys("backspace")),
	reload:    key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
}

// keyEvent classifies a terminal key press for the chat session. Anything
// that is not a plain character, space, backspace, submit or interrupt is
// noise; escape content inside runes is filtered later by the session.
func keyEvent(msg tea.KeyMsg) chat.KeyEvent {
	switch {
	case key.Matches(msg, keys.interrupt):
		return chat.KeyEvent{Kind: chat.KeyInterrupt}
	case key.Matches(msg, keys.submit):
		return chat.KeyEvent{Kind: chat.KeySubmit}
	case key.Matches(msg, keys.backspace):
		return chat.KeyEvent{Kind: chat.KeyBackspace}
	}

	if msg.Alt {
		return chat.KeyEvent{Kind: chat.KeyNoise}
	}

	switch msg.Type {
	case tea.KeyRunes:
		return chat.Char(string(msg.Runes))
	case tea.KeySpace:
		return chat.Char(" ")
	}

	return chat.KeyEvent{Kind: chat.KeyNoise}
}
