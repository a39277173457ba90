package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-thread-chat/internal/chat"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want chat.KeyEvent
	}{
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, want: chat.KeyEvent{Kind: chat.KeyInterrupt}},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: chat.KeyEvent{Kind: chat.KeySubmit}},
		{name: "ctrl+u", msg: tea.KeyMsg{Type: tea.KeyCtrlU}, want: chat.KeyEvent{Kind: chat.KeySubmit}},
		{name: "backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: chat.KeyEvent{Kind: chat.KeyBackspace}},
		{name: "rune", msg: runes("q"), want: chat.Char("q")},
		{name: "multibyte", msg: runes("ж"), want: chat.Char("ж")},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: chat.Char(" ")},
		{name: "alt rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, want: chat.KeyEvent{Kind: chat.KeyNoise}},
		{name: "arrow", msg: tea.KeyMsg{Type: tea.KeyUp}, want: chat.KeyEvent{Kind: chat.KeyNoise}},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: chat.KeyEvent{Kind: chat.KeyNoise}},
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, want: chat.KeyEvent{Kind: chat.KeyNoise}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyEvent(tt.msg))
		})
	}
}
