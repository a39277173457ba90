package chat

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// KeyKind classifies a keystroke for the session.
type KeyKind int

const (
	// KeyNoise is any key the session does not react to (arrows, function keys).
	KeyNoise KeyKind = iota
	// KeyChar carries printable text in [KeyEvent.Text].
	KeyChar
	// KeyBackspace deletes the last character.
	KeyBackspace
	// KeySubmit finalizes the buffer (enter or ctrl+u).
	KeySubmit
	// KeyInterrupt terminates the process (ctrl+c).
	KeyInterrupt
)

func (k KeyKind) String() string {
	switch k {
	case KeyChar:
		return "char"
	case KeyBackspace:
		return "backspace"
	case KeySubmit:
		return "submit"
	case KeyInterrupt:
		return "interrupt"
	default:
		return "noise"
	}
}

// KeyEvent is a single classified keystroke.
type KeyEvent struct {
	Kind KeyKind
	Text string
}

// Char builds a [KeyChar] event.
func Char(text string) KeyEvent { return KeyEvent{Kind: KeyChar, Text: text} }

// Chat commands recognised on submit. Matching is exact and case-sensitive.
const (
	CommandEnd     = "/end"
	CommandRefresh = "/refresh"
)

// sanitize removes escape sequences from text and replaces every control
// rune and invalid byte with repl. A negative repl drops them instead.
func sanitize(text string, repl rune) string {
	stripped := ansi.Strip(text)

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if r == utf8.RuneError || unicode.IsControl(r) {
			if repl >= 0 {
				b.WriteRune(repl)
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
