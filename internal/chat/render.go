package chat

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-thread-chat/models"
)

const (
	selfLabel    = "You"
	unknownLabel = "A User"
	emptyHistory = "There are no messages yet."
	promptArrow  = "›"
)

// Renderer turns a thread and the pending reply into one terminal frame.
// It holds no state of its own besides the viewer's account id, the shared
// participant cache and a clock.
type Renderer struct {
	accountID string
	cache     *ParticipantCache
	now       func() time.Time
}

// NewRenderer returns a renderer for the account accountID. A nil now uses
// time.Now.
func NewRenderer(accountID string, cache *ParticipantCache, now func() time.Time) *Renderer {
	if cache == nil {
		cache = NewParticipantCache()
	}
	if now == nil {
		now = time.Now
	}
	return &Renderer{accountID: accountID, cache: cache, now: now}
}

// Render produces a full frame: the message history in creation order, a
// blank line and, when active, the reply prompt with the current input.
func (r *Renderer) Render(thread models.Thread, input string, active bool) string {
	var b strings.Builder
	b.WriteString(r.History(thread))
	b.WriteString("\n\n")
	if active {
		b.WriteString(r.Prompt(thread.Title, input))
	}
	return b.String()
}

// History renders the message lines of thread, oldest first. The input slice
// is not reordered.
func (r *Renderer) History(thread models.Thread) string {
	if len(thread.Messages) == 0 {
		return emptyHistory
	}

	messages := slices.Clone(thread.Messages)
	slices.SortStableFunc(messages, func(a, b models.Message) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, r.MessageLine(m))
	}
	return strings.Join(lines, "\n")
}

// MessageLine renders a single message as `<sender>: <payload> [<age>]`.
// Escape sequences are stripped from the payload and control runes become
// spaces, so a message always takes exactly one line.
func (r *Renderer) MessageLine(m models.Message) string {
	payload := sanitize(m.Payload, ' ')
	if m.IsText() {
		payload = `"` + m.Payload + `"`
	} else if payload == "" {
		payload = models.NonTextLabel(m.Kind)
	}

	age := humanize.RelTime(m.CreatedAt, r.now(), "ago", "from now")
	return fmt.Sprintf("%s: %s %s",
		r.SenderLabel(m.SenderID),
		payloadStyle.Render(payload),
		ageStyle.Render("["+age+"]"),
	)
}

// SenderLabel resolves senderID to "You", the cached display name, or a
// generic placeholder.
func (r *Renderer) SenderLabel(senderID string) string {
	if senderID != "" && senderID == r.accountID {
		return selfStyle.Render(selfLabel)
	}
	if p, ok := r.cache.Lookup(senderID); ok && p.DisplayName != "" {
		return peerStyle.Render(p.DisplayName)
	}
	return unknownStyle.Render(unknownLabel)
}

// Prompt renders the reply line.
func (r *Renderer) Prompt(title, input string) string {
	return fmt.Sprintf("Reply to %s %s %s", BracketTitle(title), promptStyle.Render(promptArrow), input)
}

// ErrorLine renders err as a one-line notice shown under the prompt.
func (r *Renderer) ErrorLine(err error) string {
	if err == nil {
		return ""
	}
	return errLineStyle.Render("! " + err.Error())
}

// BracketTitle wraps a thread title the way it is shown in prompts and notices.
func BracketTitle(title string) string {
	return "[" + title + "]"
}
