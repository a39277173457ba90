package chat

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-thread-chat/models"
)

// State is the lifecycle phase of a [Session].
type State int

const (
	// StateLoading waits for the first fetch.
	StateLoading State = iota
	// StateViewing polls the thread and accepts keystrokes.
	StateViewing
	// StateRefreshing waits for a forced re-fetch with polling stopped.
	StateRefreshing
	// StateEnding is terminal.
	StateEnding
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateViewing:
		return "viewing"
	case StateRefreshing:
		return "refreshing"
	case StateEnding:
		return "ending"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FetchResult is the outcome of a [FetchThread] effect.
type FetchResult struct {
	Generation uint64
	Thread     models.Thread
	Err        error
}

// SessionConfig configures a [Session].
type SessionConfig struct {
	ThreadID string
	// Title is shown until the first fetch provides the real one.
	Title        string
	PollInterval time.Duration
	Renderer     *Renderer
	// Participants receives every participant of every applied fetch.
	Participants *ParticipantCache
}

// Session is the state machine of one chat view. It is not safe for
// concurrent use; the host serialises every call.
type Session struct {
	threadID     string
	interval     time.Duration
	renderer     *Renderer
	participants *ParticipantCache

	state    State
	thread   models.Thread
	loaded   bool
	input    InputBuffer
	seq      FetchSequencer
	awaiting uint64

	sending bool
	pending []KeyEvent

	lastErr     error
	notice      string
	interrupted bool
	clearFrame  bool
}

// NewSession validates cfg and returns a session in [StateLoading].
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.ThreadID == "" {
		return nil, ErrEmptyThreadID
	}
	if cfg.PollInterval <= 0 {
		return nil, ErrInvalidInterval
	}
	if cfg.Renderer == nil {
		return nil, ErrNilRenderer
	}
	participants := cfg.Participants
	if participants == nil {
		participants = cfg.Renderer.cache
	}

	return &Session{
		threadID:     cfg.ThreadID,
		interval:     cfg.PollInterval,
		renderer:     cfg.Renderer,
		participants: participants,
		thread:       models.Thread{ID: cfg.ThreadID, Title: cfg.Title},
	}, nil
}

// Start issues the initial fetch.
func (s *Session) Start() []Effect {
	s.state = StateLoading
	return []Effect{s.beginFetch(true)}
}

// HandleKey processes one keystroke. Keys arriving while a send is in flight
// are queued and replayed when it resolves; an interrupt is never queued.
func (s *Session) HandleKey(ev KeyEvent) []Effect {
	if s.state == StateEnding {
		return nil
	}
	if ev.Kind == KeyInterrupt {
		return s.interrupt()
	}
	if s.state != StateViewing {
		return nil
	}
	if s.sending {
		s.pending = append(s.pending, ev)
		return nil
	}
	return s.dispatch(ev)
}

// HandleTick re-fetches the thread on a poll tick.
func (s *Session) HandleTick() []Effect {
	if s.state != StateViewing {
		return nil
	}
	return []Effect{s.beginFetch(false)}
}

// HandleFetched applies a fetch result unless a newer one was applied first.
func (s *Session) HandleFetched(res FetchResult) []Effect {
	if s.state == StateEnding {
		return nil
	}
	if !s.seq.Accept(res.Generation) {
		return nil
	}

	waitedFor := (s.state == StateLoading || s.state == StateRefreshing) && res.Generation >= s.awaiting

	if res.Err != nil {
		if s.state == StateLoading {
			s.state = StateEnding
			return []Effect{Fail{Err: res.Err}}
		}
		s.lastErr = res.Err
		if waitedFor {
			return s.enterViewing()
		}
		return nil
	}

	s.thread = res.Thread
	if s.thread.ID == "" {
		s.thread.ID = s.threadID
	}
	s.loaded = true
	s.lastErr = nil
	s.participants.UpsertThread(res.Thread)

	if waitedFor {
		return s.enterViewing()
	}
	return nil
}

// HandleSent resolves the in-flight send and replays queued keys.
func (s *Session) HandleSent(err error) []Effect {
	if !s.sending {
		return nil
	}
	s.sending = false
	if s.state != StateViewing {
		s.pending = nil
		return nil
	}

	var effects []Effect
	if err != nil {
		s.lastErr = err
	} else {
		s.input.Clear()
		s.lastErr = nil
		effects = append(effects, s.beginFetch(false))
	}

	queued := s.pending
	s.pending = nil
	for i, ev := range queued {
		if s.state != StateViewing {
			break
		}
		if s.sending {
			s.pending = append(s.pending, queued[i:]...)
			break
		}
		effects = append(effects, s.dispatch(ev)...)
	}

	return effects
}

// View renders the current frame. It is empty while loading and after an
// interrupt that cleared the frame.
func (s *Session) View() string {
	switch {
	case s.interrupted && s.clearFrame:
		return ""
	case s.interrupted:
		return s.renderer.Render(s.thread, s.input.Text(), true)
	case s.notice != "":
		return s.notice
	case !s.loaded:
		return ""
	}

	frame := s.renderer.Render(s.thread, s.input.Text(), s.state == StateViewing)
	if s.lastErr != nil {
		frame += "\n" + s.renderer.ErrorLine(s.lastErr)
	}
	return frame
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// ThreadID returns the id of the thread this session shows.
func (s *Session) ThreadID() string { return s.threadID }

// Title returns the best known thread title.
func (s *Session) Title() string { return s.thread.Title }

// Input returns the pending reply text.
func (s *Session) Input() string { return s.input.Text() }

// Err returns the last mid-session fetch or send error, if any.
func (s *Session) Err() error { return s.lastErr }

func (s *Session) dispatch(ev KeyEvent) []Effect {
	switch ev.Kind {
	case KeyChar:
		for _, r := range sanitize(ev.Text, -1) {
			s.input.Append(r)
		}
	case KeyBackspace:
		s.input.DeleteLast()
	case KeySubmit:
		return s.submit()
	}
	return nil
}

func (s *Session) submit() []Effect {
	if s.input.Len() == 0 {
		return nil
	}

	text := s.input.Text()
	switch text {
	case CommandEnd:
		s.state = StateEnding
		s.notice = fmt.Sprintf("[*] Ended chat with %s.", BracketTitle(s.thread.Title))
		return []Effect{StopPolling{}, EndSession{}}
	case CommandRefresh:
		s.state = StateRefreshing
		s.notice = "[*] Refreshing"
		return []Effect{StopPolling{}, s.beginFetch(true)}
	default:
		s.sending = true
		return []Effect{SendMessage{ThreadID: s.threadID, Text: text}}
	}
}

func (s *Session) interrupt() []Effect {
	s.state = StateEnding
	s.interrupted = true
	s.clearFrame = s.input.Len() <= 1
	s.pending = nil
	return []Effect{StopPolling{}, Interrupt{ClearFrame: s.clearFrame}}
}

func (s *Session) enterViewing() []Effect {
	s.state = StateViewing
	s.notice = ""
	return []Effect{StartPolling{Interval: s.interval}}
}

func (s *Session) beginFetch(await bool) FetchThread {
	gen := s.seq.Begin()
	if await {
		s.awaiting = gen
	}
	return FetchThread{ThreadID: s.threadID, Generation: gen}
}
