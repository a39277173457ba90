package chat

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-thread-chat/models"
)

const testInterval = 5 * time.Second

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(SessionConfig{
		ThreadID:     "t1",
		Title:        "hint",
		PollInterval: testInterval,
		Renderer:     newTestRenderer(nil),
	})
	require.NoError(t, err)
	return s
}

func testThread(payloads ...string) models.Thread {
	th := models.Thread{
		ID:    "t1",
		Title: "team",
		Participants: map[string]models.Participant{
			"u2": {ID: "u2", DisplayName: "bob"},
		},
	}
	for i, p := range payloads {
		th.Messages = append(th.Messages, models.Message{
			SenderID:  "u2",
			Kind:      models.MessageKindText,
			Payload:   p,
			CreatedAt: renderNow.Add(time.Duration(i) * time.Second),
		})
	}
	return th
}

// viewingSession returns a session that completed its initial load.
func viewingSession(t *testing.T) *Session {
	t.Helper()
	s := newTestSession(t)
	effects := s.Start()
	fetch := effects[0].(FetchThread)
	s.HandleFetched(FetchResult{Generation: fetch.Generation, Thread: testThread("hello")})
	require.Equal(t, StateViewing, s.State())
	return s
}

func typeText(s *Session, text string) {
	for _, r := range text {
		s.HandleKey(Char(string(r)))
	}
}

func submit(s *Session) []Effect {
	return s.HandleKey(KeyEvent{Kind: KeySubmit})
}

func fetchesIn(effects []Effect) []FetchThread {
	var out []FetchThread
	for _, e := range effects {
		if f, ok := e.(FetchThread); ok {
			out = append(out, f)
		}
	}
	return out
}

func sendsIn(effects []Effect) []SendMessage {
	var out []SendMessage
	for _, e := range effects {
		if m, ok := e.(SendMessage); ok {
			out = append(out, m)
		}
	}
	return out
}

// ── construction ──────────────────────────────────────────────────────────────

func TestNewSession_Validation(t *testing.T) {
	r := newTestRenderer(nil)

	_, err := NewSession(SessionConfig{PollInterval: time.Second, Renderer: r})
	assert.ErrorIs(t, err, ErrEmptyThreadID)

	_, err = NewSession(SessionConfig{ThreadID: "t", Renderer: r})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewSession(SessionConfig{ThreadID: "t", PollInterval: time.Second})
	assert.ErrorIs(t, err, ErrNilRenderer)
}

// ── loading ───────────────────────────────────────────────────────────────────

func TestSession_StartFetchesThread(t *testing.T) {
	s := newTestSession(t)

	effects := s.Start()

	require.Len(t, effects, 1)
	assert.Equal(t, FetchThread{ThreadID: "t1", Generation: 1}, effects[0])
	assert.Equal(t, StateLoading, s.State())
	assert.Empty(t, s.View())
}

func TestSession_LoadSuccessStartsPolling(t *testing.T) {
	cache := NewParticipantCache()
	s, err := NewSession(SessionConfig{
		ThreadID:     "t1",
		PollInterval: testInterval,
		Renderer:     newTestRenderer(cache),
		Participants: cache,
	})
	require.NoError(t, err)
	s.Start()

	effects := s.HandleFetched(FetchResult{Generation: 1, Thread: testThread("hi")})

	assert.Equal(t, []Effect{StartPolling{Interval: testInterval}}, effects)
	assert.Equal(t, StateViewing, s.State())
	assert.Equal(t, "team", s.Title())
	_, ok := cache.Lookup("u2")
	assert.True(t, ok)
	assert.Contains(t, plain(s.View()), `bob: "hi"`)
	assert.Contains(t, plain(s.View()), "Reply to [team] ›")
}

func TestSession_LoadFailureFails(t *testing.T) {
	s := newTestSession(t)
	s.Start()
	boom := errors.New("boom")

	effects := s.HandleFetched(FetchResult{Generation: 1, Err: boom})

	assert.Equal(t, []Effect{Fail{Err: boom}}, effects)
	assert.Equal(t, StateEnding, s.State())
}

func TestSession_KeysIgnoredWhileLoading(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	typeText(s, "abc")

	assert.Empty(t, s.Input())
	assert.Nil(t, s.HandleTick())
}

// ── typing ────────────────────────────────────────────────────────────────────

func TestSession_TypingAndBackspace(t *testing.T) {
	s := viewingSession(t)

	typeText(s, "hey")
	s.HandleKey(KeyEvent{Kind: KeyBackspace})
	s.HandleKey(KeyEvent{Kind: KeyNoise})
	s.HandleKey(Char("\x1b[A"))
	s.HandleKey(Char("\x07"))

	assert.Equal(t, "he", s.Input())
	assert.Contains(t, plain(s.View()), "Reply to [team] › he")
}

func TestSession_PastedChunkKeepsPrintableRunes(t *testing.T) {
	s := viewingSession(t)

	// вставка приходит одним событием; управляющие символы отбрасываются по одному
	s.HandleKey(Char("hello\nworld"))
	s.HandleKey(Char(" hi\tthere\x1b[31m!"))

	assert.Equal(t, "helloworld hithere!", s.Input())
}

func TestSession_EmptySubmitIsNoop(t *testing.T) {
	s := viewingSession(t)

	effects := submit(s)

	assert.Nil(t, effects)
	assert.Equal(t, StateViewing, s.State())
	assert.False(t, s.sending)
}

// ── sending ───────────────────────────────────────────────────────────────────

func TestSession_SubmitSendsOnceAndClearsOnSuccess(t *testing.T) {
	s := viewingSession(t)
	typeText(s, "hi")

	effects := submit(s)
	require.Equal(t, []Effect{SendMessage{ThreadID: "t1", Text: "hi"}}, effects)
	assert.True(t, s.sending)
	// буфер очищается только после подтверждения отправки
	assert.Equal(t, "hi", s.Input())

	effects = s.HandleSent(nil)

	assert.Empty(t, s.Input())
	assert.Len(t, fetchesIn(effects), 1)
	assert.Empty(t, sendsIn(effects))
	assert.False(t, s.sending)
}

func TestSession_SendFailurePreservesBuffer(t *testing.T) {
	s := viewingSession(t)
	typeText(s, "hi")
	submit(s)

	effects := s.HandleSent(errors.New("offline"))

	assert.Empty(t, effects)
	assert.Equal(t, "hi", s.Input())
	assert.Contains(t, plain(s.View()), "! offline")

	// повторная отправка возможна
	effects = submit(s)
	assert.Equal(t, []Effect{SendMessage{ThreadID: "t1", Text: "hi"}}, effects)
}

func TestSession_KeysQueuedDuringSendAreReplayed(t *testing.T) {
	s := viewingSession(t)
	typeText(s, "one")
	submit(s)

	typeText(s, "tw")
	s.HandleKey(Char("o"))
	assert.Equal(t, "one", s.Input())

	s.HandleSent(nil)

	assert.Equal(t, "two", s.Input())
}

func TestSession_QueuedSubmitStartsNextSend(t *testing.T) {
	s := viewingSession(t)
	typeText(s, "a")
	submit(s)
	typeText(s, "b")
	submit(s)
	typeText(s, "c")

	effects := s.HandleSent(nil)

	assert.Equal(t, []SendMessage{{ThreadID: "t1", Text: "b"}}, sendsIn(effects))
	assert.True(t, s.sending)
	assert.Equal(t, "b", s.Input())

	s.HandleSent(nil)
	assert.Equal(t, "c", s.Input())
}

func TestSession_QueuedEndAfterSend(t *testing.T) {
	s := viewingSession(t)
	typeText(s, "bye")
	submit(s)
	typeText(s, CommandEnd)
	submit(s)
	typeText(s, "x")

	effects := s.HandleSent(nil)

	assert.Contains(t, effects, Effect(EndSession{}))
	assert.Equal(t, StateEnding, s.State())
	assert.Equal(t, CommandEnd, s.Input())
}

// ── commands ──────────────────────────────────────────────────────────────────

func TestSession_EndStopsPollingBeforeNotice(t *testing.T) {
	s := viewingSession(t)
	typeText(s, CommandEnd)

	effects := submit(s)

	assert.Equal(t, []Effect{StopPolling{}, EndSession{}}, effects)
	assert.Equal(t, StateEnding, s.State())
	assert.Equal(t, "[*] Ended chat with [team].", s.View())

	// после завершения ничего не обрабатывается
	assert.Nil(t, s.HandleTick())
	assert.Nil(t, s.HandleKey(Char("x")))
	assert.Nil(t, s.HandleFetched(FetchResult{Generation: 9, Thread: testThread()}))
}

func TestSession_EndWhileFetchInFlight(t *testing.T) {
	s := viewingSession(t)
	tick := s.HandleTick()
	require.Len(t, fetchesIn(tick), 1)
	typeText(s, CommandEnd)

	effects := submit(s)
	late := s.HandleFetched(FetchResult{Generation: fetchesIn(tick)[0].Generation, Thread: testThread("late")})

	assert.Equal(t, StopPolling{}, effects[0])
	assert.Nil(t, late)
	assert.Equal(t, StateEnding, s.State())
}

func TestSession_CommandsAreExact(t *testing.T) {
	for _, text := range []string{"/END", " /end", "/end ", "/refresh!", "/Refresh"} {
		t.Run(text, func(t *testing.T) {
			s := viewingSession(t)
			typeText(s, text)

			effects := submit(s)

			assert.Equal(t, []Effect{SendMessage{ThreadID: "t1", Text: text}}, effects)
			assert.Equal(t, StateViewing, s.State())
		})
	}
}

func TestSession_RefreshKeepsBufferAndFetchesOnce(t *testing.T) {
	s := viewingSession(t)
	typeText(s, CommandRefresh)

	effects := submit(s)

	require.Len(t, effects, 2)
	assert.Equal(t, StopPolling{}, effects[0])
	fetch, ok := effects[1].(FetchThread)
	require.True(t, ok)
	assert.Equal(t, StateRefreshing, s.State())
	assert.Equal(t, "[*] Refreshing", s.View())
	assert.Equal(t, CommandRefresh, s.Input())

	// клавиши и тики игнорируются
	assert.Nil(t, s.HandleKey(Char("x")))
	assert.Nil(t, s.HandleTick())

	effects = s.HandleFetched(FetchResult{Generation: fetch.Generation, Thread: testThread("hello", "new")})

	assert.Equal(t, []Effect{StartPolling{Interval: testInterval}}, effects)
	assert.Equal(t, StateViewing, s.State())
	assert.Equal(t, CommandRefresh, s.Input())
	assert.Contains(t, plain(s.View()), `"new"`)
}

func TestSession_RefreshFailureDegradesToViewing(t *testing.T) {
	s := viewingSession(t)
	typeText(s, CommandRefresh)
	fetch := submit(s)[1].(FetchThread)

	effects := s.HandleFetched(FetchResult{Generation: fetch.Generation, Err: errors.New("timeout")})

	assert.Equal(t, []Effect{StartPolling{Interval: testInterval}}, effects)
	assert.Equal(t, StateViewing, s.State())
	view := plain(s.View())
	assert.Contains(t, view, `"hello"`)
	assert.Contains(t, view, "! timeout")
}

func TestSession_StalePollDuringRefreshKeepsWaiting(t *testing.T) {
	s := viewingSession(t)
	poll := fetchesIn(s.HandleTick())[0]
	typeText(s, CommandRefresh)
	refresh := submit(s)[1].(FetchThread)

	effects := s.HandleFetched(FetchResult{Generation: poll.Generation, Thread: testThread("poll")})
	assert.Nil(t, effects)
	assert.Equal(t, StateRefreshing, s.State())

	effects = s.HandleFetched(FetchResult{Generation: refresh.Generation, Thread: testThread("refresh")})
	assert.Equal(t, []Effect{StartPolling{Interval: testInterval}}, effects)
}

// ── polling ───────────────────────────────────────────────────────────────────

func TestSession_TickFetches(t *testing.T) {
	s := viewingSession(t)

	effects := s.HandleTick()

	assert.Equal(t, []Effect{FetchThread{ThreadID: "t1", Generation: 2}}, effects)
}

func TestSession_NewerFetchWinsOverSlowerOlder(t *testing.T) {
	s := viewingSession(t)
	older := fetchesIn(s.HandleTick())[0]
	newer := fetchesIn(s.HandleTick())[0]

	s.HandleFetched(FetchResult{Generation: newer.Generation, Thread: testThread("newer")})
	s.HandleFetched(FetchResult{Generation: older.Generation, Thread: testThread("older")})

	require.True(t, s.loaded)
	require.Len(t, s.thread.Messages, 1)
	assert.Equal(t, "newer", s.thread.Messages[0].Payload)
}

func TestSession_PollFailureIsShownAndCleared(t *testing.T) {
	s := viewingSession(t)

	s.HandleFetched(FetchResult{Generation: fetchesIn(s.HandleTick())[0].Generation, Err: errors.New("502")})
	assert.Equal(t, StateViewing, s.State())
	assert.Contains(t, plain(s.View()), "! 502")

	s.HandleFetched(FetchResult{Generation: fetchesIn(s.HandleTick())[0].Generation, Thread: testThread("ok")})
	assert.NoError(t, s.Err())
	assert.NotContains(t, plain(s.View()), "!")
}

// ── interrupt ─────────────────────────────────────────────────────────────────

func TestSession_Interrupt(t *testing.T) {
	tests := []struct {
		buffer string
		clear  bool
	}{
		{"", true},
		{"a", true},
		{"ab", false},
		{"hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.buffer, func(t *testing.T) {
			s := viewingSession(t)
			typeText(s, tt.buffer)

			effects := s.HandleKey(KeyEvent{Kind: KeyInterrupt})

			assert.Equal(t, []Effect{StopPolling{}, Interrupt{ClearFrame: tt.clear}}, effects)
			assert.Equal(t, StateEnding, s.State())
			assert.True(t, s.interrupted)
			if tt.clear {
				assert.Empty(t, s.View())
			} else {
				assert.Contains(t, plain(s.View()), tt.buffer)
			}
		})
	}
}

func TestSession_InterruptIsNotQueuedBehindSend(t *testing.T) {
	s := viewingSession(t)
	typeText(s, "hi")
	submit(s)

	effects := s.HandleKey(KeyEvent{Kind: KeyInterrupt})

	assert.Equal(t, []Effect{StopPolling{}, Interrupt{ClearFrame: false}}, effects)
	assert.Nil(t, s.HandleSent(nil))
}

func TestSession_InterruptWhileLoading(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	effects := s.HandleKey(KeyEvent{Kind: KeyInterrupt})

	assert.Equal(t, []Effect{StopPolling{}, Interrupt{ClearFrame: true}}, effects)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "viewing", StateViewing.String())
	assert.Equal(t, "refreshing", StateRefreshing.String())
	assert.Equal(t, "ending", StateEnding.String())
	assert.Equal(t, "State(42)", State(42).String())
}
