package chat

import "time"

// Effect is an instruction from a [Session] to its host. Effects returned by
// one call must be executed in order.
type Effect interface {
	effect()
}

// FetchThread asks the host to fetch ThreadID and report back through
// [Session.HandleFetched] with the same Generation.
type FetchThread struct {
	ThreadID   string
	Generation uint64
}

// SendMessage asks the host to send Text and report back through
// [Session.HandleSent].
type SendMessage struct {
	ThreadID string
	Text     string
}

// StartPolling asks the host to (re)start the poll timer and feed its ticks
// to [Session.HandleTick].
type StartPolling struct {
	Interval time.Duration
}

// StopPolling asks the host to stop the poll timer before doing anything else.
type StopPolling struct{}

// EndSession tells the host the chat is over and control returns to thread
// selection.
type EndSession struct{}

// Interrupt tells the host the user asked to terminate the process.
type Interrupt struct {
	// ClearFrame is set when the frame should be wiped before exiting.
	ClearFrame bool
}

// Fail tells the host the session cannot continue.
type Fail struct {
	Err error
}

func (FetchThread) effect()  {}
func (SendMessage) effect()  {}
func (StartPolling) effect() {}
func (StopPolling) effect()  {}
func (EndSession) effect()   {}
func (Interrupt) effect()    {}
func (Fail) effect()         {}
