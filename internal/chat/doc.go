// Package chat holds the interactive chat session core: the input buffer,
// keystroke classification, the participant cache, the fetch sequencer,
// the frame renderer and the [Session] state machine.
//
// Nothing in this package blocks or starts goroutines. A [Session] reacts to
// events (keys, poll ticks, fetch and send results) and answers with a list
// of [Effect] values that the host executes in order. The terminal host in
// internal/tui feeds every event through a single bubbletea queue, so a
// Session is never used concurrently.
package chat
