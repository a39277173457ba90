// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Thread is a full snapshot of one conversation as returned by the backend.
//
// A Thread is never patched in place: every fetch produces a new value that
// replaces the previous one wholesale.
type Thread struct {
	// ID is the opaque backend identifier of the thread.
	ID string
	// Title is the human-readable thread name shown in the reply prompt.
	Title string
	// Messages holds the thread history in the order the backend returned it.
	Messages []Message
	// Participants maps participant ID to participant metadata.
	Participants map[string]Participant
}

// ThreadSummary is an inbox entry: enough to pick a thread, not to chat in it.
type ThreadSummary struct {
	ID           string
	Title        string
	Participants []Participant
	// LastMessage is nil for threads without history.
	LastMessage *Message
}
