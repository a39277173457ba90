package tui

import (
	"github.com/MKhiriev/go-thread-chat/internal/chat"
	"github.com/MKhiriev/go-thread-chat/models"
)

type loginDoneMsg struct {
	account models.Account
	err     error
}

type inboxLoadedMsg struct {
	threads []models.ThreadSummary
	err     error
}

type copiedMsg struct {
	threadID string
	err      error
}

type fetchedMsg chat.FetchResult

type sentMsg struct {
	err error
}

// pollTickMsg carries the epoch of the poll run that produced it.
type pollTickMsg struct {
	epoch uint64
}
