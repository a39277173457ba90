package chat

import (
	"context"

	"github.com/MKhiriev/go-thread-chat/models"
)

// ThreadFetcher returns a full snapshot of one thread.
type ThreadFetcher interface {
	FetchThread(ctx context.Context, threadID string) (models.Thread, error)
}

// MessageSender delivers a text message to a thread.
type MessageSender interface {
	SendMessage(ctx context.Context, threadID, text string) error
}

// Gateway is everything a session host needs from the backend.
type Gateway interface {
	ThreadFetcher
	MessageSender
}
