// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// MessageKind is the backend item type of a message ("text", "media",
// "like", ...). Only [MessageKindText] is rendered verbatim.
type MessageKind string

// MessageKindText marks plain text messages.
const MessageKindText MessageKind = "text"

// Message is a single immutable thread item.
type Message struct {
	// SenderID is the participant ID of the author.
	SenderID string
	// Kind is the backend item type.
	Kind MessageKind
	// Payload is the message text for text messages and a placeholder label
	// (see [NonTextLabel]) for every other kind.
	Payload string
	// CreatedAt is the backend creation time.
	CreatedAt time.Time
}

// IsText reports whether m carries user text.
func (m Message) IsText() bool {
	return m.Kind == MessageKindText
}

// NonTextLabel returns the placeholder shown instead of a non-text payload.
func NonTextLabel(kind MessageKind) string {
	return fmt.Sprintf("[a non-text message of type %s]", kind)
}
