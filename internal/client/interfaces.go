// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-thread-chat/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the set of interactive flows the application drives.
type UI interface {
	LoginFlow(ctx context.Context, creds models.Credentials) (models.Account, error)
	SelectThread(ctx context.Context, account models.Account) (models.ThreadSummary, error)
	ChatSession(ctx context.Context, account models.Account, thread models.ThreadSummary) error
}
