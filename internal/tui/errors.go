// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-thread-chat/internal/service"
)

var (
	// ErrUserQuit is returned when the user leaves a screen with q or esc.
	ErrUserQuit = errors.New("user quit")
	// ErrInterrupted is returned when the user pressed ctrl+c.
	ErrInterrupted = errors.New("interrupted")
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrServerUnavailable) {
		return "No network connection or the server is unavailable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unavailable"
	}

	return err.Error()
}
