// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials are the login/password pair typed by the user or passed via
// flags. Password is never persisted.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Account is the authenticated user of the current process.
type Account struct {
	// UserID is the backend participant ID of the account; messages with this
	// sender are rendered as "You".
	UserID string
	Login  string
	Name   string
	// Token is the bearer token attached to every authenticated request.
	Token string
}

// Session is a locally persisted login, reused across process runs until the
// token expires.
type Session struct {
	Login     string
	UserID    string
	Name      string
	Token     string
	ExpiresAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the session token is no longer usable at now.
// A zero ExpiresAt means the token carries no expiry.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Account converts the session into the runtime account.
func (s Session) Account() Account {
	return Account{UserID: s.UserID, Login: s.Login, Name: s.Name, Token: s.Token}
}
