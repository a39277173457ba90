// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expires time.Time
		want    bool
	}{
		{name: "no expiry", expires: time.Time{}, want: false},
		{name: "in the future", expires: now.Add(time.Minute), want: false},
		{name: "exactly now", expires: now, want: true},
		{name: "in the past", expires: now.Add(-time.Second), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{ExpiresAt: tt.expires}
			assert.Equal(t, tt.want, s.Expired(now))
		})
	}
}

func TestSession_Account(t *testing.T) {
	s := Session{Login: "alice", UserID: "42", Name: "Alice", Token: "tok"}
	assert.Equal(t, Account{UserID: "42", Login: "alice", Name: "Alice", Token: "tok"}, s.Account())
}

func TestToken_GetUserID(t *testing.T) {
	tok := Token{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-7"}}
	id, err := tok.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, "user-7", id)

	empty := Token{}
	_, err = empty.GetUserID()
	assert.Error(t, err)
}

func TestToken_ExpiresAt(t *testing.T) {
	exp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tok := Token{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}}
	assert.True(t, exp.Equal(tok.ExpiresAt()))

	assert.True(t, (&Token{}).ExpiresAt().IsZero())
}

func TestNonTextLabel(t *testing.T) {
	assert.Equal(t, "[a non-text message of type media]", NonTextLabel("media"))
	assert.True(t, Message{Kind: MessageKindText}.IsText())
	assert.False(t, Message{Kind: "like"}.IsText())
}
