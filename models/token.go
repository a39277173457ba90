// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a bearer token received from the backend together with the claims
// the client needs from it.
//
// The client never verifies the signature (it does not hold the key); claims
// are read only to learn the account ID and the expiry time.
type Token struct {
	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`
}

// GetUserID returns the "sub" claim, which the backend sets to the account's
// participant ID.
func (t *Token) GetUserID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting user id from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting user id from token: empty subject")
	}

	return sub, nil
}

// ExpiresAt returns the "exp" claim or the zero time when the token has none.
func (t *Token) ExpiresAt() time.Time {
	exp, err := t.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
