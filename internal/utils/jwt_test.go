package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer tok", want: "tok"},
		{name: "surrounding spaces", header: "  Bearer tok  ", want: "tok"},
		{name: "empty", header: "", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
		{name: "wrong scheme", header: "Basic dXNlcg==", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidAuthorizationHeader))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseToken_ReadsClaimsWithoutKey(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signTestToken(t, jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	token, err := ParseToken(raw)
	require.NoError(t, err)

	userID, err := token.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
	assert.True(t, exp.Equal(token.ExpiresAt()))
	assert.Equal(t, raw, token.String())
}

// Просроченный токен всё равно разбирается: срок проверяет вызывающий код.
func TestParseToken_ExpiredStillParses(t *testing.T) {
	raw := signTestToken(t, jwt.RegisteredClaims{
		Subject:   "u",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	token, err := ParseToken(raw)
	require.NoError(t, err)
	assert.True(t, token.ExpiresAt().Before(time.Now()))
}

func TestParseToken_Malformed(t *testing.T) {
	_, err := ParseToken("not-a-jwt")
	assert.Error(t, err)
}
