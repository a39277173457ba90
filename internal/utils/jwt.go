package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-thread-chat/models"
)

// ErrInvalidAuthorizationHeader is returned when the header is not
// "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// ParseToken reads the claims of tokenString without verifying its
// signature. The client does not hold the signing key; it only needs the
// subject and the expiry, and the backend re-validates the token on every
// request anyway.
//
// Example usage:
//
//	token, err := utils.ParseToken(raw)
//	if err != nil {
//	    // not a JWT
//	}
//	userID, err := token.GetUserID()
func ParseToken(tokenString string) (models.Token, error) {
	token := models.Token{SignedString: tokenString}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &token.RegisteredClaims); err != nil {
		return models.Token{}, fmt.Errorf("error parsing token claims: %w", err)
	}

	return token, nil
}
