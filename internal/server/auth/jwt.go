// Package auth implements stateless credential primitives: signed bearer
// tokens and password hashing. Services and middleware use it; it has no
// storage dependencies.
package auth

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/linkhub/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims includes the registered claims plus the authenticated user's ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken issues an HS256-signed bearer token carrying userID,
// valid for validityDuration from now.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies tokenString against secretKey and returns the
// embedded user ID. An optional "Bearer " prefix is tolerated, so the raw
// Authorization header value can be passed in directly. Malformed, forged,
// or expired tokens yield common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
