package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

// CreateToken issues a signed, self-contained token carrying the subject
// user id, the token kind, issued-at and expiry.
func CreateToken(secret, algorithm string, subject uint, ttl time.Duration, kind string) (string, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return "", fmt.Errorf("unknown signing algorithm %q", algorithm)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", subject),
		"kind": kind,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the signature and expiry of a token and checks that
// it is of the expected kind, returning the subject user id.
func ParseToken(secret, tokenString, expectedKind string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}
	if kind, _ := claims["kind"].(string); kind != expectedKind {
		return 0, fmt.Errorf("unexpected token kind")
	}

	sub, _ := claims["sub"].(string)
	var id uint
	if _, err := fmt.Sscanf(sub, "%d", &id); err != nil || id == 0 {
		return 0, fmt.Errorf("invalid subject in token")
	}
	return id, nil
}
