package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims read from identity provider tokens.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates credentials issued by the external identity provider.
// Issuing tokens is out of scope for this service.
type TokenVerifier interface {
	// VerifyToken checks the token and returns its claims. The subject is the user ID.
	VerifyToken(tokenString string) (*Claims, error)
}
