// Package auth verifies credentials issued by the campus identity provider.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"lostfound/config"
	"lostfound/internal/domain/service"
)

// jwtVerifier checks HS256 tokens signed with a secret shared with the identity provider.
type jwtVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	auth := cfg.Auth
	if auth == nil {
		auth = &config.AuthConfig{}
	}
	if auth.Enabled && auth.Secret == "" {
		return nil, errors.New("auth secret must be provided when auth is enabled")
	}

	return &jwtVerifier{
		secret: []byte(auth.Secret),
		issuer: auth.Issuer,
	}, nil
}

// VerifyToken validates signature, expiry and issuer, and requires a subject.
func (v *jwtVerifier) VerifyToken(tokenString string) (*service.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}
