package auth

import (
	"testing"
	"time"

	"lostfound/config"
	"lostfound/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

func sign(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func claimsFor(subject, issuer string, ttl time.Duration) *service.Claims {
	now := time.Now()

	return &service.Claims{
		Email: "buzz@gatech.edu",
		Name:  "Buzz",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func newVerifier(t *testing.T, issuer string) service.TokenVerifier {
	t.Helper()
	v, err := NewJWTVerifier(&config.Config{Auth: &config.AuthConfig{Enabled: true, Secret: testSecret, Issuer: issuer}})
	require.NoError(t, err)

	return v
}

func TestJWTVerifier_VerifyToken(t *testing.T) {
	v := newVerifier(t, "https://sso.gatech.edu")

	token := sign(t, jwt.SigningMethodHS256, testSecret, claimsFor("user-42", "https://sso.gatech.edu", time.Minute))
	claims, err := v.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "buzz@gatech.edu", claims.Email)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	v := newVerifier(t, "https://sso.gatech.edu")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "invalid.token.string"},
		{"wrong secret", sign(t, jwt.SigningMethodHS256, "other_secret", claimsFor("user-42", "https://sso.gatech.edu", time.Minute))},
		{"expired", sign(t, jwt.SigningMethodHS256, testSecret, claimsFor("user-42", "https://sso.gatech.edu", -time.Minute))},
		{"wrong issuer", sign(t, jwt.SigningMethodHS256, testSecret, claimsFor("user-42", "https://evil.example.com", time.Minute))},
		{"wrong algorithm", sign(t, jwt.SigningMethodHS512, testSecret, claimsFor("user-42", "https://sso.gatech.edu", time.Minute))},
		{"no subject", sign(t, jwt.SigningMethodHS256, testSecret, claimsFor("", "https://sso.gatech.edu", time.Minute))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := v.VerifyToken(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTVerifier(t *testing.T) {
	_, err := NewJWTVerifier(&config.Config{Auth: &config.AuthConfig{Enabled: true}})
	require.Error(t, err)

	v, err := NewJWTVerifier(&config.Config{})
	require.NoError(t, err)
	assert.NotNil(t, v)
}
