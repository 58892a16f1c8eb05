package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicschool/progress-api/internal/model"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := NewTokenService("test-secret")

	raw, err := tokens.Issue(42, model.RoleInstructor)
	require.NoError(t, err)

	claims, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.AccountID)
	assert.Equal(t, model.RoleInstructor, claims.Role)
	assert.NotEmpty(t, claims.ID)

	window := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, window)
}

func TestTokenService_Verify_RejectsWrongSecret(t *testing.T) {
	raw, err := NewTokenService("secret-a").Issue(1, model.RoleStudent)
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Verify(raw)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenService_Verify_RejectsExpired(t *testing.T) {
	secret := "test-secret"
	claims := Claims{
		AccountID: 1,
		Role:      model.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenService(secret).Verify(raw)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenService_Verify_RejectsUnknownRole(t *testing.T) {
	secret := "test-secret"
	claims := Claims{
		AccountID: 1,
		Role:      model.Role("admin"),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	// A well-signed token with a role outside the closed set is still invalid.
	_, err = NewTokenService(secret).Verify(raw)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenService_Verify_RejectsGarbage(t *testing.T) {
	_, err := NewTokenService("test-secret").Verify("not-a-token")
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}
