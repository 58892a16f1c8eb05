package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/musicschool/progress-api/internal/model"
	"github.com/musicschool/progress-api/internal/repository"
)

func newTestAuthService(role model.Role) *AuthService {
	return NewAuthService(
		repository.NewAccountRepository(role),
		NewTokenService("test-secret"),
		zap.NewNop(),
	)
}

func TestAuthService_Register(t *testing.T) {
	auth := newTestAuthService(model.RoleStudent)

	account, err := auth.Register("Ana", "ana@example.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, 1, account.ID)
	assert.Equal(t, model.RoleStudent, account.Role)
	assert.NotEqual(t, "pw1", account.PasswordHash, "password must not be stored in clear")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	auth := newTestAuthService(model.RoleInstructor)

	_, err := auth.Register("Ana", "ana@example.com", "pw1")
	require.NoError(t, err)

	_, err = auth.Register("Other", "ana@example.com", "pw2")
	assert.ErrorIs(t, err, model.ErrDuplicateAccount)
}

func TestAuthService_Login_TokenCarriesIdentity(t *testing.T) {
	tokens := NewTokenService("test-secret")
	auth := NewAuthService(repository.NewAccountRepository(model.RoleInstructor), tokens, zap.NewNop())

	account, err := auth.Register("Ana", "ana@example.com", "pw1")
	require.NoError(t, err)

	raw, err := auth.Login("ana@example.com", "pw1")
	require.NoError(t, err)

	claims, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, model.RoleInstructor, claims.Role)
}

func TestAuthService_Login_Failures(t *testing.T) {
	auth := newTestAuthService(model.RoleStudent)

	_, err := auth.Register("Ana", "ana@example.com", "pw1")
	require.NoError(t, err)

	_, err = auth.Login("ana@example.com", "wrong")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = auth.Login("nobody@example.com", "pw1")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}
