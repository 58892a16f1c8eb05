package service

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/musicschool/progress-api/internal/model"
	"github.com/musicschool/progress-api/internal/repository"
)

// AuthService registers and authenticates the accounts of a single role.
// The server runs one instance per role, each owning its own store.
type AuthService struct {
	accounts *repository.AccountRepository
	tokens   *TokenService
	logger   *zap.Logger
}

func NewAuthService(accounts *repository.AccountRepository, tokens *TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{
		accounts: accounts,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a new account unless the email is already taken. The
// password is stored only as a bcrypt hash.
func (s *AuthService) Register(name, email, password string) (*model.Account, error) {
	if existing := s.accounts.FindByEmail(email); existing != nil {
		return nil, model.ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := s.accounts.Create(name, email, string(hash))

	s.logger.Info("Account registered",
		zap.Int("id", account.ID),
		zap.String("role", string(account.Role)),
		zap.String("email", email),
	)

	return &account, nil
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password produce the same error so accounts cannot be enumerated.
func (s *AuthService) Login(email, password string) (string, error) {
	account := s.accounts.FindByEmail(email)
	if account == nil {
		return "", model.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("Account logged in",
		zap.Int("id", account.ID),
		zap.String("role", string(account.Role)),
	)

	return token, nil
}

// GetAll returns every account of this service's role in insertion order.
func (s *AuthService) GetAll() []model.Account {
	return s.accounts.GetAll()
}
