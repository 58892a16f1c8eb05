package repository

import (
	"sync"

	"github.com/musicschool/progress-api/internal/model"
)

// AccountRepository holds the accounts of a single role in memory. The
// server runs one instance for instructors and one for students; a record
// never moves between them. Reads may run concurrently but appends take the
// write lock, so id assignment stays race-free.
type AccountRepository struct {
	mu       sync.RWMutex
	role     model.Role
	accounts []model.Account
}

func NewAccountRepository(role model.Role) *AccountRepository {
	return &AccountRepository{role: role}
}

// Create appends a new account and assigns the next sequential id. Ids stay
// monotonic because accounts are never deleted.
func (r *AccountRepository) Create(name, email, passwordHash string) model.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	account := model.Account{
		ID:           len(r.accounts) + 1,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         r.role,
	}
	r.accounts = append(r.accounts, account)
	return account
}

// FindByEmail returns the first account with the given email, or nil if none
// exists. Serves both duplicate detection and login.
func (r *AccountRepository) FindByEmail(email string) *model.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.accounts {
		if r.accounts[i].Email == email {
			account := r.accounts[i]
			return &account
		}
	}
	return nil
}

// GetAll returns every account in insertion order.
func (r *AccountRepository) GetAll() []model.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}
