package model

// Account is an instructor or student identity record. Accounts are
// immutable once created and never deleted.
type Account struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
