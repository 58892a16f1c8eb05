package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/musicschool/progress-api/internal/model"
)

// Tokens are valid for a fixed window from issuance; there is no revocation
// list, so validity is purely signature plus expiry.
const tokenTTL = time.Hour

// Claims is the payload carried by every issued token.
type Claims struct {
	AccountID int        `json:"id"`
	Role      model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed bearer tokens checked by the
// access-control middleware.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs an HS256 token for the given account, valid for one hour.
func (s *TokenService) Issue(accountID int, role model.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the decoded claims. A token
// carrying a role outside the known set is rejected the same way as a forged
// or expired one.
func (s *TokenService) Verify(raw string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, model.ErrInvalidToken
	}
	if !claims.Role.Valid() {
		return nil, model.ErrInvalidToken
	}
	return &claims, nil
}
