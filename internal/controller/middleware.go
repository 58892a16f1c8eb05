package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/musicschool/progress-api/internal/model"
	"github.com/musicschool/progress-api/internal/service"
)

const claimsKey = "claims"

// AuthMiddleware is the access-control gate: it verifies bearer tokens and
// optionally enforces a role before a handler runs. No state is kept between
// requests; every request re-verifies its token.
type AuthMiddleware struct {
	tokens *service.TokenService
}

func NewAuthMiddleware(tokens *service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid bearer token and attaches the
// decoded claims to the request context. A missing or malformed header is a
// 401; a token that fails verification is a 403. The two terminal states stay
// distinct so clients can tell "send a token" from "get a new token".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": model.ErrUnauthenticated.Error()})
		}

		claims, err := m.tokens.Verify(raw)
		if err != nil {
			return c.JSON(http.StatusForbidden, echo.Map{"error": model.ErrInvalidToken.Error()})
		}

		c.Set(claimsKey, claims)
		return next(c)
	}
}

// RequireRole chains after Authenticate and rejects callers whose role does
// not match the route's requirement.
func (m *AuthMiddleware) RequireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok || claims.Role != role {
				return c.JSON(http.StatusForbidden, echo.Map{"error": model.ErrForbidden.Error()})
			}
			return next(c)
		}
	}
}

// ClaimsFrom returns the verified claims attached by Authenticate.
func ClaimsFrom(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)
	return claims, ok
}
