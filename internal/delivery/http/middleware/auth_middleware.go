package middleware

import (
	"slices"
	"strings"

	domainerrors "vidgate/internal/domain/errors"
	"vidgate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// ContextKeySubject holds the calling service's name.
	ContextKeySubject = "subject"
	// ContextKeyScopes holds the scopes granted to the caller.
	ContextKeyScopes = "scopes"
)

// AuthMiddleware checks the service tokens presented by the bot front end.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its subject and scopes on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithCause(err)
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyScopes, claims.Scopes)

		return next(c)
	}
}

// RequireScope rejects callers whose token lacks scope.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scopes, _ := c.Get(ContextKeyScopes).([]string)
			if !slices.Contains(scopes, scope) {
				return domainerrors.ErrForbidden.WithDetails("requires scope " + scope)
			}

			return next(c)
		}
	}
}
