package middleware

import (
	stdErrors "errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/transcript-assistant/errors"
	"github.com/johnquangdev/transcript-assistant/pkg/jwt"
)

// Echo context keys set by EchoAuth
const (
	ClaimsKey   = "claims"
	ClientIDKey = "client_id"
)

type errorBody struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
}

// EchoAuth returns an Echo middleware that validates the bearer token and
// sets "claims" (*jwt.Claims) and "client_id" (string) into Echo context
func EchoAuth(manager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return reject(c, errors.ErrUnauthenticated())
			}

			claims, err := manager.ValidateToken(token)
			if err != nil {
				if stdErrors.Is(err, jwt.ErrTokenExpired) {
					return reject(c, errors.ErrTokenExpired())
				}
				return reject(c, errors.ErrInvalidToken(err))
			}

			c.Set(ClaimsKey, claims)
			c.Set(ClientIDKey, claims.ClientID)
			return next(c)
		}
	}
}

// RequireScope rejects requests whose token lacks scope. It must run after EchoAuth.
func RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ClaimsKey).(*jwt.Claims)
			if !ok {
				return reject(c, errors.ErrUnauthenticated())
			}
			if !claims.HasScope(scope) {
				return reject(c, errors.ErrForbidden(scope))
			}
			return next(c)
		}
	}
}

// extractToken reads "Authorization: Bearer <token>"
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func reject(c echo.Context, appErr errors.AppError) error {
	return c.JSON(appErr.HTTPCode, errorBody{Code: appErr.Code, Message: appErr.Message})
}
