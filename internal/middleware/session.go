package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sammytumzy/TunmzyTech/internal/auth"
	"github.com/sammytumzy/TunmzyTech/internal/config"
)

// DefaultUserUID is charged for approvals arriving without a session token.
// Kept so the payment endpoints stay usable from the Pi sandbox before the
// frontend wires the token through.
const DefaultUserUID = "demo_user"

const userUIDKey = "user_uid"

// OptionalSession binds the caller's uid from a Bearer session token when
// one is present and valid; otherwise the request proceeds as DefaultUserUID.
func OptionalSession(sessionCfg *config.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(userUIDKey, DefaultUserUID)

			header := c.Request().Header.Get("Authorization")
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				if claims, err := auth.ParseSessionToken(sessionCfg, token); err == nil {
					c.Set(userUIDKey, claims.Subject)
				}
			}

			return next(c)
		}
	}
}

// UserUID returns the uid bound by OptionalSession.
func UserUID(c echo.Context) string {
	if uid, ok := c.Get(userUIDKey).(string); ok && uid != "" {
		return uid
	}
	return DefaultUserUID
}
