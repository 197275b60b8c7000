// Package middleware contains reusable HTTP middleware: the JWT auth
// gate, the role gate, request logging, response caching and rate
// limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ilnabucco/restaurant-reservation/internal/utils"
)

// Context keys under which the verified principal is stored.
const (
	CtxAdminID = "admin_id"
	CtxEmail   = "admin_email"
	CtxRole    = "role"
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and injects the principal into the request context.  Every
// request is verified independently against the server secret; no
// session is looked up.  Missing or unverifiable tokens are answered
// with 401.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

			claims, err := utils.VerifyAccessToken(raw, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			c.Set(CtxAdminID, claims.AdminID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}
