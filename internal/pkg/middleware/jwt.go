package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/veritasbank/veritas/internal/pkg/jwt"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. The user id
// claim is placed into the echo context under "user_id".
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, err := jwtpkg.ExtractUserID(claims)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			c.Set("user_id", userID)

			return next(c)
		}
	}
}

// OptionalJWTMiddleware resolves the user id when a valid bearer token is
// present and lets the request through otherwise. Handlers that tolerate
// unauthenticated callers use this instead of JWTAuthMiddleware.
func OptionalJWTMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return next(c)
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return next(c)
			}

			if userID, err := jwtpkg.ExtractUserID(claims); err == nil {
				c.Set("user_id", userID)
			}

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id or empty string
func UserIDFromContext(c echo.Context) string {
	if v := c.Get("user_id"); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
