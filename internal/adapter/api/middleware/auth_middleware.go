package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"goldenwok/internal/infrastructure/token"
	"goldenwok/pkg/errors"
	"goldenwok/pkg/response"
)

const SessionCookieName = "jwt"

type AuthMiddleware struct {
	jwtService *token.JWTService
	blacklist  token.BlacklistStore
}

func NewAuthMiddleware(jwtService *token.JWTService, blacklist token.BlacklistStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		blacklist:  blacklist,
	}
}

// Authenticate verifies the session token from the Authorization header or
// the session cookie, rejects revoked tokens, and stores the caller's
// identity in the request context under "uid", "isAdmin" and "claims".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		if revoked, _ := m.blacklist.IsBlacklisted(c.Request().Context(), claims.ID); revoked {
			return response.Error(c, errors.Unauthorized("Session has been logged out", nil))
		}

		c.Set("uid", claims.UserID)
		c.Set("isAdmin", claims.IsAdmin)
		c.Set("claims", claims)

		return next(c)
	}
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}
