package middlewares

import (
	"log/slog"
	"net/http"
	"strings"

	"civicreporter/models"
	authUtils "civicreporter/utils"

	"github.com/gin-gonic/gin"
)

// AuthCookieName carries the admin token for browser clients.
const AuthCookieName = "auth_token"

// SessionKey is the gin context key of the authenticated session.
const SessionKey = "session"

// SessionSource exposes the active admin session.
type SessionSource interface {
	CurrentSession() (models.Session, bool)
}

// AdminOnly admits requests whose token belongs to the active admin session.
func AdminOnly(sessions SessionSource, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		claimed, err := authUtils.ParseToken(tokenString, jwtSecret)
		if err != nil {
			slog.InfoContext(c.Request.Context(), "token validation failed", "error", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		current, ok := sessions.CurrentSession()
		if !ok || current.ID != claimed.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin session is not active"})
			c.Abort()
			return
		}
		if !current.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Set(SessionKey, current)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if authHeader := c.Request.Header.Get("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}
