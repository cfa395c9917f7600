package middleware

import (
	"net/http"
	"strings"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/pkg/auth"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
	IsAdminKey  = "is_admin"
)

// AuthService bundles what the middleware needs to resolve an identity.
type AuthService struct {
	JWT     *auth.JWTService
	Session *auth.SessionService
}

// AuthMiddleware authenticates via a bearer token or a session cookie.
func AuthMiddleware(authSvc *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := authSvc.JWT.Validate(tokenString)
			if err == nil {
				c.Set(UserIDKey, claims.UserID)
				c.Set(UsernameKey, claims.Username)
				c.Set(IsAdminKey, claims.IsAdmin)
				c.Next()
				return
			}
		}

		sessionID, err := c.Cookie("session_id")
		if err == nil && sessionID != "" {
			sessionData, err := authSvc.Session.Get(c.Request.Context(), sessionID)
			if err == nil && sessionData != nil {
				c.Set(UserIDKey, sessionData.UserID)
				c.Set(UsernameKey, sessionData.Username)
				c.Set(IsAdminKey, sessionData.IsAdmin)
				// Sliding expiration
				_ = authSvc.Session.Extend(c.Request.Context(), sessionID)
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		c.Abort()
	}
}

// RequireAdminMiddleware gates the admin surface. Runs after AuthMiddleware.
func RequireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get(IsAdminKey)
		if !exists || !isAdmin.(bool) {
			uid, _ := c.Get(UserIDKey)
			log.WithField("user_id", uid).Warn("admin access denied")
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
