package middleware

import (
	"net/http"
	"strings"

	"DBDashboard/internal/pkg/jwt"
	"DBDashboard/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// publicPaths never require a token
var publicPaths = map[string]bool{
	"/api/auth/login": true,
	"/":               true,
	"/health":         true,
	"/metrics":        true,
}

// JWTAuthMiddleware creates a middleware to validate JWT tokens
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		currentPath := c.Request.URL.Path
		if publicPaths[currentPath] {
			c.Next()
			return
		}

		var token string
		// Browsers cannot set headers on a WebSocket handshake
		if c.Request.Header.Get("Upgrade") == "websocket" {
			token = c.Query("token")
		}

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
				return
			}
			token = parts[1]
		}

		claims, err := jwt.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.Warn("Invalid JWT token",
				logger.Err(err),
				logger.String("path", currentPath))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
