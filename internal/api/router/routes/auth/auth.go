package auth

import (
	"net/http"
	"time"

	"DBDashboard/internal/pkg/config"
	"DBDashboard/internal/pkg/jwt"
	"DBDashboard/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthRegistrar registers authentication routes
type AuthRegistrar struct{}

// Register adds the login endpoint that issues JWT tokens
func (r *AuthRegistrar) Register(engine *gin.Engine, config *config.Config) error {
	authGroup := engine.Group("/api/auth")
	{
		authGroup.POST("/login", func(c *gin.Context) {
			var credentials struct {
				Username string `json:"username" binding:"required"`
				Password string `json:"password" binding:"required"`
			}

			if err := c.ShouldBindJSON(&credentials); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
				return
			}

			auth := config.API.Auth
			if credentials.Username != auth.User || credentials.Password != auth.Pass {
				logger.Warn("Failed authentication attempt",
					logger.String("username", credentials.Username),
					logger.String("ip", c.ClientIP()))

				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid credentials",
				})
				return
			}

			tokenExpiration := 24 * time.Hour
			if auth.JWTExpiration > 0 {
				tokenExpiration = time.Duration(auth.JWTExpiration) * time.Second
			}

			token, err := jwt.GenerateToken(credentials.Username, auth.JWTSecret, tokenExpiration)
			if err != nil {
				logger.Error("Failed to generate token", logger.Err(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"status":     "success",
				"token":      token,
				"expires_in": tokenExpiration.Seconds(),
			})
		})
	}

	return nil
}
