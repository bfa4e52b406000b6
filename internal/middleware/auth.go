package middleware

import (
	"strings"

	"quizhub_backend/internal/config"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the acting user from the session token. The token
// travels in the "token" cookie set by login; an Authorization bearer header
// is accepted as a fallback for non-browser clients.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := c.Cookie("token")

		if tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
