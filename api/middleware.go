package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tadeyemo32/persona-backend/services"
)

// CORSMiddleware allows the Vite dev frontend to call the API directly.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// IdentityMiddleware resolves the caller identity. A valid Bearer token
// sets the token's user; anything else falls back to the stub identity,
// since the demo frontend only simulates login.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := services.StubUserID

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				if id, err := services.ValidateJWT(parts[1]); err == nil {
					userID = id
				} else {
					log.Debug().Err(err).Msg("ignoring invalid bearer token")
				}
			}
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// identityFromContext returns the caller identity set by IdentityMiddleware.
func identityFromContext(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	return services.StubUserID
}
