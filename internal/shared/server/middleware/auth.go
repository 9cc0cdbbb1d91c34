package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"churn-backend/internal/shared/server/respond"
)

const userIDKey = "userId"

// Identity binds the caller identity supplied by the upstream session layer.
// Authentication itself happens in front of this service; requests arrive
// with an X-User-Id header set by the gateway. In dev-like environments an
// absent header falls back to a fixed local identity so the API is usable
// without the gateway.
func Identity(env string) gin.HandlerFunc {
	devLike := env == "dev" || env == "local"
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		userID := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if userID == "" {
			if !devLike {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
				return
			}
			userID = "local-dev"
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
