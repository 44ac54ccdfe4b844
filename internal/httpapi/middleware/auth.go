package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"interviewcraft/internal/auth"
	"interviewcraft/internal/common"
)

const UserIDKey = "auth.user_id"

// AuthRequired extracts and verifies the bearer token, attaching the trusted
// user id to the request context. Handlers never see raw credentials.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
			c.Abort()
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		uid, err := auth.ParseJWT(token, secret)
		if err != nil {
			common.Fail(c, http.StatusUnauthorized, 40102, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, uid)
		c.Next()
	}
}
