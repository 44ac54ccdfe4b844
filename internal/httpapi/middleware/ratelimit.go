package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"interviewcraft/internal/common"
	"interviewcraft/internal/ratelimit"
)

// RateLimit rejects requests over quota before they reach the handlers.
// Keys combine the client address with the route group, so each group gets an
// independent window. A nil limiter disables limiting (tests).
func RateLimit(limiter *ratelimit.SlidingWindowLimiter, group string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		key := group + ":" + c.ClientIP()
		if !limiter.Allow(c.Request.Context(), key) {
			common.Fail(c, http.StatusTooManyRequests, 42900, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
