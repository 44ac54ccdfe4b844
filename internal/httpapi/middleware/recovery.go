package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"interviewcraft/internal/common"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic recovered: %v path=%s", rec, c.FullPath())
				common.Fail(c, http.StatusInternalServerError, 50000, "internal error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
