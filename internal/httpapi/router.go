package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"interviewcraft/internal/common"
	"interviewcraft/internal/config"
	"interviewcraft/internal/httpapi/handlers"
	"interviewcraft/internal/httpapi/middleware"
	"interviewcraft/internal/ratelimit"
)

func NewRouter(cfg config.Config, h *handlers.Handler, authLimiter, insightsLimiter *ratelimit.SlidingWindowLimiter) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	origins := make([]string, 0)
	for _, o := range strings.Split(cfg.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	r.GET("/ping", h.Ping)

	api := r.Group("/api")

	authLimit := middleware.RateLimit(authLimiter, "auth")
	api.POST("/auth/register", authLimit, h.Register)
	api.POST("/auth/login", authLimit, h.Login)
	api.POST("/auth/logout", h.Logout)

	authed := api.Group("/")
	authed.Use(middleware.AuthRequired(cfg.JWTSecret))

	authed.GET("/auth/me", h.Me)

	authed.POST("/chats", h.CreateChat)
	authed.GET("/chats", h.ListChats)
	authed.GET("/chats/:id", h.GetChat)
	authed.POST("/chats/:id/messages", h.SendMessage)

	insights := authed.Group("/insights")
	insights.Use(middleware.RateLimit(insightsLimiter, "insights"))
	insights.POST("/job", h.JobInsights)
	insights.POST("/resume", h.ResumeFeedback)

	return r
}
