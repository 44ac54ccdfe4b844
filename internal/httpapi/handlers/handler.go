package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"interviewcraft/internal/chat"
	"interviewcraft/internal/common"
	"interviewcraft/internal/config"
	"interviewcraft/internal/gen"
	"interviewcraft/internal/httpapi/middleware"
	"interviewcraft/internal/store/rabbitmq"
)

type Handler struct {
	DB      *gorm.DB
	Cfg     config.Config
	ChatSvc *chat.Service
	Gen     *gen.Service
	Events  *rabbitmq.Publisher
}

func NewHandler(db *gorm.DB, cfg config.Config, chatSvc *chat.Service, genSvc *gen.Service, events *rabbitmq.Publisher) *Handler {
	return &Handler{DB: db, Cfg: cfg, ChatSvc: chatSvc, Gen: genSvc, Events: events}
}

func (h *Handler) Ping(c *gin.Context) {
	common.OK(c, gin.H{"status": "up"})
}

func userIDFromContext(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(middleware.UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// publish emits a domain event best-effort; a broker problem is log noise,
// never a request failure.
func (h *Handler) publish(c *gin.Context, ev rabbitmq.Event) {
	if h.Events == nil {
		return
	}
	if err := h.Events.Publish(c.Request.Context(), ev); err != nil {
		log.Printf("events: publish %s failed: %v", ev.Type, err)
	}
}
