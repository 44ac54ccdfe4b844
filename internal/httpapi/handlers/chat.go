package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"interviewcraft/internal/common"
	"interviewcraft/internal/gen"
	"interviewcraft/internal/store/rabbitmq"
)

type createChatReq struct {
	JobTitle       string `json:"jobTitle" binding:"required,min=2,max=150"`
	JobDescription string `json:"jobDescription" binding:"required,min=20,max=12000"`
}

func (h *Handler) CreateChat(c *gin.Context) {
	uid, ok := userIDFromContext(c)
	if !ok {
		common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
		return
	}

	var req createChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid request body")
		return
	}

	chatRow, err := h.ChatSvc.CreateChat(c.Request.Context(), uid, req.JobTitle, req.JobDescription)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to create chat")
		return
	}

	h.publish(c, rabbitmq.Event{Type: rabbitmq.EventChatCreated, UserID: uid, ChatID: chatRow.ID})
	common.OK(c, chatRow)
}

func (h *Handler) ListChats(c *gin.Context) {
	uid, ok := userIDFromContext(c)
	if !ok {
		common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
		return
	}

	chats, err := h.ChatSvc.ListChats(c.Request.Context(), uid)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50002, "failed to list chats")
		return
	}

	common.OK(c, gin.H{"chats": chats})
}

func (h *Handler) GetChat(c *gin.Context) {
	uid, ok := userIDFromContext(c)
	if !ok {
		common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
		return
	}

	chatRow, err := h.ChatSvc.GetChat(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.Fail(c, http.StatusNotFound, 40404, "chat not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50003, "failed to fetch chat")
		return
	}

	common.OK(c, chatRow)
}

type sendMessageReq struct {
	Content string `json:"content" binding:"required,min=1,max=4000"`
}

func (h *Handler) SendMessage(c *gin.Context) {
	uid, ok := userIDFromContext(c)
	if !ok {
		common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
		return
	}

	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid request body")
		return
	}

	chatRow, err := h.ChatSvc.SendMessage(c.Request.Context(), uid, c.Param("id"), req.Content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.Fail(c, http.StatusNotFound, 40404, "chat not found")
			return
		}
		if isGenerationErr(err) {
			common.Fail(c, http.StatusBadGateway, 50201, "generation failed, please retry")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50004, "failed to send message")
		return
	}

	h.publish(c, rabbitmq.Event{Type: rabbitmq.EventTurnAppended, UserID: uid, ChatID: chatRow.ID})
	common.OK(c, chatRow)
}

// isGenerationErr reports whether the failure is a retryable model-side one,
// as opposed to not-found or an internal fault.
func isGenerationErr(err error) bool {
	return errors.Is(err, gen.ErrUnavailable) ||
		errors.Is(err, gen.ErrEmptyGeneration) ||
		errors.Is(err, gen.ErrMalformed) ||
		errors.Is(err, gen.ErrSchemaViolation)
}
