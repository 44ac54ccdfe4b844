package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"interviewcraft/internal/common"
	"interviewcraft/internal/store/rabbitmq"
)

type jobInsightsReq struct {
	JobTitle       string `json:"jobTitle" binding:"required,min=2,max=150"`
	JobDescription string `json:"jobDescription" binding:"required,min=30,max=12000"`
}

func (h *Handler) JobInsights(c *gin.Context) {
	uid, ok := userIDFromContext(c)
	if !ok {
		common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
		return
	}

	var req jobInsightsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid request body")
		return
	}

	insights, err := h.Gen.JobInsights(c.Request.Context(), req.JobTitle, req.JobDescription)
	if err != nil {
		if isGenerationErr(err) {
			common.Fail(c, http.StatusBadGateway, 50201, "generation failed, please retry")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50005, "failed to generate job insights")
		return
	}

	h.publish(c, rabbitmq.Event{Type: rabbitmq.EventInsights, UserID: uid})
	common.OK(c, insights)
}

type resumeFeedbackReq struct {
	JobTitle       string `json:"jobTitle" binding:"required,min=2,max=150"`
	JobDescription string `json:"jobDescription" binding:"required,min=30,max=12000"`
	ResumeText     string `json:"resumeText" binding:"required,min=100,max=30000"`
}

func (h *Handler) ResumeFeedback(c *gin.Context) {
	uid, ok := userIDFromContext(c)
	if !ok {
		common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
		return
	}

	var req resumeFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid request body")
		return
	}

	feedback, err := h.Gen.ResumeFeedback(c.Request.Context(), req.JobTitle, req.JobDescription, req.ResumeText)
	if err != nil {
		if isGenerationErr(err) {
			common.Fail(c, http.StatusBadGateway, 50201, "generation failed, please retry")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50006, "failed to generate resume feedback")
		return
	}

	h.publish(c, rabbitmq.Event{Type: rabbitmq.EventResumeFeedback, UserID: uid})
	common.OK(c, feedback)
}
