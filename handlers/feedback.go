package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studypal/services/feedback"
)

// FeedbackHandler serves motivational feedback.
type FeedbackHandler struct {
	Feedback feedback.FeedbackService
}

func NewFeedbackHandler(svc feedback.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Feedback: svc}
}

func (h *FeedbackHandler) GetFeedbackHandler(c *gin.Context) {
	var req struct {
		Score   *int   `json:"score"`
		Subject string `json:"subject"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	score := 50
	if req.Score != nil {
		score = *req.Score
	}
	subject := req.Subject
	if subject == "" {
		subject = "General"
	}

	c.JSON(http.StatusOK, gin.H{
		"feedback": h.Feedback.GenerateFeedback(score, subject),
	})
}
