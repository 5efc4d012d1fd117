package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studypal/services/summary"
)

// SummaryHandler serves text summarization.
type SummaryHandler struct {
	Summary summary.SummaryService
}

func NewSummaryHandler(svc summary.SummaryService) *SummaryHandler {
	return &SummaryHandler{Summary: svc}
}

func (h *SummaryHandler) SummarizeHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text provided"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": h.Summary.Summarize(req.Text),
	})
}
