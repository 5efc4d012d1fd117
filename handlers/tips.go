package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studypal/services/planner"
	"studypal/services/tips"
)

// TipsHandler serves study tips and text analysis.
type TipsHandler struct {
	Tips tips.TipsService
}

func NewTipsHandler(svc tips.TipsService) *TipsHandler {
	return &TipsHandler{Tips: svc}
}

func (h *TipsHandler) GetTipsHandler(c *gin.Context) {
	var req struct {
		Subject string `json:"subject"`
		NumTips *int   `json:"num_tips"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = planner.DefaultSubject
	}
	numTips := tips.DefaultNumTips
	if req.NumTips != nil {
		numTips = *req.NumTips
	}

	c.JSON(http.StatusOK, gin.H{
		"tips": h.Tips.GenerateTips(subject, numTips),
	})
}

func (h *TipsHandler) AnalyzeTextHandler(c *gin.Context) {
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

	c.JSON(http.StatusOK, h.Tips.AnalyzeText(req.Text))
}
