package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studypal/services/studysession"
)

// SessionHandler serves the combined study-session endpoint.
type SessionHandler struct {
	Sessions studysession.SessionService
}

func NewSessionHandler(svc studysession.SessionService) *SessionHandler {
	return &SessionHandler{Sessions: svc}
}

func (h *SessionHandler) FullStudySessionHandler(c *gin.Context) {
	var req struct {
		planRequest
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	subject, hours, scenario, days := req.withDefaults()

	session, err := h.Sessions.FullSession(subject, hours, scenario, days, req.Text)
	if err != nil {
		respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}
