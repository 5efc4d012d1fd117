package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studypal/services/planner"
	"studypal/services/resources"
)

// ResourcesHandler serves resource suggestions.
type ResourcesHandler struct {
	Resources resources.ResourceService
}

func NewResourcesHandler(svc resources.ResourceService) *ResourcesHandler {
	return &ResourcesHandler{Resources: svc}
}

// GetResourcesHandler suggests links for a subject. When the subject is
// omitted but free text is supplied, the closest subject in the content
// corpus is used instead.
func (h *ResourcesHandler) GetResourcesHandler(c *gin.Context) {
	var req struct {
		Subject string `json:"subject"`
		Text    string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	subject := req.Subject
	resp := gin.H{}
	if subject == "" && req.Text != "" {
		matched, score := h.Resources.NearestSubject(req.Text)
		subject = matched
		resp["matched_subject"] = matched
		resp["match_score"] = score
	}
	if subject == "" {
		subject = planner.DefaultSubject
	}

	resp["resources"] = h.Resources.SuggestResources(subject)
	c.JSON(http.StatusOK, resp)
}
