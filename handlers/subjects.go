package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studypal/services/content"
)

// SubjectsHandler serves the subject list from the content catalog.
type SubjectsHandler struct {
	Content *content.Catalog
}

func NewSubjectsHandler(catalog *content.Catalog) *SubjectsHandler {
	return &SubjectsHandler{Content: catalog}
}

func (h *SubjectsHandler) GetSubjectsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"subjects": h.Content.Subjects(),
	})
}
