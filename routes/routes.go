package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"studypal/handlers"
)

// RegisterPlanRoutes registers study-plan endpoints.
func RegisterPlanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/generate-plan", hb.GeneratePlanHandler)
		api.POST("/download-plan", hb.DownloadPlanHandler)
		api.GET("/plans/:planID/export", hb.ExportPlanHandler)
	}
}

// RegisterGeneratorRoutes registers the content-generator endpoints.
func RegisterGeneratorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/generate-quiz", hb.GenerateQuizHandler)
		api.POST("/summarize", hb.SummarizeHandler)
		api.POST("/get-feedback", hb.GetFeedbackHandler)
		api.POST("/get-tips", hb.GetTipsHandler)
		api.POST("/get-resources", hb.GetResourcesHandler)
		api.POST("/analyze-text", hb.AnalyzeTextHandler)
		api.POST("/full-study-session", hb.FullStudySessionHandler)
	}
}

// RegisterCatalogRoutes registers catalog lookups.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/subjects", hb.GetSubjectsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Study Pal"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	RegisterPlanRoutes(r, hb)
	RegisterGeneratorRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
}
