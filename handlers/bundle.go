package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Plan endpoints.
	GeneratePlanHandler gin.HandlerFunc
	DownloadPlanHandler gin.HandlerFunc
	ExportPlanHandler   gin.HandlerFunc

	// Generator endpoints.
	GenerateQuizHandler gin.HandlerFunc
	SummarizeHandler    gin.HandlerFunc
	GetFeedbackHandler  gin.HandlerFunc
	GetTipsHandler      gin.HandlerFunc
	GetResourcesHandler gin.HandlerFunc
	AnalyzeTextHandler  gin.HandlerFunc

	// Aggregate and catalog endpoints.
	FullStudySessionHandler gin.HandlerFunc
	GetSubjectsHandler      gin.HandlerFunc
}
