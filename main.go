// File: studypal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studypal/config"
	"studypal/handlers"
	"studypal/middleware"
	"studypal/routes"
	"studypal/services/content"
	"studypal/services/feedback"
	"studypal/services/planner"
	"studypal/services/quiz"
	"studypal/services/resources"
	"studypal/services/studysession"
	"studypal/services/summary"
	"studypal/services/tips"
	"studypal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()

	contentCatalog, err := content.Load(config.AppConfig.ContentPath)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load content catalog: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Services, constructed once and handed to handlers by reference.
	rng := utils.NewTimeSeededRand()

	plannerService := &planner.DefaultPlannerService{
		Now: time.Now,
	}
	quizService := &quiz.DefaultQuizService{
		Classifier: quiz.LexicalClassifier{},
		Rand:       rng,
	}
	resourceService := &resources.DefaultResourceService{
		Content: contentCatalog,
	}
	summaryService := &summary.DefaultSummaryService{}
	feedbackService := &feedback.DefaultFeedbackService{
		Rand: rng,
	}
	tipsService := &tips.DefaultTipsService{}
	sessionService := &studysession.DefaultSessionService{
		Planner:   plannerService,
		Quiz:      quizService,
		Resources: resourceService,
		Tips:      tipsService,
		Summary:   summaryService,
		Now:       time.Now,
	}

	planCacheTTL := time.Duration(config.AppConfig.PlanCacheTTLMin) * time.Minute
	planHandler := handlers.NewPlanHandler(plannerService, utils.GetCacheClient(), planCacheTTL)
	quizHandler := handlers.NewQuizHandler(quizService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	tipsHandler := handlers.NewTipsHandler(tipsService)
	resourcesHandler := handlers.NewResourcesHandler(resourceService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	subjectsHandler := handlers.NewSubjectsHandler(contentCatalog)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Plan endpoints.
		GeneratePlanHandler: planHandler.GeneratePlanHandler,
		DownloadPlanHandler: planHandler.DownloadPlanHandler,
		ExportPlanHandler:   planHandler.ExportPlanHandler,

		// Generator endpoints.
		GenerateQuizHandler: quizHandler.GenerateQuizHandler,
		SummarizeHandler:    summaryHandler.SummarizeHandler,
		GetFeedbackHandler:  feedbackHandler.GetFeedbackHandler,
		GetTipsHandler:      tipsHandler.GetTipsHandler,
		GetResourcesHandler: resourcesHandler.GetResourcesHandler,
		AnalyzeTextHandler:  tipsHandler.AnalyzeTextHandler,

		// Aggregate and catalog endpoints.
		FullStudySessionHandler: sessionHandler.FullStudySessionHandler,
		GetSubjectsHandler:      subjectsHandler.GetSubjectsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
