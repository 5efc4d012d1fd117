package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"studypal/models"
	"studypal/services/planner"
	"studypal/utils"
)

// planRequest is the shared body for plan generation and download. Hours and
// Days are pointers so an omitted field can take its default while an
// explicit zero still reaches validation.
type planRequest struct {
	Subject  string   `json:"subject"`
	Hours    *float64 `json:"hours"`
	Scenario string   `json:"scenario"`
	Days     *int     `json:"days"`
}

func (r *planRequest) withDefaults() (subject string, hours float64, scenario string, days int) {
	subject = r.Subject
	if subject == "" {
		subject = planner.DefaultSubject
	}
	scenario = r.Scenario
	if scenario == "" {
		scenario = planner.DefaultScenario
	}
	hours = 5
	if r.Hours != nil {
		hours = *r.Hours
	}
	days = planner.DefaultDays
	if r.Days != nil {
		days = *r.Days
	}
	return subject, hours, scenario, days
}

// PlanHandler serves plan generation and export endpoints.
type PlanHandler struct {
	Planner  planner.PlannerService
	Cache    *redis.Client
	CacheTTL time.Duration
	Now      func() time.Time
}

func NewPlanHandler(svc planner.PlannerService, cache *redis.Client, ttl time.Duration) *PlanHandler {
	return &PlanHandler{Planner: svc, Cache: cache, CacheTTL: ttl}
}

func (h *PlanHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func planCacheKey(planID string) string {
	return "plan:" + planID
}

func respondPlanError(c *gin.Context, err error) {
	var planErr *planner.PlanError
	if errors.As(err, &planErr) {
		utils.JSONError(c, http.StatusBadRequest, "invalid plan request", planErr.Message)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "failed to generate plan", err.Error())
}

// GeneratePlanHandler builds a plan and caches it briefly so the caller can
// fetch the CSV export without regenerating.
func (h *PlanHandler) GeneratePlanHandler(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	subject, hours, scenario, days := req.withDefaults()

	plan, err := h.Planner.GeneratePlan(subject, hours, scenario, days)
	if err != nil {
		respondPlanError(c, err)
		return
	}

	planID := uuid.New().String()
	if h.Cache != nil {
		data, err := json.Marshal(plan)
		if err == nil {
			err = h.Cache.Set(c.Request.Context(), planCacheKey(planID), data, h.CacheTTL).Err()
		}
		if err != nil {
			getLogger(c).Warn("failed to cache plan for export", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"planId": planID,
		"plan":   plan,
	})
}

// DownloadPlanHandler builds a plan and streams it as a CSV attachment.
func (h *PlanHandler) DownloadPlanHandler(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	subject, hours, scenario, days := req.withDefaults()

	plan, err := h.Planner.GeneratePlan(subject, hours, scenario, days)
	if err != nil {
		respondPlanError(c, err)
		return
	}

	h.writeCSV(c, plan)
}

// ExportPlanHandler streams the CSV for a previously generated plan. Expired
// or unknown plan IDs yield 404.
func (h *PlanHandler) ExportPlanHandler(c *gin.Context) {
	planID := c.Param("planID")
	if h.Cache == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found or expired"})
		return
	}

	data, err := h.Cache.Get(c.Request.Context(), planCacheKey(planID)).Result()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found or expired"})
		return
	}

	var plan models.StudyPlan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to parse cached plan", err.Error())
		return
	}

	h.writeCSV(c, &plan)
}

func (h *PlanHandler) writeCSV(c *gin.Context, plan *models.StudyPlan) {
	filename := fmt.Sprintf("study_plan_%s_%s.csv",
		strings.ReplaceAll(plan.Subject, " ", "_"),
		h.now().Format("20060102_150405"))

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := planner.WriteCSV(c.Writer, plan); err != nil {
		getLogger(c).Error("failed to write plan CSV", zap.Error(err))
	}
}
