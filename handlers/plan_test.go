package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"studypal/services/planner"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 11, 15, 30, 0, 0, time.UTC)
}

func newPlanRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	// No cache client: generation still works, only the export-by-ID flow
	// degrades to 404.
	h := &PlanHandler{
		Planner: &planner.DefaultPlannerService{Now: fixedClock},
		Now:     fixedClock,
	}

	r := gin.New()
	r.POST("/api/generate-plan", h.GeneratePlanHandler)
	r.POST("/api/download-plan", h.DownloadPlanHandler)
	r.GET("/api/plans/:planID/export", h.ExportPlanHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGeneratePlanHandler(t *testing.T) {
	r := newPlanRouter()

	w := postJSON(t, r, "/api/generate-plan",
		`{"subject": "Mathematics", "hours": 10, "scenario": "exam_prep", "days": 5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		PlanID string `json:"planId"`
		Plan   struct {
			StartDate string `json:"start_date"`
			Schedule  []struct {
				Hours     float64 `json:"hours"`
				TimeSlots []struct {
					Slot string `json:"slot"`
				} `json:"time_slots"`
			} `json:"schedule"`
		} `json:"plan"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.PlanID == "" {
		t.Error("expected a planId in the response")
	}
	if resp.Plan.StartDate != "2024-03-11" {
		t.Errorf("start_date = %q", resp.Plan.StartDate)
	}
	if len(resp.Plan.Schedule) != 5 {
		t.Fatalf("got %d schedule entries, want 5", len(resp.Plan.Schedule))
	}
	if resp.Plan.Schedule[0].Hours != 2.0 || len(resp.Plan.Schedule[0].TimeSlots) != 2 {
		t.Errorf("unexpected first day: %+v", resp.Plan.Schedule[0])
	}
}

func TestGeneratePlanHandlerDefaults(t *testing.T) {
	r := newPlanRouter()

	w := postJSON(t, r, "/api/generate-plan", `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Plan struct {
			Subject   string  `json:"subject"`
			TotalDays int     `json:"total_days"`
			Hours     float64 `json:"total_hours"`
			Scenario  string  `json:"scenario"`
		} `json:"plan"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Plan.Subject != "Mathematics" || resp.Plan.Scenario != "exam_prep" {
		t.Errorf("defaults not applied: %+v", resp.Plan)
	}
	if resp.Plan.TotalDays != 5 || resp.Plan.Hours != 5 {
		t.Errorf("numeric defaults not applied: %+v", resp.Plan)
	}
}

func TestGeneratePlanHandlerRejectsBadInput(t *testing.T) {
	r := newPlanRouter()

	testCases := []struct {
		name string
		body string
	}{
		{"zero days", `{"subject": "Mathematics", "hours": 10, "days": 0}`},
		{"negative hours", `{"subject": "Mathematics", "hours": -3, "days": 5}`},
		{"malformed json", `{"subject": `},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/generate-plan", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestDownloadPlanHandlerStreamsCSV(t *testing.T) {
	r := newPlanRouter()

	w := postJSON(t, r, "/api/download-plan",
		`{"subject": "Computer Science", "hours": 10, "scenario": "project", "days": 5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "study_plan_Computer_Science_") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	// Header + 5 days x 2 slots.
	if len(lines) != 11 {
		t.Errorf("got %d CSV lines, want 11", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Date,Day,Time,Activity,Duration,Subject,Scenario") {
		t.Errorf("unexpected header line %q", lines[0])
	}
}

func TestExportPlanHandlerMissingPlan(t *testing.T) {
	r := newPlanRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/plans/unknown-id/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
