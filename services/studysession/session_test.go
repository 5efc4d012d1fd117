package studysession

import (
	"testing"
	"time"

	"studypal/services/content"
	"studypal/services/planner"
	"studypal/services/quiz"
	"studypal/services/resources"
	"studypal/services/summary"
	"studypal/services/tips"
	"studypal/utils"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 11, 15, 30, 0, 0, time.UTC)
}

func newTestService(t *testing.T) *DefaultSessionService {
	t.Helper()
	catalog, err := content.Load("")
	if err != nil {
		t.Fatalf("failed to load content catalog: %v", err)
	}
	return &DefaultSessionService{
		Planner:   &planner.DefaultPlannerService{Now: fixedClock},
		Quiz:      &quiz.DefaultQuizService{Classifier: quiz.LexicalClassifier{}, Rand: utils.NewRand(3)},
		Resources: &resources.DefaultResourceService{Content: catalog},
		Tips:      &tips.DefaultTipsService{},
		Summary:   &summary.DefaultSummaryService{},
		Now:       fixedClock,
	}
}

func TestFullSession(t *testing.T) {
	svc := newTestService(t)

	session, err := svc.FullSession("Science", 10, "exam_prep", 5, "")
	if err != nil {
		t.Fatalf("FullSession returned error: %v", err)
	}

	if session.Plan == nil || len(session.Plan.Schedule) != 5 {
		t.Fatalf("unexpected plan: %+v", session.Plan)
	}
	if len(session.Quiz) != 5 {
		t.Errorf("got %d quiz questions, want 5", len(session.Quiz))
	}
	if len(session.Resources) != 5 {
		t.Errorf("got %d resources, want 5", len(session.Resources))
	}
	if len(session.Tips) != 3 {
		t.Errorf("got %d tips, want 3", len(session.Tips))
	}
	if session.Summary != "" {
		t.Errorf("summary should be empty without input text, got %q", session.Summary)
	}
	if session.GeneratedAt != fixedClock().Format(time.RFC3339) {
		t.Errorf("generated_at = %q", session.GeneratedAt)
	}
}

func TestFullSessionWithText(t *testing.T) {
	svc := newTestService(t)

	session, err := svc.FullSession("Science", 5, "homework", 5,
		"Photosynthesis converts light into chemical energy.")
	if err != nil {
		t.Fatalf("FullSession returned error: %v", err)
	}
	if session.Summary == "" {
		t.Error("expected a summary when text is supplied")
	}
}

func TestFullSessionPropagatesPlanError(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.FullSession("Science", 10, "exam_prep", 0, ""); err == nil {
		t.Error("expected an error for days=0")
	}
}
