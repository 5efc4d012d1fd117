package planner

import (
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 11, 15, 30, 0, 0, time.UTC)
}

func TestGeneratePlanEndToEnd(t *testing.T) {
	svc := &DefaultPlannerService{Now: fixedClock}

	plan, err := svc.GeneratePlan("Mathematics", 10, "exam_prep", 5)
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}

	if plan.Subject != "Mathematics" || plan.TotalHours != 10 || plan.TotalDays != 5 {
		t.Errorf("unexpected plan header: %+v", plan)
	}
	if plan.Intensity != "high" || plan.Focus != "comprehensive review and practice" {
		t.Errorf("scenario metadata not copied: intensity=%q focus=%q", plan.Intensity, plan.Focus)
	}
	if plan.StartDate != "2024-03-11" {
		t.Errorf("start date = %q, want 2024-03-11", plan.StartDate)
	}

	if len(plan.Schedule) != 5 {
		t.Fatalf("expected 5 schedule entries, got %d", len(plan.Schedule))
	}
	for _, day := range plan.Schedule {
		if day.Hours != 2.0 {
			t.Errorf("day %d hours = %v, want 2.0", day.Day, day.Hours)
		}
		if len(day.TimeSlots) != 2 {
			t.Fatalf("day %d has %d slots, want 2", day.Day, len(day.TimeSlots))
		}
		if day.TimeSlots[0].Slot != "9:00 - 10:00" || day.TimeSlots[1].Slot != "10:00 - 11:00" {
			t.Errorf("day %d slot labels = %q, %q", day.Day, day.TimeSlots[0].Slot, day.TimeSlots[1].Slot)
		}
	}
}

func TestGeneratePlanUnknownScenario(t *testing.T) {
	svc := &DefaultPlannerService{Now: fixedClock}

	got, err := svc.GeneratePlan("Science", 5, "midterm_cram", 5)
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}
	want := LookupScenario(DefaultScenario)
	if got.Intensity != want.Intensity || got.Focus != want.Focus {
		t.Errorf("unknown scenario should carry exam_prep metadata, got intensity=%q focus=%q",
			got.Intensity, got.Focus)
	}
	// The requested key is preserved even though its metadata fell back.
	if got.Scenario != "midterm_cram" {
		t.Errorf("scenario key = %q, want midterm_cram", got.Scenario)
	}
}

func TestGeneratePlanPropagatesValidation(t *testing.T) {
	svc := &DefaultPlannerService{Now: fixedClock}

	if _, err := svc.GeneratePlan("Mathematics", 10, "exam_prep", 0); err == nil {
		t.Error("expected an error for days=0")
	}
	if _, err := svc.GeneratePlan("Mathematics", -3, "exam_prep", 5); err == nil {
		t.Error("expected an error for hours=-3")
	}
}
