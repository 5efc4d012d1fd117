package planner

import (
	"time"

	"studypal/models"
)

// DefaultDays is the day count the HTTP layer applies when a request omits it.
const DefaultDays = 5

// PlannerService defines business logic for study plan generation.
type PlannerService interface {
	// GeneratePlan builds a fresh plan document. Unknown subjects and
	// scenarios resolve to their documented defaults; non-positive days or
	// hours fail with a PlanError.
	GeneratePlan(subject string, hours float64, scenario string, days int) (*models.StudyPlan, error)
}

// DefaultPlannerService is the production implementation. Now supplies the
// reference date so generation is deterministic under test; when nil, the
// system clock is used.
type DefaultPlannerService struct {
	Now func() time.Time
}

func (s *DefaultPlannerService) anchor() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GeneratePlan resolves the scenario metadata, builds the per-day schedule
// and assembles the plan record. StartDate carries no time component.
func (s *DefaultPlannerService) GeneratePlan(subject string, hours float64, scenario string, days int) (*models.StudyPlan, error) {
	anchor := s.anchor()

	schedule, err := BuildSchedule(subject, hours, days, anchor)
	if err != nil {
		return nil, err
	}

	info := LookupScenario(scenario)
	return &models.StudyPlan{
		Subject:    subject,
		TotalHours: hours,
		TotalDays:  days,
		Scenario:   scenario,
		Intensity:  info.Intensity,
		Focus:      info.Focus,
		StartDate:  anchor.Format(dateLayout),
		Schedule:   schedule,
	}, nil
}
