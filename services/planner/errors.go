package planner

import "fmt"

// Error codes carried by PlanError.
const (
	CodeInvalidDayCount = "invalidDayCount"
	CodeInvalidHours    = "invalidHours"
)

// PlanError is a validation failure raised before any schedule arithmetic runs.
type PlanError struct {
	Code    string
	Message string
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidDayCountError(days int) error {
	return &PlanError{
		Code:    CodeInvalidDayCount,
		Message: fmt.Sprintf("day count must be at least 1, got %d", days),
	}
}

func NewInvalidHoursError(hours float64) error {
	return &PlanError{
		Code:    CodeInvalidHours,
		Message: fmt.Sprintf("total hours must be positive and finite, got %v", hours),
	}
}
