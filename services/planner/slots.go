package planner

import (
	"fmt"
	"math"

	"studypal/models"
)

// DefaultStartHour is the hour of day the first study slot begins at.
const DefaultStartHour = 9

// Partition splits a fractional daily-hour budget into whole one-hour slots,
// sequential from startHour. Exactly floor(dailyHours) slots are produced;
// a fractional remainder below one hour is not represented. Slot labels are
// not clamped to a 24-hour clock, so a day budgeted past midnight keeps
// counting ("24:00 - 25:00").
func Partition(dailyHours float64, startHour int) []models.TimeSlot {
	n := 0
	if dailyHours > 0 {
		n = int(math.Floor(dailyHours))
	}

	slots := make([]models.TimeSlot, 0, n)
	for i := 0; i < n; i++ {
		start := startHour + i
		slots = append(slots, models.TimeSlot{
			Slot:     fmt.Sprintf("%d:00 - %d:00", start, start+1),
			Duration: "1 hour",
			Activity: fmt.Sprintf("Study session %d", i+1),
		})
	}
	return slots
}
