package planner

import (
	"math"
	"time"

	"studypal/models"
)

const dateLayout = "2006-01-02"

// BuildSchedule produces one DaySchedule per day, spreading the hour budget
// evenly. The anchor date is captured once before the loop, so every day in
// a single build shares the same "today" even if the call spans midnight.
func BuildSchedule(subject string, hours float64, days int, anchor time.Time) ([]models.DaySchedule, error) {
	if days <= 0 {
		return nil, NewInvalidDayCountError(days)
	}
	// The comparison also rejects NaN.
	if !(hours > 0) || math.IsInf(hours, 0) {
		return nil, NewInvalidHoursError(hours)
	}

	dailyHours := hours / float64(days)
	displayHours := math.Round(dailyHours*10) / 10

	schedule := make([]models.DaySchedule, 0, days)
	for d := 1; d <= days; d++ {
		date := anchor.AddDate(0, 0, d-1)
		schedule = append(schedule, models.DaySchedule{
			Day:       d,
			Date:      date.Format(dateLayout),
			Hours:     displayHours,
			Activity:  ActivityForDay(subject, d),
			TimeSlots: Partition(dailyHours, DefaultStartHour),
		})
	}
	return schedule, nil
}
