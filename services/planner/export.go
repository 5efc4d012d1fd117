package planner

import (
	"encoding/csv"
	"fmt"
	"io"

	"studypal/models"
)

// exportHeader is the column order of the downloadable plan table.
var exportHeader = []string{"Date", "Day", "Time", "Activity", "Duration", "Subject", "Scenario"}

// FlattenPlan denormalizes a plan into one row per (day, time slot) pair.
// A day with no full-hour slots contributes no rows.
func FlattenPlan(plan *models.StudyPlan) []models.ExportRow {
	var rows []models.ExportRow
	for _, day := range plan.Schedule {
		for _, slot := range day.TimeSlots {
			rows = append(rows, models.ExportRow{
				Date:     day.Date,
				Day:      fmt.Sprintf("Day %d", day.Day),
				Time:     slot.Slot,
				Activity: day.Activity,
				Duration: slot.Duration,
				Subject:  plan.Subject,
				Scenario: plan.Scenario,
			})
		}
	}
	return rows
}

// WriteCSV writes the flattened plan to w, header row first.
func WriteCSV(w io.Writer, plan *models.StudyPlan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range FlattenPlan(plan) {
		record := []string{r.Date, r.Day, r.Time, r.Activity, r.Duration, r.Subject, r.Scenario}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
