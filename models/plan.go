package models

// ScenarioInfo describes how a study scenario shapes a plan.
type ScenarioInfo struct {
	Intensity string `json:"intensity"` // "high" or "medium"
	Focus     string `json:"focus"`
	Frequency string `json:"frequency"`
}

// TimeSlot is a single one-hour block within a day's schedule.
type TimeSlot struct {
	Slot     string `json:"slot"`     // e.g., "9:00 - 10:00"
	Duration string `json:"duration"` // always "1 hour"
	Activity string `json:"activity"` // e.g., "Study session 1"
}

// DaySchedule is one calendar day of a study plan. Day and Date are derived
// from the plan's anchor date, never set independently.
type DaySchedule struct {
	Day       int        `json:"day"`  // 1-based index into the plan
	Date      string     `json:"date"` // YYYY-MM-DD
	Hours     float64    `json:"hours"`
	Activity  string     `json:"activities"`
	TimeSlots []TimeSlot `json:"time_slots"`
}

// StudyPlan is the full plan document returned to the caller. It is built
// fresh per request and never persisted.
type StudyPlan struct {
	Subject    string        `json:"subject"`
	TotalHours float64       `json:"total_hours"`
	TotalDays  int           `json:"total_days"`
	Scenario   string        `json:"scenario"`
	Intensity  string        `json:"intensity"`
	Focus      string        `json:"focus"`
	StartDate  string        `json:"start_date"` // YYYY-MM-DD, date of creation
	Schedule   []DaySchedule `json:"schedule"`
}

// ExportRow is one denormalized (day, time slot) pair used for tabular export.
type ExportRow struct {
	Date     string `json:"Date"`
	Day      string `json:"Day"` // "Day N"
	Time     string `json:"Time"`
	Activity string `json:"Activity"`
	Duration string `json:"Duration"`
	Subject  string `json:"Subject"`
	Scenario string `json:"Scenario"`
}
