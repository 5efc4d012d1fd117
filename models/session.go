package models

// StudySession bundles every generator's output for one subject in a single
// response.
type StudySession struct {
	Subject     string         `json:"subject"`
	Hours       float64        `json:"hours"`
	Days        int            `json:"days"`
	Scenario    string         `json:"scenario"`
	Plan        *StudyPlan     `json:"plan"`
	Quiz        []QuizQuestion `json:"quiz"`
	Resources   []string       `json:"resources"`
	Tips        []string       `json:"tips"`
	Summary     string         `json:"summary,omitempty"`
	GeneratedAt string         `json:"generated_at"` // RFC 3339
}
