package planner

import "studypal/models"

// DefaultScenario is resolved whenever a caller supplies an unknown scenario key.
const DefaultScenario = "exam_prep"

// DefaultSubject backs unknown-subject lookups in the activity catalog.
const DefaultSubject = "Mathematics"

var scenarios = map[string]models.ScenarioInfo{
	"exam_prep": {
		Intensity: "high",
		Focus:     "comprehensive review and practice",
		Frequency: "daily",
	},
	"homework": {
		Intensity: "medium",
		Focus:     "specific topics and problem-solving",
		Frequency: "as needed",
	},
	"project": {
		Intensity: "medium",
		Focus:     "research and application",
		Frequency: "regular",
	},
}

// LookupScenario resolves a scenario key to its metadata. Unknown keys
// resolve to the exam_prep entry; callers must not rely on an error to
// detect bad scenario names.
func LookupScenario(key string) models.ScenarioInfo {
	if info, ok := scenarios[key]; ok {
		return info
	}
	return scenarios[DefaultScenario]
}

// Each subject carries five activities forming a canonical study progression:
// review, practice, challenge, assessment, consolidation.
var activities = map[string][]string{
	"Mathematics": {
		"Review fundamental concepts",
		"Solve practice problems",
		"Work on challenging topics",
		"Complete practice tests",
		"Review mistakes and reinforce",
	},
	"Science": {
		"Read and understand concepts",
		"Create visual diagrams",
		"Conduct experiments or simulations",
		"Solve application problems",
		"Review and consolidate learning",
	},
	"History": {
		"Read historical context",
		"Create timelines",
		"Analyze primary sources",
		"Connect events and causes",
		"Review key dates and figures",
	},
	"Literature": {
		"Read assigned texts",
		"Analyze themes and characters",
		"Study literary devices",
		"Write analysis essays",
		"Discuss and review",
	},
	"Computer Science": {
		"Study algorithms and concepts",
		"Write and test code",
		"Debug and optimize",
		"Solve coding problems",
		"Review best practices",
	},
}

// ActivitiesFor returns the ordered activity progression for a subject,
// falling back to the Mathematics list for unknown subjects.
func ActivitiesFor(subject string) []string {
	if list, ok := activities[subject]; ok {
		return list
	}
	return activities[DefaultSubject]
}

// ActivityForDay cycles through a subject's activities by 1-based day index,
// so a plan longer than the progression wraps around rather than running out.
func ActivityForDay(subject string, day int) string {
	list := ActivitiesFor(subject)
	return list[(day-1)%len(list)]
}
