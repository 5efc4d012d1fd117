package feedback

import (
	"fmt"
	"math/rand"
)

// Score bands and their motivational templates.
var feedbackTemplates = map[string][]string{
	"excellent": {
		"Excellent work! You are mastering this subject.",
		"Outstanding performance! Keep up the great work.",
		"Fantastic! You are showing excellent understanding.",
		"Superb! Your dedication is paying off.",
		"Brilliant! You are excelling in this area.",
	},
	"good": {
		"Good job! You are making solid progress.",
		"Nice work! You are on the right track.",
		"Well done! Keep practicing to improve further.",
		"Great effort! You are building strong foundations.",
		"Good progress! Continue your consistent work.",
	},
	"fair": {
		"Good attempt! Review the key concepts and try again.",
		"You are on the right path. Focus on the fundamentals.",
		"Nice try! Study the material more carefully.",
		"Keep practicing! Understanding will come with effort.",
		"Good start! Review and reinforce your learning.",
	},
	"needs_improvement": {
		"Keep trying! Every attempt helps you learn.",
		"Do not give up! Review the basics and practice more.",
		"You can do better! Focus on understanding the concepts.",
		"Do not worry! Learning takes time and practice.",
		"Keep going! With more effort, you will improve.",
	},
}

// FeedbackService produces motivational feedback for a score.
type FeedbackService interface {
	GenerateFeedback(score int, subject string) string
}

// DefaultFeedbackService is the production implementation with an injected
// template-selection source.
type DefaultFeedbackService struct {
	Rand *rand.Rand
}

// Category maps a score to its feedback band.
func Category(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "fair"
	default:
		return "needs_improvement"
	}
}

// GenerateFeedback picks a random template from the score's band and tags it
// with the subject.
func (s *DefaultFeedbackService) GenerateFeedback(score int, subject string) string {
	templates := feedbackTemplates[Category(score)]
	chosen := templates[s.Rand.Intn(len(templates))]
	return fmt.Sprintf("%s (%s)", chosen, subject)
}

// Templates exposes the band's template list, for callers that need to
// validate generated feedback.
func Templates(category string) []string {
	return feedbackTemplates[category]
}
