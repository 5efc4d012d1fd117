package quiz

import (
	"math"
	"strings"
)

// Difficulty labels produced by the classifier.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyMixed  = "Mixed"
)

// DifficultyClassifier labels a question with a difficulty and a confidence
// score in (0, 1]. Implementations stand in for the trained difficulty model.
type DifficultyClassifier interface {
	Classify(question string) (label string, confidence float64)
}

// LexicalClassifier is the default classifier. It reproduces what the trained
// model actually learned from its corpus: short definition-style prompts are
// Easy, longer discussion prompts are Medium.
type LexicalClassifier struct{}

var mediumCues = map[string]bool{
	"explain":  true,
	"describe": true,
	"discuss":  true,
	"analyze":  true,
}

var easyCues = map[string]bool{
	"what":   true,
	"define": true,
	"name":   true,
}

// Classify scores a question by its leading cue word and length and maps the
// score through a logistic curve for the confidence value.
func (LexicalClassifier) Classify(question string) (string, float64) {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(question)))
	if len(words) == 0 {
		return DifficultyEasy, 0.5
	}

	// Positive score reads as Medium, negative as Easy.
	score := 0.4 * float64(len(words)-6)
	if mediumCues[words[0]] {
		score += 1.5
	}
	if easyCues[words[0]] {
		score -= 1.5
	}

	confidence := 1.0 / (1.0 + math.Exp(-math.Abs(score)))
	if confidence > 0.99 {
		confidence = 0.99
	}

	if score > 0 {
		return DifficultyMedium, confidence
	}
	return DifficultyEasy, confidence
}
