package quiz

import (
	"strings"

	"studypal/models"
)

// The right answer is keyed off the question's leading word; everything else
// is a canned distractor.
var correctByLead = map[string]string{
	"What":     "A fundamental concept",
	"Explain":  "A detailed process",
	"Describe": "A comprehensive overview",
	"How":      "A step-by-step method",
}

var distractors = []string{
	"An incorrect interpretation",
	"A false assumption",
	"A common misconception",
}

// generateOptions shuffles the correct answer in among the distractors and
// records which letter it landed on.
func (s *DefaultQuizService) generateOptions(question string) models.QuizOptions {
	correct := "The correct answer"
	if fields := strings.Fields(question); len(fields) > 0 {
		if c, ok := correctByLead[fields[0]]; ok {
			correct = c
		}
	}

	options := make([]string, 0, 4)
	options = append(options, correct)
	options = append(options, distractors...)
	s.Rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIdx := 0
	for i, opt := range options {
		if opt == correct {
			correctIdx = i
			break
		}
	}

	return models.QuizOptions{
		A:       options[0],
		B:       options[1],
		C:       options[2],
		D:       options[3],
		Correct: string(rune('A' + correctIdx)),
	}
}
