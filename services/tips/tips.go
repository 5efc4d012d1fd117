package tips

import (
	"sort"
	"strings"
	"unicode"

	"studypal/models"
)

// DefaultNumTips is the tip count the HTTP layer applies when a request
// omits it.
const DefaultNumTips = 3

var tipTemplates = map[string][]string{
	"Mathematics": {
		"Practice solving problems regularly to build problem-solving skills.",
		"Review key formulas and theorems daily to strengthen memory.",
		"Work through step-by-step solutions to understand the logic.",
		"Create flashcards for important concepts and definitions.",
		"Solve practice problems from different sources for variety.",
	},
	"Science": {
		"Create diagrams and visual representations of concepts.",
		"Conduct experiments or simulations to understand processes.",
		"Review scientific terminology and definitions regularly.",
		"Connect concepts to real-world applications and examples.",
		"Study the relationships between different scientific principles.",
	},
	"History": {
		"Create timelines to understand the sequence of events.",
		"Read primary sources to gain deeper understanding.",
		"Connect historical events to their causes and consequences.",
		"Discuss historical topics with peers to gain different perspectives.",
		"Review key dates and important figures regularly.",
	},
	"Literature": {
		"Read the text multiple times to catch subtle details.",
		"Take notes on character development and plot progression.",
		"Analyze literary devices and their effects on the narrative.",
		"Discuss themes and interpretations with others.",
		"Write summaries to reinforce your understanding.",
	},
	"Computer Science": {
		"Write code regularly to practice programming concepts.",
		"Debug code to understand how programs work.",
		"Study algorithms and their time complexity.",
		"Review documentation and best practices.",
		"Participate in coding challenges and competitions.",
	},
}

// TipsService generates study tips and light text analysis.
type TipsService interface {
	// GenerateTips returns up to numTips tips for a subject, in template
	// order. Unknown subjects fall back to the Mathematics tips.
	GenerateTips(subject string, numTips int) []string
	// ExtractKeywords returns the most frequent non-stopword tokens.
	ExtractKeywords(text string, numKeywords int) []string
	// AnalyzeText reports sentence/word statistics plus top keywords.
	AnalyzeText(text string) models.TextAnalysis
}

// DefaultTipsService is the production implementation.
type DefaultTipsService struct{}

func (s *DefaultTipsService) GenerateTips(subject string, numTips int) []string {
	templates, ok := tipTemplates[subject]
	if !ok {
		templates = tipTemplates["Mathematics"]
	}
	if numTips > len(templates) {
		numTips = len(templates)
	}
	if numTips < 0 {
		numTips = 0
	}

	selected := make([]string, numTips)
	copy(selected, templates[:numTips])
	return selected
}

func (s *DefaultTipsService) ExtractKeywords(text string, numKeywords int) []string {
	counts := make(map[string]int)
	var order []string
	for _, token := range words(text) {
		if stopwords[token] {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	// Sort by frequency, breaking ties by first appearance.
	firstSeen := make(map[string]int, len(order))
	for i, w := range order {
		firstSeen[w] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if numKeywords > len(order) {
		numKeywords = len(order)
	}
	if numKeywords < 0 {
		numKeywords = 0
	}
	return order[:numKeywords]
}

func (s *DefaultTipsService) AnalyzeText(text string) models.TextAnalysis {
	sentences := sentenceCount(text)
	tokens := words(text)

	unique := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		unique[t] = true
	}

	avg := 0.0
	if sentences > 0 {
		avg = float64(len(tokens)) / float64(sentences)
	}

	return models.TextAnalysis{
		TotalSentences:        sentences,
		TotalWords:            len(tokens),
		UniqueWords:           len(unique),
		AverageSentenceLength: avg,
		Keywords:              s.ExtractKeywords(text, 5),
	}
}

// words lowercases the text and splits it into alphabetic tokens.
func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func sentenceCount(text string) int {
	count := 0
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}
