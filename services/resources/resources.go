package resources

import (
	"strings"

	"studypal/services/content"
)

var resourceLinks = map[string][]string{
	"Mathematics": {
		"https://www.khanacademy.org/math",
		"https://www.mathway.com",
		"https://www.wolframalpha.com",
		"https://www.desmos.com/calculator",
		"https://www.brilliant.org/courses/algebra/",
	},
	"Science": {
		"https://www.khanacademy.org/science",
		"https://www.sciencedaily.com",
		"https://www.nasa.gov",
		"https://www.nature.com",
		"https://www.sciencenews.org",
	},
	"History": {
		"https://www.history.com",
		"https://www.britannica.com",
		"https://www.historytoday.com",
		"https://www.bbc.com/history",
		"https://www.nationalgeographic.com/history",
	},
	"Literature": {
		"https://www.goodreads.com",
		"https://www.sparknotes.com",
		"https://www.cliffsnotes.com",
		"https://www.litcharts.com",
		"https://www.poetryfoundation.org",
	},
	"Computer Science": {
		"https://www.codecademy.com",
		"https://www.coursera.org/courses?query=computer%20science",
		"https://www.github.com",
		"https://www.stackoverflow.com",
		"https://www.udemy.com/courses/search/?q=programming",
	},
}

// ResourceService suggests study resources per subject.
type ResourceService interface {
	// SuggestResources returns the link list for a subject, falling back to
	// Mathematics for unknown subjects.
	SuggestResources(subject string) []string
	// NearestSubject labels free text with the closest subject in the content
	// corpus and a score in [0, 1].
	NearestSubject(text string) (string, float64)
}

// DefaultResourceService scores free text against the content corpus; the
// link catalog itself is static.
type DefaultResourceService struct {
	Content *content.Catalog
}

func (s *DefaultResourceService) SuggestResources(subject string) []string {
	if links, ok := resourceLinks[subject]; ok {
		return links
	}
	return resourceLinks["Mathematics"]
}

// NearestSubject tokenizes the text and picks the subject whose corpus
// passages share the largest fraction of its tokens.
func (s *DefaultResourceService) NearestSubject(text string) (string, float64) {
	tokens := tokenize(text)
	if len(tokens) == 0 || s.Content == nil {
		return "Mathematics", 0
	}

	bestSubject := "Mathematics"
	bestScore := 0.0
	for _, subject := range s.Content.Subjects() {
		vocab := make(map[string]bool)
		for _, t := range s.Content.TextsFor(subject) {
			for _, w := range tokenize(t.Text) {
				vocab[w] = true
			}
		}

		matched := 0
		for _, w := range tokens {
			if vocab[w] {
				matched++
			}
		}
		score := float64(matched) / float64(len(tokens))
		if score > bestScore {
			bestScore = score
			bestSubject = subject
		}
	}
	return bestSubject, bestScore
}

func tokenize(text string) []string {
	var tokens []string
	for _, f := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if len(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
