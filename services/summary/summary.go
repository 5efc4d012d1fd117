package summary

import (
	"sort"
	"strings"
)

// DefaultCompressionRatio controls what fraction of sentences survives
// summarization.
const DefaultCompressionRatio = 0.3

// SummaryService produces extractive summaries.
type SummaryService interface {
	Summarize(text string) string
}

// DefaultSummaryService keeps the first sentence, the last sentence, and
// evenly strided sentences in between. Ratio falls back to
// DefaultCompressionRatio when zero.
type DefaultSummaryService struct {
	Ratio float64
}

func (s *DefaultSummaryService) Summarize(text string) string {
	ratio := s.Ratio
	if ratio <= 0 {
		ratio = DefaultCompressionRatio
	}

	var sentences []string
	for _, part := range strings.Split(text, ".") {
		if part = strings.TrimSpace(part); part != "" {
			sentences = append(sentences, part)
		}
	}
	if len(sentences) == 0 {
		return ""
	}

	keep := int(float64(len(sentences)) * ratio)
	if keep < 1 {
		keep = 1
	}
	if len(sentences) <= keep {
		return strings.Join(sentences, ". ") + "."
	}

	selected := map[int]bool{0: true}
	if keep > 1 {
		selected[len(sentences)-1] = true
	}
	if keep > 2 {
		stride := len(sentences) / (keep - 2)
		if stride < 1 {
			stride = 1
		}
		for i := 1; i < len(sentences)-1; i += stride {
			selected[i] = true
		}
	}

	indices := make([]int, 0, len(selected))
	for i := range selected {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	if len(indices) > keep {
		// Keep the first and last; trim the middle picks that overflowed.
		trimmed := indices[:keep-1]
		trimmed = append(trimmed, indices[len(indices)-1])
		indices = trimmed
	}

	picked := make([]string, 0, len(indices))
	for _, i := range indices {
		picked = append(picked, sentences[i])
	}
	return strings.Join(picked, ". ") + "."
}
