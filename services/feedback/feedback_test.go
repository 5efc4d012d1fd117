package feedback

import (
	"strings"
	"testing"

	"studypal/utils"
)

func TestCategoryBands(t *testing.T) {
	testCases := []struct {
		score int
		want  string
	}{
		{100, "excellent"},
		{80, "excellent"},
		{79, "good"},
		{60, "good"},
		{59, "fair"},
		{40, "fair"},
		{39, "needs_improvement"},
		{0, "needs_improvement"},
		{-5, "needs_improvement"},
	}

	for _, tc := range testCases {
		if got := Category(tc.score); got != tc.want {
			t.Errorf("Category(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestGenerateFeedbackComesFromBand(t *testing.T) {
	svc := &DefaultFeedbackService{Rand: utils.NewRand(1)}

	for _, score := range []int{95, 75, 55, 35} {
		got := svc.GenerateFeedback(score, "Mathematics")
		if !strings.HasSuffix(got, " (Mathematics)") {
			t.Errorf("feedback %q should be tagged with the subject", got)
		}

		message := strings.TrimSuffix(got, " (Mathematics)")
		found := false
		for _, tmpl := range Templates(Category(score)) {
			if tmpl == message {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("score %d produced %q, which is not in the %q band", score, message, Category(score))
		}
	}
}

func TestGenerateFeedbackReproducibleWithSeed(t *testing.T) {
	a := &DefaultFeedbackService{Rand: utils.NewRand(9)}
	b := &DefaultFeedbackService{Rand: utils.NewRand(9)}

	for i := 0; i < 10; i++ {
		if fa, fb := a.GenerateFeedback(70, "Science"), b.GenerateFeedback(70, "Science"); fa != fb {
			t.Fatalf("same seed produced different feedback: %q vs %q", fa, fb)
		}
	}
}
