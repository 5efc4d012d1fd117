package quiz

import "testing"

func TestLexicalClassifier(t *testing.T) {
	testCases := []struct {
		question string
		want     string
	}{
		{"Define gravity", DifficultyEasy},
		{"What is an atom", DifficultyEasy},
		{"Name the planets", DifficultyEasy},
		{"Explain the process of photosynthesis and its importance in ecosystems", DifficultyMedium},
		{"Describe how gravitational force affects planetary motion and orbits", DifficultyMedium},
		{"Analyze the factors that influence climate patterns across different regions", DifficultyMedium},
	}

	var clf LexicalClassifier
	for _, tc := range testCases {
		t.Run(tc.question, func(t *testing.T) {
			label, confidence := clf.Classify(tc.question)
			if label != tc.want {
				t.Errorf("label = %q, want %q", label, tc.want)
			}
			if confidence <= 0 || confidence > 1 {
				t.Errorf("confidence = %v, want within (0, 1]", confidence)
			}
		})
	}
}

func TestLexicalClassifierDeterministic(t *testing.T) {
	var clf LexicalClassifier
	q := "Explain the concept of recursion in programming"

	label1, conf1 := clf.Classify(q)
	label2, conf2 := clf.Classify(q)
	if label1 != label2 || conf1 != conf2 {
		t.Errorf("classification is not deterministic: (%q, %v) vs (%q, %v)", label1, conf1, label2, conf2)
	}
}

func TestLexicalClassifierEmptyInput(t *testing.T) {
	var clf LexicalClassifier
	label, confidence := clf.Classify("   ")
	if label != DifficultyEasy {
		t.Errorf("empty question labeled %q, want Easy", label)
	}
	if confidence != 0.5 {
		t.Errorf("empty question confidence = %v, want 0.5", confidence)
	}
}
