package resources

import (
	"strings"
	"testing"

	"studypal/services/content"
)

func newTestService(t *testing.T) *DefaultResourceService {
	t.Helper()
	catalog, err := content.Load("")
	if err != nil {
		t.Fatalf("failed to load content catalog: %v", err)
	}
	return &DefaultResourceService{Content: catalog}
}

func TestSuggestResources(t *testing.T) {
	svc := newTestService(t)

	links := svc.SuggestResources("Science")
	if len(links) != 5 {
		t.Fatalf("got %d links, want 5", len(links))
	}
	for _, link := range links {
		if !strings.HasPrefix(link, "https://") {
			t.Errorf("link %q is not https", link)
		}
	}
}

func TestSuggestResourcesUnknownSubjectFallsBack(t *testing.T) {
	svc := newTestService(t)

	unknown := svc.SuggestResources("Astrology")
	math := svc.SuggestResources("Mathematics")
	for i := range unknown {
		if unknown[i] != math[i] {
			t.Errorf("link %d = %q, want the Mathematics link %q", i, unknown[i], math[i])
		}
	}
}

func TestNearestSubject(t *testing.T) {
	svc := newTestService(t)

	testCases := []struct {
		name string
		text string
		want string
	}{
		{
			"photosynthesis maps to Science",
			"Chlorophyll captures light energy and photosynthesis produces oxygen and glucose",
			"Science",
		},
		{
			"algorithms map to Computer Science",
			"Sorting algorithms and data structures like linked lists and trees",
			"Computer Science",
		},
		{
			"equations map to Mathematics",
			"Solving quadratic equations by factoring or the quadratic formula",
			"Mathematics",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			subject, score := svc.NearestSubject(tc.text)
			if subject != tc.want {
				t.Errorf("NearestSubject = %q (score %v), want %q", subject, score, tc.want)
			}
			if score <= 0 || score > 1 {
				t.Errorf("score = %v, want within (0, 1]", score)
			}
		})
	}
}

func TestNearestSubjectEmptyText(t *testing.T) {
	svc := newTestService(t)

	subject, score := svc.NearestSubject("")
	if subject != "Mathematics" || score != 0 {
		t.Errorf("empty text = (%q, %v), want (Mathematics, 0)", subject, score)
	}
}
