package studysession

import (
	"time"

	"studypal/models"
	"studypal/services/planner"
	"studypal/services/quiz"
	"studypal/services/resources"
	"studypal/services/summary"
	"studypal/services/tips"
)

// SessionService assembles a complete study session in one call.
type SessionService interface {
	// FullSession builds a plan plus quiz, resources and tips; when text is
	// non-empty a summary is included as well.
	FullSession(subject string, hours float64, scenario string, days int, text string) (*models.StudySession, error)
}

// DefaultSessionService fans one request out to every generator.
type DefaultSessionService struct {
	Planner   planner.PlannerService
	Quiz      quiz.QuizService
	Resources resources.ResourceService
	Tips      tips.TipsService
	Summary   summary.SummaryService
	Now       func() time.Time
}

func (s *DefaultSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultSessionService) FullSession(subject string, hours float64, scenario string, days int, text string) (*models.StudySession, error) {
	plan, err := s.Planner.GeneratePlan(subject, hours, scenario, days)
	if err != nil {
		return nil, err
	}

	session := &models.StudySession{
		Subject:     subject,
		Hours:       hours,
		Days:        days,
		Scenario:    scenario,
		Plan:        plan,
		Quiz:        s.Quiz.GenerateQuiz(subject, quiz.DefaultNumQuestions, quiz.DifficultyMixed),
		Resources:   s.Resources.SuggestResources(subject),
		Tips:        s.Tips.GenerateTips(subject, tips.DefaultNumTips),
		GeneratedAt: s.now().Format(time.RFC3339),
	}
	if text != "" {
		session.Summary = s.Summary.Summarize(text)
	}
	return session, nil
}
