package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studypal/services/planner"
	"studypal/services/quiz"
)

// QuizHandler serves quiz generation.
type QuizHandler struct {
	Quiz quiz.QuizService
}

func NewQuizHandler(svc quiz.QuizService) *QuizHandler {
	return &QuizHandler{Quiz: svc}
}

func (h *QuizHandler) GenerateQuizHandler(c *gin.Context) {
	var req struct {
		Subject      string `json:"subject"`
		NumQuestions *int   `json:"num_questions"`
		Difficulty   string `json:"difficulty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = planner.DefaultSubject
	}
	numQuestions := quiz.DefaultNumQuestions
	if req.NumQuestions != nil {
		numQuestions = *req.NumQuestions
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = quiz.DifficultyMixed
	}

	c.JSON(http.StatusOK, gin.H{
		"quiz": h.Quiz.GenerateQuiz(subject, numQuestions, difficulty),
	})
}
