package quiz

import (
	"math/rand"

	"studypal/models"
)

// DefaultNumQuestions is the quiz length the HTTP layer applies when a
// request omits it.
const DefaultNumQuestions = 5

var questionBank = map[string][]string{
	"Mathematics": {
		"What is the fundamental theorem of algebra?",
		"Explain the concept of derivatives in calculus",
		"How do you solve quadratic equations?",
		"What is the difference between permutations and combinations?",
		"Describe the properties of logarithmic functions",
		"What is matrix multiplication and its applications?",
		"Explain the concept of limits in calculus",
		"How do you calculate standard deviation?",
	},
	"Science": {
		"What is the law of conservation of energy?",
		"Explain the process of osmosis in cells",
		"What are the three states of matter?",
		"Describe the water cycle and its importance",
		"What is the periodic table and how is it organized?",
		"Explain photosynthesis and cellular respiration",
		"What is the structure of the solar system?",
		"Describe the process of mitosis and meiosis",
	},
	"History": {
		"What were the main causes of World War I?",
		"Describe the impact of the Renaissance on European society",
		"What was the significance of the French Revolution?",
		"Explain the causes and effects of the Industrial Revolution",
		"What were the key events of the Cold War?",
		"Describe the structure of ancient Roman government",
		"What was the significance of the Magna Carta?",
		"Explain the causes of the American Civil War",
	},
	"Literature": {
		"What are the main themes in Shakespearean tragedies?",
		"Describe the literary devices used in poetry",
		"What is the significance of symbolism in literature?",
		"Explain the difference between protagonist and antagonist",
		"What are the characteristics of the Romantic period?",
		"Describe the narrative techniques in modern fiction",
		"What is the importance of setting in storytelling?",
		"Explain the concept of irony in literature",
	},
	"Computer Science": {
		"What is the difference between arrays and linked lists?",
		"Explain the concept of recursion in programming",
		"What is object-oriented programming and its principles?",
		"Describe the time complexity of common algorithms",
		"What is the difference between SQL and NoSQL databases?",
		"Explain the concept of inheritance in OOP",
		"What is the purpose of version control systems?",
		"Describe the layers of the OSI model",
	},
}

// QuizService defines business logic for quiz generation.
type QuizService interface {
	// GenerateQuiz assembles numQuestions template questions for a subject.
	// difficulty filters the first sampling pass; "Mixed" accepts everything.
	GenerateQuiz(subject string, numQuestions int, difficulty string) []models.QuizQuestion
}

// DefaultQuizService is the production implementation. Rand is the injected
// sampling source so quizzes are reproducible under test.
type DefaultQuizService struct {
	Classifier DifficultyClassifier
	Rand       *rand.Rand
}

// GenerateQuiz samples questions without replacement, drops those failing the
// difficulty filter, then pads with replacement until the quiz is full. The
// padding pass skips the filter so a strict filter cannot starve the quiz.
func (s *DefaultQuizService) GenerateQuiz(subject string, numQuestions int, difficulty string) []models.QuizQuestion {
	questions, ok := questionBank[subject]
	if !ok {
		questions = questionBank["Mathematics"]
	}
	if numQuestions <= 0 {
		return []models.QuizQuestion{}
	}

	k := numQuestions
	if k > len(questions) {
		k = len(questions)
	}

	quiz := make([]models.QuizQuestion, 0, numQuestions)
	for _, idx := range s.Rand.Perm(len(questions))[:k] {
		q := questions[idx]
		label, confidence := s.Classifier.Classify(q)
		if difficulty != DifficultyMixed && label != difficulty {
			continue
		}
		quiz = append(quiz, models.QuizQuestion{
			Question:   q,
			Difficulty: label,
			Confidence: confidence,
			Options:    s.generateOptions(q),
		})
	}

	for len(quiz) < numQuestions {
		q := questions[s.Rand.Intn(len(questions))]
		label, confidence := s.Classifier.Classify(q)
		quiz = append(quiz, models.QuizQuestion{
			Question:   q,
			Difficulty: label,
			Confidence: confidence,
			Options:    s.generateOptions(q),
		})
	}

	return quiz[:numQuestions]
}
