package models

// QuizOptions holds the four shuffled choices and the letter of the correct one.
type QuizOptions struct {
	A       string `json:"A"`
	B       string `json:"B"`
	C       string `json:"C"`
	D       string `json:"D"`
	Correct string `json:"correct"`
}

// QuizQuestion is one generated question with its classified difficulty.
type QuizQuestion struct {
	Question   string      `json:"question"`
	Difficulty string      `json:"difficulty"`
	Confidence float64     `json:"confidence"`
	Options    QuizOptions `json:"options"`
}
