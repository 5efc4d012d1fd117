package models

// TextAnalysis carries surface statistics for a passage of text.
type TextAnalysis struct {
	TotalSentences        int      `json:"total_sentences"`
	TotalWords            int      `json:"total_words"`
	UniqueWords           int      `json:"unique_words"`
	AverageSentenceLength float64  `json:"average_sentence_length"`
	Keywords              []string `json:"keywords"`
}
