//nolint:revive // types is a standard Go package name pattern
package types

// LexicalFeatures is the immutable snapshot of counts derived from a
// transcript's text. All counts are recomputable from the same text.
type LexicalFeatures struct {
	WordCount           int `json:"word_count"`
	TechnicalTermCount  int `json:"technical_term_count"`
	ConfidenceWordCount int `json:"confidence_word_count"`
	FillerWordCount     int `json:"filler_word_count"`
	SpecificMetricCount int `json:"specific_metric_count"`
	QuestionWordCount   int `json:"question_word_count"`
}

// Mistake is a single timestamped issue flagged in an answer.
// Timestamp is formatted "M:SS".
type Mistake struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// AnalysisResult is the terminal output of analyzing one answer.
// Rating is 0-9 in 0.5 increments; Mistakes holds at most 3 entries and
// Tips at most 5. The JSON field names are the contract every caller
// relies on.
type AnalysisResult struct {
	Rating   float64   `json:"rating"`
	Mistakes []Mistake `json:"mistakes"`
	Tips     []string  `json:"tips"`
	Summary  string    `json:"summary"`
}
