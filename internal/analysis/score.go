package analysis

import (
	"math"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// Word-count thresholds for the degenerate short-circuits. Answers
// below minScorableWords never reach the weighted rules.
const (
	noSpeechWordLimit = 5
	briefWordLimit    = 20
)

// Score computes the bounded heuristic rating for an answer. The text
// is needed alongside the features only for the java field bonus, which
// checks the raw transcript. Ratings are clamped to [1, 9] and rounded
// to the nearest 0.5; the degenerate short-circuits return 0 and 2
// directly.
func Score(f types.LexicalFeatures, field string, text string) float64 {
	if f.WordCount < noSpeechWordLimit {
		return 0
	}
	if f.WordCount < briefWordLimit {
		return 2
	}

	rating := 4.0

	if f.WordCount > 50 {
		rating++
	}
	if f.WordCount > 100 {
		rating += 0.5
	}

	if f.TechnicalTermCount > 2 {
		rating++
	}
	if f.TechnicalTermCount > 5 {
		rating += 0.5
	}

	if f.ConfidenceWordCount > 2 {
		rating++
	}
	if f.ConfidenceWordCount > 4 {
		rating += 0.5
	}

	if f.SpecificMetricCount > 0 {
		rating++
	}
	if f.SpecificMetricCount > 2 {
		rating += 0.5
	}

	// Clear speech bonus: fewer than one filler word per twenty words.
	if float64(f.FillerWordCount) < float64(f.WordCount)/20 {
		rating += 0.5
	}

	// Engagement bonus.
	if f.QuestionWordCount > 0 {
		rating += 0.5
	}

	// Field bonuses, each independently additive.
	fieldLower := strings.ToLower(field)
	if strings.Contains(fieldLower, "senior") && f.TechnicalTermCount > 4 {
		rating += 0.5
	}
	if strings.Contains(fieldLower, "intern") && f.ConfidenceWordCount > 1 {
		rating += 0.5
	}
	if strings.Contains(fieldLower, "java") && strings.Contains(strings.ToLower(text), "java") {
		rating += 0.5
	}

	if rating < 1 {
		rating = 1
	}
	if rating > 9 {
		rating = 9
	}

	return math.Round(rating*2) / 2
}
