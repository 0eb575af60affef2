package analysis

import (
	"fmt"

	"github.com/jonathan/interview-coach/internal/types"
)

// Tips derives the advisory strings for an answer: a factual recap
// followed by four praise-or-correct entries in fixed order.
func Tips(f types.LexicalFeatures, field string) []string {
	tips := make([]string, 0, 5)

	tips = append(tips, fmt.Sprintf("Your answer contained %d words, %d technical terms, and %d confidence-building phrases.",
		f.WordCount, f.TechnicalTermCount, f.ConfidenceWordCount))

	if f.TechnicalTermCount > 3 {
		tips = append(tips, "Good use of technical vocabulary; it signals hands-on familiarity with the domain.")
	} else {
		tips = append(tips, fmt.Sprintf("Bring in more terminology from %s to show depth in the field.", field))
	}

	if f.ConfidenceWordCount > 2 {
		tips = append(tips, "Strong achievement language; keep framing your contributions as things you drove.")
	} else {
		tips = append(tips, "Describe what you personally achieved, led, or improved rather than what merely happened.")
	}

	if f.SpecificMetricCount > 0 {
		tips = append(tips, "Quantifying your impact with concrete numbers makes your answer memorable; keep doing it.")
	} else {
		tips = append(tips, "Add specific metrics, such as percentages or user counts, to make your impact tangible.")
	}

	if float64(f.FillerWordCount) < float64(f.WordCount)/25 {
		tips = append(tips, "Your delivery is clean, with very few filler words. That reads as composed and prepared.")
	} else {
		tips = append(tips, "Practice pausing silently instead of using filler words; a short pause sounds more deliberate.")
	}

	return tips
}
