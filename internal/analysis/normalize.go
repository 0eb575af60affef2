package analysis

import (
	"regexp"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// Normalize derives the lexical feature counts from a transcript's text.
// It is pure: the same text always yields the same counts, and empty
// text yields all zeros. Each vocabulary pass scans the full text
// independently of the others.
func Normalize(t types.Transcript) types.LexicalFeatures {
	return types.LexicalFeatures{
		WordCount:           len(strings.Fields(t.Text)),
		TechnicalTermCount:  countMatches(technicalPattern, t.Text),
		ConfidenceWordCount: countMatches(confidencePattern, t.Text),
		FillerWordCount:     countMatches(fillerPattern, t.Text),
		SpecificMetricCount: countMatches(metricPattern, t.Text),
		QuestionWordCount:   countMatches(questionPattern, t.Text),
	}
}

// countMatches counts non-overlapping matches of pattern in text.
func countMatches(pattern *regexp.Regexp, text string) int {
	return len(pattern.FindAllStringIndex(text, -1))
}
