package analysis

import (
	"fmt"
	"strconv"

	"github.com/jonathan/interview-coach/internal/types"
)

// Analyze runs the full pipeline for one answer: normalize once, short-
// circuit degenerate transcripts to constant templates, otherwise
// compose the rating, mistakes, tips, and summary. It is a single pure
// pass with no failure mode of its own.
func Analyze(t types.Transcript, field string) *types.AnalysisResult {
	features := Normalize(t)

	if features.WordCount < noSpeechWordLimit {
		return noSpeechResult()
	}
	if features.WordCount < briefWordLimit {
		return tooBriefResult(features.WordCount)
	}

	rating := Score(features, field, t.Text)

	summary := fmt.Sprintf("Your response contained %d words with %d technical terms, %d confidence indicators, and %d filler words, earning a rating of %s/9. %s",
		features.WordCount, features.TechnicalTermCount, features.ConfidenceWordCount,
		features.FillerWordCount, formatRating(rating), closingSentence(rating))

	return &types.AnalysisResult{
		Rating:   rating,
		Mistakes: Issues(features, field, t.Segments),
		Tips:     Tips(features, field),
		Summary:  summary,
	}
}

// closingSentence selects the qualitative wrap-up by rating threshold.
func closingSentence(rating float64) string {
	switch {
	case rating >= 7:
		return "This is a strong performance that would impress most interviewers."
	case rating >= 5:
		return "This is a good foundation to build on with more specifics and polish."
	default:
		return "This answer needs improvement before it will hold up in a real interview."
	}
}

// formatRating prints a rating the way the product always has: whole
// values without a decimal point, halves with one.
func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

// noSpeechResult is the constant template for transcripts with fewer
// than five words. It is not field-dependent.
func noSpeechResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		Rating: 0,
		Mistakes: []types.Mistake{
			{Timestamp: "0:00", Text: "No speech was detected in your recording."},
		},
		Tips: []string{
			"Check that your microphone is connected and not muted.",
			"Speak clearly and at a normal volume, close to the microphone.",
			"Record in a quiet environment to help the transcriber pick up your voice.",
			"Re-record your answer and confirm the playback has audible speech.",
		},
		Summary: "No speech was detected, so the answer could not be evaluated. Re-record your answer and make sure your microphone is picking up your voice.",
	}
}

// tooBriefResult is the template for answers of five to nineteen words.
func tooBriefResult(wordCount int) *types.AnalysisResult {
	return &types.AnalysisResult{
		Rating: 2,
		Mistakes: []types.Mistake{
			{Timestamp: "0:15", Text: fmt.Sprintf("Your answer contained only %d words, which is far too brief to evaluate meaningfully.", wordCount)},
		},
		Tips: []string{
			"Aim for at least a minute of speaking time per answer.",
			"Structure your answer around the situation, the actions you took, and the result.",
			"Add context about the project, your role, and the technologies involved.",
			"Practice expanding each claim with one concrete example.",
		},
		Summary: fmt.Sprintf("Your answer was only %d words long. Interviewers need substantially more material to evaluate you; aim for a fuller, structured response.", wordCount),
	}
}
