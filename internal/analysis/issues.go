package analysis

import (
	"fmt"
	"math"

	"github.com/jonathan/interview-coach/internal/types"
)

// maxMistakes caps the issue list; conditions past the cap are dropped
// even when triggered.
const maxMistakes = 3

// fallbackFillerTimestamp is used for the filler issue when the
// transcript carries no segments to derive a real timestamp from.
const fallbackFillerTimestamp = "1:15"

// Issues derives the ranked, capped list of timestamped mistakes. The
// conditions are evaluated in a fixed priority order and the first
// three that trigger win.
func Issues(f types.LexicalFeatures, field string, segments []types.Segment) []types.Mistake {
	mistakes := make([]types.Mistake, 0, maxMistakes)
	add := func(timestamp, text string) {
		if len(mistakes) < maxMistakes {
			mistakes = append(mistakes, types.Mistake{Timestamp: timestamp, Text: text})
		}
	}

	if f.WordCount > 0 && float64(f.FillerWordCount) > float64(f.WordCount)/15 {
		percent := int(math.Round(float64(f.FillerWordCount) / float64(f.WordCount) * 100))
		timestamp := fallbackFillerTimestamp
		if len(segments) > 0 {
			timestamp = FormatTimestamp(segments[len(segments)/2].Start)
		}
		add(timestamp, fmt.Sprintf("Filler words make up about %d%% of your answer. Pause briefly instead of reaching for \"um\" or \"like\".", percent))
	}

	if f.SpecificMetricCount == 0 && f.WordCount > 30 {
		add("1:30", "Your answer has no quantifiable results. Back up your claims with concrete numbers, such as percentages, timelines, or team sizes.")
	}

	if f.TechnicalTermCount < 2 && f.WordCount > 30 {
		add("2:00", fmt.Sprintf("Your answer uses little terminology specific to %s. Work in the tools and concepts the role actually involves.", field))
	}

	if f.ConfidenceWordCount < 2 && f.WordCount > 40 {
		add("1:45", "Your phrasing undersells your impact. Use achievement language such as \"led\", \"delivered\", or \"improved\" to own your results.")
	}

	if f.WordCount < 40 {
		add("0:30", "Your answer is quite short. Expand it with context, the actions you took, and the outcome to give a more comprehensive response.")
	}

	return mistakes
}

// FormatTimestamp renders seconds as "M:SS" with zero-padded seconds.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
