package analysis

import (
	"math"
	"testing"

	"github.com/jonathan/interview-coach/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScore_NoSpeechShortCircuit(t *testing.T) {
	for _, wc := range []int{0, 1, 4} {
		features := types.LexicalFeatures{WordCount: wc, TechnicalTermCount: 10, SpecificMetricCount: 5}
		assert.Equal(t, 0.0, Score(features, "senior java", "java java java"), "wordCount=%d", wc)
	}
}

func TestScore_BriefShortCircuit(t *testing.T) {
	for _, wc := range []int{5, 12, 19} {
		features := types.LexicalFeatures{WordCount: wc, TechnicalTermCount: 10, ConfidenceWordCount: 10}
		assert.Equal(t, 2.0, Score(features, "software", ""), "wordCount=%d", wc)
	}
}

func TestScore_BaseRating(t *testing.T) {
	// 20 words, no bonuses except the clear-speech bonus when filler is 0
	features := types.LexicalFeatures{WordCount: 20, FillerWordCount: 5}
	assert.Equal(t, 4.0, Score(features, "software", ""))
}

func TestScore_WordCountBonuses(t *testing.T) {
	base := types.LexicalFeatures{FillerWordCount: 100} // suppress clear-speech bonus

	short := base
	short.WordCount = 50
	long := base
	long.WordCount = 51
	veryLong := base
	veryLong.WordCount = 101

	assert.Equal(t, 4.0, Score(short, "", ""))
	assert.Equal(t, 5.0, Score(long, "", ""))
	assert.Equal(t, 5.5, Score(veryLong, "", ""))
}

func TestScore_ClearSpeechBoundary(t *testing.T) {
	// 40 words: bonus requires fillerWordCount < 2
	quiet := types.LexicalFeatures{WordCount: 40, FillerWordCount: 1}
	noisy := types.LexicalFeatures{WordCount: 40, FillerWordCount: 2}

	assert.Equal(t, 4.5, Score(quiet, "", ""))
	assert.Equal(t, 4.0, Score(noisy, "", ""))
}

func TestScore_FieldBonuses(t *testing.T) {
	features := types.LexicalFeatures{WordCount: 30, TechnicalTermCount: 5, ConfidenceWordCount: 2, FillerWordCount: 10}

	// technicalTermCount 5 already adds +1 (>2); senior bonus needs >4
	plain := Score(features, "backend", "")
	senior := Score(features, "Senior Backend", "")
	assert.Equal(t, plain+0.5, senior)

	// intern bonus needs confidenceWordCount > 1
	intern := Score(features, "intern", "")
	assert.Equal(t, plain+0.5, intern)

	// java bonus needs "java" in both field and transcript text
	javaNoText := Score(features, "java", "I write code")
	javaWithText := Score(features, "java", "I write Java code")
	assert.Equal(t, plain, javaNoText)
	assert.Equal(t, plain+0.5, javaWithText)
}

func TestScore_ScenarioExactArithmetic(t *testing.T) {
	// 60 words, 6 technical terms, 5 confidence words, 1 metric,
	// 0 fillers, java field with java in text:
	// 4 + 1 + (1+0.5) + (1+0.5) + 1 + 0.5 + 0.5 = 10 -> clamped to 9
	features := types.LexicalFeatures{
		WordCount:           60,
		TechnicalTermCount:  6,
		ConfidenceWordCount: 5,
		SpecificMetricCount: 1,
		FillerWordCount:     0,
	}

	assert.Equal(t, 9.0, Score(features, "java", "my java answer"))
}

func TestScore_BoundsAndGranularity(t *testing.T) {
	// Sweep a grid of feature combinations: every rating must be within
	// [1, 9] and a multiple of 0.5.
	for wc := 20; wc <= 120; wc += 25 {
		for tech := 0; tech <= 6; tech += 3 {
			for conf := 0; conf <= 5; conf += 5 {
				for filler := 0; filler <= 10; filler += 10 {
					features := types.LexicalFeatures{
						WordCount:           wc,
						TechnicalTermCount:  tech,
						ConfidenceWordCount: conf,
						FillerWordCount:     filler,
						SpecificMetricCount: tech,
						QuestionWordCount:   conf,
					}
					rating := Score(features, "senior java intern", "java")

					assert.GreaterOrEqual(t, rating, 1.0)
					assert.LessOrEqual(t, rating, 9.0)
					assert.Equal(t, 0.0, math.Mod(rating*2, 1), "rating %v is not a multiple of 0.5", rating)
				}
			}
		}
	}
}

func TestScore_TechnicalTermMonotonicity(t *testing.T) {
	previous := -1.0
	for tech := 0; tech <= 3; tech++ {
		features := types.LexicalFeatures{WordCount: 45, TechnicalTermCount: tech, FillerWordCount: 5}
		rating := Score(features, "backend", "")
		assert.GreaterOrEqual(t, rating, previous, "rating decreased at technicalTermCount=%d", tech)
		previous = rating
	}
}
