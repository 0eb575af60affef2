package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/interview-coach/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		Rating: 6.5,
		Mistakes: []types.Mistake{
			{Timestamp: "1:30", Text: "Add quantifiable metrics."},
		},
		Tips:    []string{"Practice pausing instead of using fillers."},
		Summary: "A solid answer overall.",
	}

	p.PrintAnalysis(result)
	output := buf.String()

	assert.Contains(t, output, "ANSWER ANALYSIS")
	assert.Contains(t, output, "6.5 / 9")
	assert.Contains(t, output, "[1:30]")
	assert.Contains(t, output, "Practice pausing")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintFeatures(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFeatures(types.LexicalFeatures{WordCount: 42, TechnicalTermCount: 3})
	output := buf.String()

	assert.Contains(t, output, "LEXICAL FEATURES")
	assert.Contains(t, output, "42")
}

func TestPrintQuestions_CapsList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	set := &types.QuestionSet{
		Field:  "backend",
		Source: "bank",
		Questions: []types.Question{
			{Prompt: "q1"}, {Prompt: "q2"}, {Prompt: "q3"},
			{Prompt: "q4"}, {Prompt: "q5"}, {Prompt: "q6"}, {Prompt: "q7"},
		},
	}

	p.PrintQuestions(set)
	output := buf.String()

	assert.Contains(t, output, "INTERVIEW QUESTIONS")
	assert.Contains(t, output, "backend")
	assert.Contains(t, output, "and 2 more")
}

func TestPrintQuestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQuestions(&types.QuestionSet{Field: "backend"})

	assert.Empty(t, buf.String())
}
