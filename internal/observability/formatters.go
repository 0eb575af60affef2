// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxQuestionsToShow is the default number of questions to display
	maxQuestionsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFeatures outputs the lexical feature counts for a transcript.
func (p *Printer) PrintFeatures(features types.LexicalFeatures) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Words:            %d\n", features.WordCount))
	sb.WriteString(fmt.Sprintf("Technical terms:  %d\n", features.TechnicalTermCount))
	sb.WriteString(fmt.Sprintf("Confidence words: %d\n", features.ConfidenceWordCount))
	sb.WriteString(fmt.Sprintf("Filler words:     %d\n", features.FillerWordCount))
	sb.WriteString(fmt.Sprintf("Specific metrics: %d\n", features.SpecificMetricCount))
	sb.WriteString(fmt.Sprintf("Engagement cues:  %d", features.QuestionWordCount))

	p.printBox("LEXICAL FEATURES", sb.String())
}

// PrintAnalysis outputs a human-readable summary of an analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Rating: %.1f / 9\n", result.Rating))

	if len(result.Mistakes) > 0 {
		sb.WriteString("\nIssues:\n")
		for _, mistake := range result.Mistakes {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", mistake.Timestamp, mistake.Text))
		}
	}

	if len(result.Tips) > 0 {
		sb.WriteString("\nTips:\n")
		for _, tip := range result.Tips {
			sb.WriteString(fmt.Sprintf("  • %s\n", tip))
		}
	}

	p.printBox("ANSWER ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuestions outputs the questions in a set, capped for readability.
func (p *Printer) PrintQuestions(set *types.QuestionSet) {
	if set == nil || len(set.Questions) == 0 {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Field:  %s\n", set.Field))
	if set.Source != "" {
		sb.WriteString(fmt.Sprintf("Source: %s\n", set.Source))
	}
	sb.WriteString("\n")

	count := min(len(set.Questions), maxQuestionsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, set.Questions[i].Prompt))
	}
	if len(set.Questions) > maxQuestionsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(set.Questions)-maxQuestionsToShow))
	}

	p.printBox("INTERVIEW QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}
