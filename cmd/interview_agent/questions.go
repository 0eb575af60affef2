package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/questions"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print practice questions for a job field",
	Long: `Print a set of interview questions tailored to a job field.

With a Gemini API key (flag or GEMINI_API_KEY) questions are generated by the
LLM; otherwise the built-in question bank is used.`,
	RunE: runQuestions,
}

var (
	questionsField  string
	questionsCount  int
	questionsAPIKey string
	questionsJSON   bool
)

func init() {
	questionsCmd.Flags().StringVarP(&questionsField, "field", "f", "", "Target job field (required)")
	questionsCmd.Flags().IntVarP(&questionsCount, "count", "n", 5, "Number of questions")
	questionsCmd.Flags().StringVar(&questionsAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	questionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "Print the question set as JSON")
	_ = questionsCmd.MarkFlagRequired("field")

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := questionsAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var generator *questions.Generator
	if apiKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
		generator = questions.NewGenerator(client)
	}

	// A nil generator serves straight from the bank.
	set := generator.GenerateOrFallback(ctx, questionsField, questionsCount)

	if questionsJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(set)
	}

	observability.NewPrinter(os.Stdout).PrintQuestions(set)
	return nil
}
