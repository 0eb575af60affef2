package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/interview-coach/internal/analysis"
	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/transcription"
	"github.com/jonathan/interview-coach/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [transcript files...]",
	Short: "Score one or more interview answers",
	Long: `Analyze transcribed answers against a target job field and print a rating,
spotted mistakes, and improvement tips.

Inputs are transcript JSON files (or plain text). With --audio, inputs are
audio files sent to a Whisper transcription server first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeField      string
	analyzeAudio      bool
	analyzeWhisperURL string
	analyzeJSON       bool
	analyzeVerbose    bool
)

// analyzeConcurrency bounds parallel transcript work for batch input.
const analyzeConcurrency = 4

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeField, "field", "f", "", "Target job field (e.g. \"backend engineer\")")
	analyzeCmd.Flags().BoolVar(&analyzeAudio, "audio", false, "Treat inputs as audio files and transcribe them first")
	analyzeCmd.Flags().StringVar(&analyzeWhisperURL, "whisper-url", "", "Base URL of the Whisper transcription server (defaults to WHISPER_URL env var)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print raw JSON results instead of formatted output")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print extracted lexical features alongside each result")

	rootCmd.AddCommand(analyzeCmd)
}

// analyzed pairs an input path with its result so batch output stays in
// input order regardless of completion order.
type analyzed struct {
	Path     string                `json:"file"`
	Result   *types.AnalysisResult `json:"analysis"`
	features types.LexicalFeatures
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Command-line args take priority over the config file.
	if cmd.Flags().Changed("field") {
		cfg.Field = analyzeField
	}
	if cmd.Flags().Changed("whisper-url") {
		cfg.WhisperURL = analyzeWhisperURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	if cfg.Field == "" {
		return fmt.Errorf("--field is required (via flag or config)")
	}

	var transcriber *transcription.Client
	if analyzeAudio {
		whisperURL := cfg.WhisperURL
		if whisperURL == "" {
			whisperURL = os.Getenv("WHISPER_URL")
		}
		if whisperURL == "" {
			return fmt.Errorf("--audio requires --whisper-url or the WHISPER_URL environment variable")
		}
		transcriber = transcription.NewClient(transcription.Config{
			BaseURL: whisperURL,
			Token:   os.Getenv("WHISPER_TOKEN"),
		})
	}

	results := make([]analyzed, len(args))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(analyzeConcurrency)
	for i, path := range args {
		g.Go(func() error {
			var transcript *types.Transcript
			var err error
			if transcriber != nil {
				transcript, err = transcriber.TranscribeFile(gctx, path)
			} else {
				transcript, err = transcription.LoadFile(path)
			}
			if err != nil {
				return err
			}

			results[i] = analyzed{
				Path:     path,
				Result:   analysis.Analyze(*transcript, cfg.Field),
				features: analysis.Normalize(*transcript),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return printAnalyses(results, cfg.Verbose)
}

func printAnalyses(results []analyzed, verbose bool) error {
	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if len(results) == 1 {
			return encoder.Encode(results[0].Result)
		}
		return encoder.Encode(results)
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, r := range results {
		if len(results) > 1 {
			fmt.Printf("\n=== %s ===\n", r.Path)
		}
		if verbose {
			printer.PrintFeatures(r.features)
		}
		printer.PrintAnalysis(r.Result)
	}
	return nil
}
