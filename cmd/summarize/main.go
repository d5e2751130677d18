// Package main provides a one-shot CLI for summarizing text without the daemon.
// Usage: clipdigest-summarize [--file path] [--output json] [text]
//
// The text to summarize comes from the first positional argument, the --file
// flag, or stdin when neither is given. The API key is read from OPENAI_API_KEY.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"clipdigest/internal/config"
	"clipdigest/internal/infra/adapter/persistence/memory"
	"clipdigest/internal/infra/summarizer"
	"clipdigest/internal/observability/logging"
	"clipdigest/internal/usecase/summary"
)

// SummaryOutput represents the JSON output format for summary results.
type SummaryOutput struct {
	Summary   string `json:"summary"`
	CreatedAt string `json:"created_at"`
}

func main() {
	var (
		filePath     string
		outputFormat string
	)

	flag.StringVar(&filePath, "file", "", "Read the text to summarize from a file")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	if outputFormat != "text" && outputFormat != "json" {
		fmt.Fprintf(os.Stderr, "Error: Invalid output format '%s' (must be 'text' or 'json')\n", outputFormat)
		os.Exit(1)
	}

	logger := logging.NewTextLogger()

	input, err := readInput(filePath, flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	provider, err := summarizer.NewOpenAI(summarizer.Config{
		BaseURL:           cfg.Summarizer.BaseURL,
		Timeout:           cfg.Summarizer.Timeout,
		ResilienceEnabled: cfg.Summarizer.ResilienceEnabled,
	})
	if err != nil {
		logger.Error("failed to create summarizer", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: Failed to create summarizer: %v\n", err)
		os.Exit(1)
	}

	// The CLI is one-shot, so state lives in memory for the duration of the run.
	store := memory.NewStateRepo()
	ctx := context.Background()
	if err := store.SaveCredential(ctx, os.Getenv("OPENAI_API_KEY")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	svc := summary.NewService(provider, store, nil)

	result, err := svc.SummarizeText(ctx, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", summary.Classify(err))
		os.Exit(1)
	}

	if outputFormat == "json" {
		out := SummaryOutput{
			Summary:   result.Text,
			CreatedAt: result.CreatedAt.UTC().Format(time.RFC3339),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to encode output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(result.Text)
}

// readInput resolves the text to summarize from the positional argument,
// the --file flag, or stdin, in that priority order.
func readInput(filePath, arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", filePath, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
