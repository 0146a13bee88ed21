package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doylet/CapacityReset-sub000/internal/config"
	"github.com/doylet/CapacityReset-sub000/internal/engine"
	"github.com/doylet/CapacityReset-sub000/internal/evaluation"
	"github.com/doylet/CapacityReset-sub000/internal/observability"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate extraction quality against a labeled dataset",
	Long:  "Run the extractor over a JSON dataset of labeled documents and report precision, recall, and F1. Exits non-zero when F1 falls below the configured minimum.",
	RunE:  runEval,
}

var (
	datasetPath string
	minF1       float64
	concurrency int
)

func init() {
	evalCmd.Flags().StringVar(&datasetPath, "dataset", "", "Path to the labeled dataset JSON file (required)")
	evalCmd.Flags().Float64Var(&minF1, "min-f1", 0, "Fail the run when F1 is below this value")
	evalCmd.Flags().IntVar(&concurrency, "concurrency", 4, "Number of documents evaluated in parallel")

	evalCmd.MarkFlagRequired("dataset")

	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	docs, err := evaluation.LoadDataset(datasetPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	eng, err := engine.New(ctx, cfg, engine.Dependencies{Logger: logger})
	if err != nil {
		return err
	}

	report, err := evaluation.Evaluate(ctx, eng, docs, concurrency)
	if err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stderr).PrintReport(&report)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if minF1 > 0 && report.F1 < minF1 {
		return fmt.Errorf("f1 %.3f is below required minimum %.3f", report.F1, minF1)
	}
	return nil
}
