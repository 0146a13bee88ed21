package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doylet/CapacityReset-sub000/internal/config"
	"github.com/doylet/CapacityReset-sub000/internal/engine"
	"github.com/doylet/CapacityReset-sub000/internal/observability"
	"github.com/doylet/CapacityReset-sub000/internal/providers"
	"github.com/doylet/CapacityReset-sub000/internal/store"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract skills from a job posting",
	Long:  "Extract skills from a job posting given as a file argument or on stdin. Accepts raw text or HTML. Results are printed as JSON and optionally persisted to PostgreSQL.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExtract,
}

var (
	documentID  string
	databaseURL string
	lexiconPath string
	aliasPath   string
	pretty      bool
)

func init() {
	extractCmd.Flags().StringVarP(&documentID, "document-id", "d", "", "Document identifier for the result (required)")
	extractCmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL URL to persist records to (falls back to DATABASE_URL)")
	extractCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "Path to a JSON lexicon file (defaults to the built-in lexicon)")
	extractCmd.Flags().StringVar(&aliasPath, "aliases", "", "Path to a JSON alias file (defaults to the built-in aliases)")
	extractCmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")

	extractCmd.MarkFlagRequired("document-id")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		raw []byte
		err error
	)
	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
	} else {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
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

	provider := providers.NewFileProvider(lexiconPath, aliasPath)
	eng, err := engine.New(ctx, cfg, engine.Dependencies{
		Lexicon: provider,
		Aliases: provider,
		Models:  provider,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	result, err := eng.Extract(ctx, string(raw), documentID)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if url := resolveDatabaseURL(); url != "" {
		pg, err := store.Connect(ctx, url)
		if err != nil {
			return err
		}
		defer pg.Close()
		if err := pg.EnsureSchema(ctx); err != nil {
			return err
		}
		if err := pg.Save(ctx, documentID, result.ExtractorVersion, result.Records); err != nil {
			return err
		}
	}

	if verbose {
		observability.NewPrinter(os.Stderr).PrintExtractionResult(&result)
	}

	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

func resolveDatabaseURL() string {
	if databaseURL != "" {
		return databaseURL
	}
	return os.Getenv("DATABASE_URL")
}
