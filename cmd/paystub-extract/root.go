package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tolu-akinola/paystub-tracker/internal/common"
	"github.com/tolu-akinola/paystub-tracker/internal/extract"
	"github.com/tolu-akinola/paystub-tracker/internal/format"
	"github.com/tolu-akinola/paystub-tracker/internal/ingest"
	"github.com/tolu-akinola/paystub-tracker/internal/paystub"
	"github.com/tolu-akinola/paystub-tracker/internal/pdftext"
	"github.com/tolu-akinola/paystub-tracker/internal/pipeline"
	"github.com/tolu-akinola/paystub-tracker/internal/repository"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var (
		outputFormat string
		outputFile   string
		noCache      bool
		cachePath    string
		includeExts  []string
	)

	cmd := &cobra.Command{
		Use:   "paystub-extract <file-or-dir>",
		Short: "Extract structured data from ADP paystub PDFs",
		Long: `paystub-extract recovers the text of one or more ADP paystub PDFs and
reconstructs their fields (pay-period dates, earnings and deduction line
items with this-period and year-to-date amounts, taxable wages, other
benefits) into JSON, transposed CSV, or XLSX.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], outputFormat, outputFile, noCache, cachePath, includeExts)
		},
	}

	cmd.Flags().StringVar(&outputFormat, "output-format", "json", "output format: json, csv or xlsx")
	cmd.Flags().StringVar(&outputFile, "output-file", "", "output file path (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "re-extract even when the file is cached")
	cmd.Flags().StringVar(&cachePath, "cache-path", "", "extraction-run cache database path")
	cmd.Flags().StringSliceVar(&includeExts, "ext", nil, "file extensions to include (default: pdf, txt)")

	return cmd
}

func run(cmd *cobra.Command, input, outputFormat, outputFile string, noCache bool, cachePath string, includeExts []string) error {
	cfg := common.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	mode, err := format.ParseMode(outputFormat)
	if err != nil {
		printError("Error: %v\n", err)
		return err
	}

	paths, stats, err := ingest.ListDocuments(input, includeExts, true)
	if err != nil {
		printError("Error: %v\n", err)
		return err
	}
	if len(paths) == 0 {
		printError("Warning: no matching documents found in %s\n", input)
	}
	logger.Debug("ingest.scan", "scanned", stats.Scanned, "matched", stats.Matched)

	if cachePath == "" {
		cachePath = cfg.Cache.Path
	}
	var runs repository.RunRepository
	if cfg.Cache.Enabled {
		store, err := repository.NewSQLiteRuns(cachePath, logger)
		if err != nil {
			logger.Warn("cache unavailable, continuing without it", "error", err)
		} else {
			runs = store
			defer store.Close()
		}
	}

	textExtractor := extract.NewPdftextAdapter(pdftext.NewExtractor(pdftext.Config{
		Pdftotext: cfg.Extract.Pdftotext,
		MaxPages:  cfg.Extract.MaxPages,
		Timeout:   cfg.Extract.Timeout,
	}, logger))
	fields := paystub.NewExtractor(logger)

	p := pipeline.NewPipeline(logger, pipeline.Config{UseCache: !noCache}, textExtractor, fields, runs)
	records, batch := p.ProcessBatch(cmd.Context(), paths)
	logger.Info("batch.done",
		"files", batch.Files, "extracted", batch.Extracted,
		"cached", batch.Cached, "skipped", batch.Skipped, "failed", batch.Failed)

	if len(records) == 0 {
		printError("No data extracted\n")
		return common.ErrNoData
	}

	out, err := format.Format(records, mode)
	if err != nil {
		printError("Error: %v\n", err)
		return err
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, out, 0o644); err != nil {
			printError("Error: %v\n", err)
			return err
		}
		printError("Data written to %s\n", outputFile)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// printError prints a message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}
