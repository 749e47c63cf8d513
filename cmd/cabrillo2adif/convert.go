// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ertig3/cabrillo2adif/internal/convert"
	"github.com/ertig3/cabrillo2adif/internal/logbook"
	"github.com/ertig3/cabrillo2adif/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.cbr> [more files...]",
	Short: "Convert Cabrillo log files to ADIF",
	Long: `Convert parses Cabrillo contest logs (.cbr, .log, .txt) and writes
ADIF 3.1.4 files (.adi). Unrecognized lines and unmapped band or mode
tokens become warnings; a failed conversion leaves no partial output.

With --logbook, successfully converted contacts are also stored in the
local SQLite logbook.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "" && len(args) > 1 {
		return fmt.Errorf("--output needs exactly one input file, got %d", len(args))
	}

	cfg := convertConfig(cmd)
	useLogbook, _ := cmd.Flags().GetBool("logbook")

	// The plain multi-file case goes through the batch driver, which
	// prints its own summary.
	if !useLogbook && output == "" && len(args) > 1 {
		result := convert.ConvertBatch(cfg, args, os.Stdout)
		if result.HasFailures() {
			return fmt.Errorf("%d file(s) failed conversion", result.Failed)
		}
		return nil
	}

	var (
		store *logbook.Store
		err   error
	)
	if useLogbook {
		store, err = logbook.NewStore(logbookConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()
	}

	var result convert.BatchResult
	for _, in := range args {
		s := convert.NewSession(cfg, in, output)
		status, _ := s.Run(os.Stdout)
		switch status {
		case convert.StatusConverted:
			result.Converted++
		case convert.StatusSkipped:
			result.Skipped++
		case convert.StatusFailed:
			result.Failed++
		}

		if status == convert.StatusConverted && store != nil {
			n, err := store.Ingest(context.Background(), in, s.Log)
			if err != nil {
				return fmt.Errorf("storing %s in logbook: %w", in, err)
			}
			fmt.Fprintf(os.Stdout, "logbook: %s (%d QSOs)\n", in, n)
		}
	}

	if len(args) > 1 {
		fmt.Fprintf(os.Stdout, "\n%d converted, %d skipped, %d failed (total: %d)\n",
			result.Converted, result.Skipped, result.Failed, result.Total())
	}
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

// convertConfig assembles the conversion settings from flags with viper
// fallbacks.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}
	force, _ := cmd.Flags().GetBool("force")
	report, _ := cmd.Flags().GetString("report")
	includeXQSO, _ := cmd.Flags().GetBool("include-xqso")

	return types.ConvertConfig{
		Parser:    types.ParserConfig{IncludeXQSO: includeXQSO},
		OutputDir: outputDir,
		Force:     force,
		Report:    types.ReportFormat(report),
		Language:  language(cmd),
	}
}

func init() {
	convertCmd.Flags().String("output", "", "output .adi path (single input only; default: input name with .adi)")
	convertCmd.Flags().String("output-dir", "", "directory for derived output paths")
	convertCmd.Flags().Bool("force", false, "overwrite existing output files")
	convertCmd.Flags().String("report", "", "write a conversion report next to the output: yaml or json")
	convertCmd.Flags().Bool("include-xqso", false, "parse X-QSO lines (still excluded from ADIF output)")
	convertCmd.Flags().Bool("logbook", false, "store converted contacts in the local logbook")
	convertCmd.Flags().String("logbook-dir", "", "logbook directory (default: ./logbook)")

	rootCmd.AddCommand(convertCmd)
}
