// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ertig3/cabrillo2adif/internal/cabrillo"
	"github.com/ertig3/cabrillo2adif/internal/i18n"
	"github.com/ertig3/cabrillo2adif/internal/logbook"
	"github.com/ertig3/cabrillo2adif/pkg/types"
)

var logbookCmd = &cobra.Command{
	Use:   "logbook",
	Short: "Manage the local logbook (store, search, export)",
	Long: `Logbook keeps converted contacts in a local SQLite database. Use
subcommands to store parsed logs, search past contacts, or export the
whole logbook.`,
}

// --- store subcommand ---

var logbookStoreCmd = &cobra.Command{
	Use:   "store <file.cbr> [more files...]",
	Short: "Parse Cabrillo logs and store their contacts in the logbook",
	Long: `Store parses each Cabrillo file and ingests its contacts. Storing a
file that was ingested before replaces its earlier contacts.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLogbookStore,
}

func runLogbookStore(cmd *cobra.Command, args []string) error {
	store, err := logbook.NewStore(logbookConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	tr := i18n.New(language(cmd))
	failed := 0
	for _, path := range args {
		log, err := cabrillo.ParseFile(path, types.ParserConfig{})
		if err != nil {
			fmt.Fprintf(os.Stdout, "%s: %s (%v)\n", tr.T("status_failed"), path, err)
			failed++
			continue
		}
		n, err := store.Ingest(context.Background(), path, log)
		if err != nil {
			fmt.Fprintf(os.Stdout, "%s: %s (%v)\n", tr.T("status_failed"), path, err)
			failed++
			continue
		}
		fmt.Fprintf(os.Stdout, "%s: %s (%d %s)\n", tr.T("logbook_stored"), path, n, tr.T("status_qsos"))
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

// --- search subcommand ---

var logbookSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search past contacts by callsign, exchange, band, or mode",
	Long: `Search queries the logbook with full-text search over callsigns and
exchanges, structured filters, or both. Results carry the contest and
source file they came from.`,
	RunE: runLogbookSearch,
}

func runLogbookSearch(cmd *cobra.Command, args []string) error {
	store, err := logbook.NewStore(logbookConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := searchOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --band, --mode, or --contest")
	}

	results, err := store.Search(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput, i18n.New(language(cmd)))
}

func formatSearchOutput(results []logbook.QueryResult, jsonOutput bool, tr *i18n.Translator) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println(tr.T("no_results"))
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-12s  %-6s  %-5s  %-10s  %-5s  %-18s  %s\n",
		"Call", "Band", "Mode", "Date", "Time", "Contest", "Exchange")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 84))

	for _, r := range results {
		contest := r.Contest
		if len(contest) > 18 {
			contest = contest[:15] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-12s  %-6s  %-5s  %-10s  %-5s  %-18s  %s\n",
			r.Call, r.Band, r.Mode, r.Date, r.Time, contest, r.ExchRcvd)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var logbookExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the logbook to YAML or JSON",
	Long: `Export writes the full logbook (or a filtered subset) to export.yaml
or export.json in the logbook directory. Supports the same filter flags
as search.`,
	RunE: runLogbookExport,
}

func runLogbookExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := logbook.NewStore(logbookConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := searchOptsFromFlags(cmd, args)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func logbookConfig(cmd *cobra.Command) types.LogbookConfig {
	dir, _ := cmd.Flags().GetString("logbook-dir")
	if dir == "" {
		dir = viper.GetString("logbook_dir")
	}
	if dir == "" {
		dir = "logbook"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.LogbookConfig{Dir: dir, MaxResults: maxResults}
}

func searchOptsFromFlags(cmd *cobra.Command, args []string) logbook.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	bandName, _ := cmd.Flags().GetString("band")
	mode, _ := cmd.Flags().GetString("mode")
	contest, _ := cmd.Flags().GetString("contest")
	limit, _ := cmd.Flags().GetInt("limit")

	return logbook.QueryOptions{
		Query:      queryText,
		Band:       bandName,
		Mode:       mode,
		Contest:    contest,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	logbookCmd.PersistentFlags().String("logbook-dir", "", "logbook directory (default: ./logbook)")
	logbookCmd.PersistentFlags().Int("max-results", 20, "maximum number of search results")

	// Search flags.
	logbookSearchCmd.Flags().String("query", "", "full-text search over callsigns and exchanges")
	logbookSearchCmd.Flags().String("band", "", "filter by ADIF band (e.g. 20M)")
	logbookSearchCmd.Flags().String("mode", "", "filter by ADIF mode (e.g. CW, SSB)")
	logbookSearchCmd.Flags().String("contest", "", "filter by contest name")
	logbookSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	logbookSearchCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	logbookExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	logbookExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	logbookExportCmd.Flags().String("band", "", "filter by band for partial export")
	logbookExportCmd.Flags().String("mode", "", "filter by mode for partial export")
	logbookExportCmd.Flags().String("contest", "", "filter by contest for partial export")
	logbookExportCmd.Flags().Int("limit", 0, "maximum contacts to export (0 = all)")

	// Wire subcommands.
	logbookCmd.AddCommand(logbookStoreCmd)
	logbookCmd.AddCommand(logbookSearchCmd)
	logbookCmd.AddCommand(logbookExportCmd)

	rootCmd.AddCommand(logbookCmd)
}
