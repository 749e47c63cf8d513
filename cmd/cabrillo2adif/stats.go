// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ertig3/cabrillo2adif/internal/cabrillo"
	"github.com/ertig3/cabrillo2adif/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file.cbr>",
	Short: "Print statistics for a Cabrillo log",
	Long: `Stats parses a Cabrillo log and prints the contest, station
callsign, QSO count, and the distinct bands and modes worked.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	log, err := cabrillo.ParseFile(args[0], types.ParserConfig{})
	if err != nil {
		return err
	}
	s := log.Stats()

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Fprintf(os.Stdout, "Contest:  %s\n", orDash(s.Contest))
	fmt.Fprintf(os.Stdout, "Callsign: %s\n", orDash(s.Callsign))
	fmt.Fprintf(os.Stdout, "QSOs:     %d\n", s.QSOs)
	fmt.Fprintf(os.Stdout, "Rejected: %d\n", s.Rejected)
	fmt.Fprintf(os.Stdout, "Warnings: %d\n", s.Warnings)
	fmt.Fprintf(os.Stdout, "Bands:    %s\n", orDash(strings.Join(s.Bands, " ")))
	fmt.Fprintf(os.Stdout, "Modes:    %s\n", orDash(strings.Join(s.Modes, " ")))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	statsCmd.Flags().Bool("json", false, "output statistics as JSON")

	rootCmd.AddCommand(statsCmd)
}
