// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ertig3/cabrillo2adif/internal/cabrillo"
	"github.com/ertig3/cabrillo2adif/internal/i18n"
	"github.com/ertig3/cabrillo2adif/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.cbr>",
	Short: "Parse a Cabrillo log and report warnings without converting",
	Long: `Validate parses a Cabrillo log and prints every warning the parser
would raise during conversion, without writing any output. The exit
status is zero as long as the file itself is readable.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	includeXQSO, _ := cmd.Flags().GetBool("include-xqso")
	tr := i18n.New(language(cmd))

	log, err := cabrillo.ParseFile(args[0], types.ParserConfig{IncludeXQSO: includeXQSO})
	if err != nil {
		return err
	}

	for _, w := range log.Warnings {
		fmt.Fprintf(os.Stdout, "line %d: %s\n", w.Line, w.Message)
	}
	if log.WarningsDropped > 0 {
		fmt.Fprintf(os.Stdout, "... %d further warnings not shown\n", log.WarningsDropped)
	}

	total := len(log.Warnings) + log.WarningsDropped
	if total == 0 {
		fmt.Fprintf(os.Stdout, "%s: %d %s\n", tr.T("validate_ok"), len(log.QSOs), tr.T("status_qsos"))
	} else {
		fmt.Fprintf(os.Stdout, "%s: %d %s, %d %s\n", tr.T("validate_warnings"),
			len(log.QSOs), tr.T("status_qsos"), total, tr.T("status_warnings"))
	}

	if strict && total > 0 {
		return fmt.Errorf("%d warning(s) in %s", total, args[0])
	}
	return nil
}

func init() {
	validateCmd.Flags().Bool("strict", false, "exit non-zero when the log has warnings")
	validateCmd.Flags().Bool("include-xqso", false, "parse X-QSO lines as well")

	rootCmd.AddCommand(validateCmd)
}
