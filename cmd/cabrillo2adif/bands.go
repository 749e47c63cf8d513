package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ertig3/cabrillo2adif/internal/adif"
	"github.com/ertig3/cabrillo2adif/internal/band"
)

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "List the supported bands and mode tokens",
	Run: func(cmd *cobra.Command, args []string) {
		bands := band.All()
		names := make([]string, len(bands))
		for i, b := range bands {
			names[i] = string(b)
		}
		fmt.Fprintf(os.Stdout, "Bands: %s\n", strings.Join(names, " "))
		fmt.Fprintf(os.Stdout, "Modes: %s\n", strings.Join(adif.SupportedModes(), " "))
	},
}

func init() {
	rootCmd.AddCommand(bandsCmd)
}
