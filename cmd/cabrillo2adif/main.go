// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cabrillo2adif CLI, a
// converter for amateur-radio contest logs from Cabrillo 2.0/3.0 to
// ADIF 3.1.4 with an optional local logbook.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the cabrillo2adif CLI.
var rootCmd = &cobra.Command{
	Use:   "cabrillo2adif",
	Short: "Convert Cabrillo contest logs to ADIF 3.1.4",
	Long: `cabrillo2adif converts amateur-radio contest logs from the Cabrillo
format into ADIF 3.1.4. The converter preserves log order, maps bands and
modes through fixed tables, and records anything it cannot map as a
warning instead of dropping it.

Beyond conversion, the CLI can validate logs, print per-log statistics,
and keep converted contacts in a local SQLite logbook for later search.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cabrillo2adif.yaml or ~/.config/cabrillo2adif/config.yaml)")
	rootCmd.PersistentFlags().String("language", "", "message language: en or de (default: en, or the configured language)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cabrillo2adif")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cabrillo2adif"))
		}
	}

	viper.SetDefault("language", "en")
	viper.SetEnvPrefix("CABRILLO2ADIF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// language resolves the message language: the --language flag wins,
// then the config file or CABRILLO2ADIF_LANGUAGE.
func language(cmd *cobra.Command) string {
	if lang, _ := cmd.Flags().GetString("language"); lang != "" {
		return lang
	}
	return viper.GetString("language")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
