// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the stan-pages CLI, which prepares
// a tree of Stan example models for GitHub Pages deployment by writing an
// index.md into every directory.
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

// rootCmd is the base command for the stan-pages CLI.
var rootCmd = &cobra.Command{
	Use:   "stan-pages",
	Short: "Index-page generator for Stan example repositories",
	Long: `stan-pages walks a directory tree and writes one index.md per directory.
Directories containing .stan model files get a Stan Playground embed page,
with a viewer block per model and its optional .data.json companion; every
other directory gets a plain navigation page linking its subdirectories
and files. Existing index.md files are always overwritten.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./stan-pages.yaml or ~/.config/stan-pages/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("stan-pages")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "stan-pages"))
		}
	}

	viper.SetEnvPrefix("STAN_PAGES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
