package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/stan-pages/internal/history"
	"github.com/pdiddy/stan-pages/internal/ignore"
	"github.com/pdiddy/stan-pages/internal/index"
	"github.com/pdiddy/stan-pages/internal/report"
	"github.com/pdiddy/stan-pages/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [root]",
	Short: "Generate index.md files for a tree of Stan examples",
	Long: `Generate visits the root directory and every non-excluded descendant,
writing one index.md per directory. Before anything is written the root
README.md is checked against the expected heading; a mismatch aborts the
run with no side effects (disable with --no-guard).

Per-directory write failures are reported and counted but do not stop the
traversal.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	generateCmd.Flags().String("output-name", types.DefaultOutputName, "index filename written into each directory")
	generateCmd.Flags().String("script-url", types.DefaultScriptURL, "Stan Playground embed script URL")
	generateCmd.Flags().StringSlice("exclude", types.DefaultExcludeDirs(), "directory names to skip (hidden directories are always skipped)")
	generateCmd.Flags().String("guard-heading", types.DefaultGuardHeading, "heading the root README.md must begin with")
	generateCmd.Flags().Bool("no-guard", false, "skip the README.md guard check")
	generateCmd.Flags().Bool("respect-gitignore", false, "also skip directories matched by the root .gitignore")
	generateCmd.Flags().String("report", "", "path to save a YAML run report")
	generateCmd.Flags().String("history-db", "", "SQLite database recording completed runs")

	rootCmd.AddCommand(generateCmd)
}

// generateConfig resolves the run configuration: config-file values first,
// then any flag set explicitly on the command line.
func generateConfig(cmd *cobra.Command, args []string) (types.GeneratorConfig, bool) {
	cfg := types.GeneratorConfig{
		Root:             viper.GetString("root"),
		OutputName:       viper.GetString("output_name"),
		ScriptURL:        viper.GetString("script_url"),
		GuardHeading:     viper.GetString("guard_heading"),
		RespectGitignore: viper.GetBool("respect_gitignore"),
		ReportPath:       viper.GetString("report_path"),
		HistoryDB:        viper.GetString("history_db"),
	}
	if viper.IsSet("exclude_dirs") {
		cfg.ExcludeDirs = viper.GetStringSlice("exclude_dirs")
	}
	if cfg.GuardHeading == "" {
		cfg.GuardHeading = types.DefaultGuardHeading
	}

	flags := cmd.Flags()
	if len(args) == 1 {
		cfg.Root = args[0]
	}
	if flags.Changed("output-name") {
		cfg.OutputName, _ = flags.GetString("output-name")
	}
	if flags.Changed("script-url") {
		cfg.ScriptURL, _ = flags.GetString("script-url")
	}
	if flags.Changed("exclude") {
		cfg.ExcludeDirs, _ = flags.GetStringSlice("exclude")
	}
	if flags.Changed("guard-heading") {
		cfg.GuardHeading, _ = flags.GetString("guard-heading")
	}
	if flags.Changed("respect-gitignore") {
		cfg.RespectGitignore, _ = flags.GetBool("respect-gitignore")
	}
	if flags.Changed("report") {
		cfg.ReportPath, _ = flags.GetString("report")
	}
	if flags.Changed("history-db") {
		cfg.HistoryDB, _ = flags.GetString("history-db")
	}

	noGuard, _ := flags.GetBool("no-guard")
	cfg.ApplyDefaults()
	return cfg, noGuard
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, noGuard := generateConfig(cmd, args)
	out := cmd.OutOrStdout()

	// The guard runs before any directory is visited; a failure means
	// nothing has been written anywhere in the tree.
	if !noGuard {
		if err := index.CheckGuard(cfg.Root, cfg.GuardHeading); err != nil {
			return err
		}
	}

	opts := index.OptionsFromConfig(cfg)
	if cfg.RespectGitignore {
		m, err := ignore.Load(cfg.Root)
		if err != nil {
			return err
		}
		if m != nil {
			opts.Ignore = m
		}
	}

	fmt.Fprintln(out, "Stan Index Generator")
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Creating %s files under %s...\n\n", cfg.OutputName, cfg.Root)

	started := time.Now()
	stats := index.Run(cfg.Root, opts, out)
	elapsed := time.Since(started)

	if stats.Written() > 0 {
		fmt.Fprintf(out, "\nProcessed %d directories in %s\n", stats.Written(), elapsed.Round(time.Millisecond))
	} else {
		fmt.Fprintln(out, "\nNo directories found to process.")
	}

	if cfg.ReportPath != "" {
		if err := report.Write(cfg.ReportPath, cfg, stats, started, elapsed); err != nil {
			return err
		}
		fmt.Fprintf(out, "Run report saved to %s\n", cfg.ReportPath)
	}

	if cfg.HistoryDB != "" {
		st, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Record(cmd.Context(), cfg.Root, stats, started, elapsed); err != nil {
			return err
		}
	}

	return nil
}
