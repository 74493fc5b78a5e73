package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/stan-pages/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded generation runs",
	Long: `History lists runs recorded in the SQLite history database. Runs are
only recorded when generate is invoked with --history-db (or the
history_db config key).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _ := cmd.Flags().GetString("db")
		if db == "" {
			db = viper.GetString("history_db")
		}
		if db == "" {
			return fmt.Errorf("no history database configured; pass --db or set history_db")
		}

		limit, _ := cmd.Flags().GetInt("limit")

		st, err := history.Open(db)
		if err != nil {
			return err
		}
		defer st.Close()

		runs, err := st.List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded.")
			return nil
		}

		fmt.Fprintf(out, "%-20s  %-20s  %7s  %7s  %7s  %6s  %s\n",
			"STARTED", "ROOT", "SCANNED", "CREATED", "UPDATED", "ERRORS", "DURATION")
		for _, r := range runs {
			fmt.Fprintf(out, "%-20s  %-20s  %7d  %7d  %7d  %6d  %s\n",
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				r.Root, r.Scanned, r.Created, r.Updated, r.Errors,
				r.Duration.Round(time.Millisecond))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("db", "", "history database path")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list (0 for all)")

	rootCmd.AddCommand(historyCmd)
}
