package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/stan-pages/internal/index"
	"github.com/pdiddy/stan-pages/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check [root]",
	Short: "Run the README.md guard check without writing anything",
	Long: `Check verifies that the target tree is the repository this tool is
meant to run against: its README.md must begin with the expected heading.
No files are written either way.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := viper.GetString("root")
		if len(args) == 1 {
			root = args[0]
		}
		if root == "" {
			root = "."
		}

		heading, _ := cmd.Flags().GetString("guard-heading")
		if !cmd.Flags().Changed("guard-heading") && viper.GetString("guard_heading") != "" {
			heading = viper.GetString("guard_heading")
		}

		if err := index.CheckGuard(root, heading); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "guard check passed: README.md begins with %q\n", heading)
		return nil
	},
}

func init() {
	checkCmd.Flags().String("guard-heading", types.DefaultGuardHeading, "heading the root README.md must begin with")

	rootCmd.AddCommand(checkCmd)
}
