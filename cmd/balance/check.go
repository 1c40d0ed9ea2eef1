package main

import (
	"github.com/aretw0/balance/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every exercise against its expected verdict",
	Long: `Runs each exercise to its verdict and compares it with the expectation in its
frontmatter. Exits non-zero when any exercise fails.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.CheckOptions{Stdout: cmd.OutOrStdout()}
		opts.Dir, _ = cmd.Flags().GetString("dir")
		opts.Watch, _ = cmd.Flags().GetBool("watch")

		withEnvironment(cmd, func(env *cli.Environment) error {
			return cli.RunCheck(env, opts)
		})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("dir", "", "Directory of exercise markdown files (default: built-in set)")
	checkCmd.Flags().BoolP("watch", "w", false, "Re-check on every change in the lessons directory")
}
