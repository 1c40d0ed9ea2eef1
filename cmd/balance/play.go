package main

import (
	"github.com/aretw0/balance/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [expression]",
	Short: "Open the interactive stepper",
	Long:  `Opens a full-screen stepper with the expression box, the current character and the stack.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var opts cli.PlayOptions
		if len(args) > 0 {
			opts.Expression = args[0]
		}
		opts.Exercise, _ = cmd.Flags().GetString("exercise")
		opts.Dir, _ = cmd.Flags().GetString("dir")

		withEnvironment(cmd, func(env *cli.Environment) error {
			return cli.Play(env, opts)
		})
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("exercise", "e", "", "Open an exercise with its notes")
	playCmd.Flags().String("dir", "", "Directory of exercise markdown files (default: built-in set)")
}
