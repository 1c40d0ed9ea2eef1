package main

import (
	"github.com/aretw0/balance/internal/cli"
	"github.com/aretw0/balance/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the available exercises",
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		notes, _ := cmd.Flags().GetBool("notes")

		withEnvironment(cmd, func(env *cli.Environment) error {
			var render func(string) (string, error)
			if notes {
				render = tui.NewRenderer(env.Config.Theme, 80)
			}
			return cli.ListLessons(env, dir, cmd.OutOrStdout(), render)
		})
	},
}

func init() {
	rootCmd.AddCommand(lessonsCmd)

	lessonsCmd.Flags().String("dir", "", "Directory of exercise markdown files (default: built-in set)")
	lessonsCmd.Flags().Bool("notes", false, "Render each exercise's notes")
}
