package main

import (
	"github.com/aretw0/balance/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [expression]",
	Short: "Step through an expression on the command line",
	Long: `Starts a line-based session. Press enter (or n) to step, r to reset, "restart" to
rewind, "set <expression>" to change the expression and q to quit.
With --headless the expression is stepped to its verdict without prompting.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.RunOptions{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
		}
		if len(args) > 0 {
			opts.Expression = args[0]
		}
		opts.Exercise, _ = cmd.Flags().GetString("exercise")
		opts.Dir, _ = cmd.Flags().GetString("dir")
		opts.Headless, _ = cmd.Flags().GetBool("headless")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Graph, _ = cmd.Flags().GetBool("graph")

		withEnvironment(cmd, func(env *cli.Environment) error {
			return cli.Execute(env, opts)
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Run in headless mode (no prompts, step to the verdict)")
	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().Bool("graph", false, "Print the trace as a Mermaid flowchart")
	runCmd.Flags().StringP("exercise", "e", "", "Use the expression of an exercise")
	runCmd.Flags().String("dir", "", "Directory of exercise markdown files (default: built-in set)")

	// Make 'run' the default if no command is provided
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.Run = runCmd.Run
}
