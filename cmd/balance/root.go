package main

import (
	"fmt"
	"os"

	"github.com/aretw0/balance/internal/cli"
	"github.com/aretw0/balance/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "balance",
	Short: "Balance steps through bracket expressions one character at a time",
	Long: `Balance validates bracket expressions such as {[()]} step by step, showing the
stack after every character, so you can see why an expression is accepted or rejected.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// loadEnvironment reads the config file and wires logger, metrics and engine.
func loadEnvironment(cmd *cobra.Command) (*cli.Environment, error) {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cli.NewEnvironment(cfg, debug)
}

// withEnvironment runs fn and flushes metrics before exiting on error.
func withEnvironment(cmd *cobra.Command, fn func(env *cli.Environment) error) {
	env, err := loadEnvironment(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := fn(env)
	if err := env.Close(); err != nil {
		env.Logger.Error("Failed to write metrics", "err", err)
	}
	if runErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", runErr)
		os.Exit(1)
	}
}
