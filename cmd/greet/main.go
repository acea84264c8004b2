package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cypher4859/codeyou-devops-aws-challenge6-cicd-advanced/greeting"
	"github.com/cypher4859/codeyou-devops-aws-challenge6-cicd-advanced/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "v0.1.0"

var (
	configPath string
	verbose    bool
	logFile    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "greet [name]",
		Short: "Print a greeting",
		Long: `Greet prints "Hello, <name>!" to standard output.

If no name is given, or the name is empty, the default name is used.
The default is "World" unless a config file sets default_name.

Example:
  greet
  greet Ada
  greet -- -dashed-name`,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGreet,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (optional)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Append diagnostics to this file")

	return rootCmd
}

func runGreet(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flag takes precedence over config
	logFilePath := logFile
	if logFilePath == "" {
		logFilePath = cfg.LogFile
	}

	logger, cleanup := setupLogger(cmd.ErrOrStderr(), logFilePath, verbose)
	defer cleanup()

	name := cfg.DefaultName
	if len(args) > 0 && args[0] != "" {
		name = args[0]
	}
	if len(args) > 1 {
		logger.Printf("Ignoring %d extra argument(s)", len(args)-1)
	}

	logger.Printf("Greeting %q", name)
	_, err := fmt.Fprintln(cmd.OutOrStdout(), greeting.Greet(name))
	return err
}
