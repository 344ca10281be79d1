// Package cmd implements the numsign command-line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/numsign/internal/config"
	"github.com/zjrosen/numsign/internal/log"
)

var (
	cfgFile  string
	output   string
	logLevel string

	cfg = config.Defaults()
)

// newRootCmd builds the command tree. Tests build a fresh tree per run so flag
// values never leak between executions.
func newRootCmd() *cobra.Command {
	cfgFile, output, logLevel = "", "", ""

	root := &cobra.Command{
		Use:   "numsign",
		Short: "Parse, classify and apply algebraic signs",
		Long: `numsign works with the two-valued sign type: "+" (positive) and "-" (negative).

Negative numbers must follow "--" so they are not read as flags:

  numsign classify -- -3.5 0 -0`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/numsign/config.yaml)")
	root.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: text, json or yaml")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newParseCmd(),
		newClassifyCmd(),
		newScaleCmd(),
		newParityCmd(),
		newSortCmd(),
		newConfigCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	defer log.Sync()
	return newRootCmd().Execute()
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if output != "" {
		loaded.Output = output
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}

	if err := log.Init(loaded.Log); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	cfg = loaded

	log.Debug(log.CatCLI, "Running command", "cmd", cmd.CommandPath(), "output", cfg.Output)
	return nil
}
