package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stylewarn",
	Short: "Development-time checker for inline style objects",
	Long: `Checks style objects (property name to value) for the mistakes a
browser would silently drop: hyphenated or badly vendor-prefixed names,
values ending in a semicolon, NaN or Infinity numbers, and values the
style engine does not support.`,
	// Default behavior: run check when no subcommand is given.
	// We must call loadConfig here because PreRunE of checkCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runCheck(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".stylewarn.yaml", "Config file path")

	addCheckFlags(rootCmd)

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)

	registerFlagCompletions()
}
