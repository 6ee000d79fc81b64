package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/stylewarn/internal/stylecheck"
	"go.uber.org/zap"
)

// errIssuesFound fails the command after the report has been written.
var errIssuesFound = errors.New("style issues found")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check style files for invalid properties and values",
	Long: `Decode YAML and JSON style files and run every assignment through the
style validator. Naming and semicolon findings are warnings; NaN, Infinity
and unsupported values are errors.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd)
	},
}

func init() {
	addCheckFlags(checkCmd)
}

// addCheckFlags registers check flags on cmd. The root command gets them too
// so that a bare `stylewarn --strict` behaves like `stylewarn check --strict`.
func addCheckFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSlice("paths", defaultScanPaths, "File patterns to scan for style objects")
	f.Bool("support-check", true, "Query the style engine for unsupported values")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (stylewarn) suffix on issues")
}

// runCheck is shared between `stylewarn` and `stylewarn check`.
func runCheck(cmd *cobra.Command) error {
	config := buildCheckConfig()

	log := newLogger(config.Verbose)
	defer func() { _ = log.Sync() }()

	result, err := stylecheck.Check(config, log)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	log.Debug("Check finished",
		zap.Int("files", result.FilesScanned),
		zap.Int("assignments", result.AssignmentsChecked),
		zap.Int("errors", result.ErrorCount),
		zap.Int("warnings", result.WarningCount))

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := stylecheck.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		stylecheck.WriteOutput(cmd.OutOrStdout(), result, format, config)
	}

	// Default "Soft Gate" mode fails only on errors, strict on anything
	if result.Failed(config.Strict) {
		return errIssuesFound
	}
	return nil
}
