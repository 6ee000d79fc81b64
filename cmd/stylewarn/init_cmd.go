package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .stylewarn.yaml config file",
	Long:  `Create a .stylewarn.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".stylewarn.yaml"); err == nil && !force {
			return fmt.Errorf(".stylewarn.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".stylewarn.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .stylewarn.yaml")
		return nil
	},
}

const defaultConfig = `# stylewarn configuration
# Docs: https://github.com/yacobolo/stylewarn

# Shared settings
verbose: false
color: false

# Check settings
check:
  paths:
    - "styles/**/*.yaml"
    - "styles/**/*.yml"
    - "styles/**/*.json"
  support-check: true      # query the style engine for unsupported values
  strict: false            # exit 1 on warnings too
  output-format: issues    # issues | summary | full | json
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
