package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// completionGenerators maps each supported shell to its cobra generator.
var completionGenerators = map[string]func(io.Writer) error{
	"bash":       func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) },
	"zsh":        func(w io.Writer) error { return rootCmd.GenZshCompletion(w) },
	"fish":       func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
	"powershell": func(w io.Writer) error { return rootCmd.GenPowerShellCompletionWithDesc(w) },
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for stylewarn commands and flags,
including check flags such as --output-format and --support-check.`,
	Example: `  stylewarn completion bash > /etc/bash_completion.d/stylewarn
  stylewarn completion zsh > "${fpath[1]}/_stylewarn"`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		generate, ok := completionGenerators[args[0]]
		if !ok {
			return fmt.Errorf("unsupported shell %q", args[0])
		}
		return generate(cmd.OutOrStdout())
	},
}

// registerFlagCompletions completes flags whose values are a fixed set.
// It runs after the check flags are registered on both commands.
func registerFlagCompletions() {
	for _, cmd := range []*cobra.Command{rootCmd, checkCmd} {
		_ = cmd.RegisterFlagCompletionFunc("output-format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return []string{"issues", "summary", "full", "json"}, cobra.ShellCompDirectiveNoFileComp
		})
	}
}
