package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/stylewarn"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/stylewarn
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of stylewarn",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stylewarn %s (%s)\n", version, stylewarn.BuildMode)
	},
}
