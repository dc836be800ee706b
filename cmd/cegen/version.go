// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0-dev"

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cegen",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("cegen version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
