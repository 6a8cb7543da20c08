package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/hexrune"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hexrune",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hexrune version %s\n", strings.TrimSpace(hexrune.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
