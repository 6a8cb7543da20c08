package main

import (
	"fmt"

	"github.com/aretw0/hexrune/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <asset>",
	Short: "Export the script graph visualization",
	Long:  `Loads a script and outputs a Mermaid diagram (graph LR) of its nodes, flow links and data links.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		defer e.close()

		s, err := e.engine.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(s, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
