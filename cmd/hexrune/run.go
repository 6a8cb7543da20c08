package main

import (
	"fmt"
	"sort"

	"github.com/aretw0/hexrune/internal/cli"
	"github.com/aretw0/hexrune/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <asset>",
	Short: "Play a script against a scratch scene",
	Long: `Loads a script and drives it through BeginPlay, a number of Tick frames and EndPlay.
Pending Delay nodes are advanced by the frame time after every Tick.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		defer e.close()

		ticks, _ := cmd.Flags().GetInt("ticks")
		dt, _ := cmd.Flags().GetFloat32("dt")
		scene, _ := cmd.Flags().GetString("scene")
		entities, _ := cmd.Flags().GetStringSlice("entity")
		trace, _ := cmd.Flags().GetBool("trace")

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		report, err := cli.Run(sc, e.engine, cli.RunOptions{
			AssetID:   args[0],
			Ticks:     ticks,
			DeltaTime: dt,
			Scene:     scene,
			Entities:  entities,
		})
		if err != nil {
			if sig := sc.Signal(); sig != nil {
				e.logger.Warn("run interrupted", "signal", sig)
				return nil
			}
			return err
		}

		out := cmd.OutOrStdout()
		types := make([]string, 0, len(report.ByType))
		for name := range report.ByType {
			types = append(types, name)
		}
		sort.Strings(types)
		fmt.Fprintf(out, "%d node executions\n", len(report.Visited))
		for _, name := range types {
			fmt.Fprintf(out, "  %-18s %d\n", name, report.ByType[name])
		}
		for _, d := range report.Deferred {
			fmt.Fprintf(out, "pending: node %d (%.3fs left)\n", d.NodeID, d.Remaining)
		}

		if trace {
			overlay := &graph.GraphOverlay{VisitedNodes: report.Visited}
			for _, d := range report.Deferred {
				overlay.Deferred = append(overlay.Deferred, d.NodeID)
			}
			fmt.Fprint(out, graph.GenerateMermaid(report.Script, overlay))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int("ticks", 1, "Number of Tick frames between BeginPlay and EndPlay")
	runCmd.Flags().Float32("dt", 1.0/60, "Frame time in seconds")
	runCmd.Flags().String("scene", "memory", "Scene backend: memory or donburi")
	runCmd.Flags().StringSlice("entity", nil, "Spawn a named entity before BeginPlay (repeatable)")
	runCmd.Flags().Bool("trace", false, "Print a Mermaid graph highlighting executed nodes")
}
