package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/hexrune/internal/dto"
	"github.com/aretw0/hexrune/internal/presentation/graph"
	"github.com/aretw0/hexrune/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <asset>",
	Short: "Describe a stored script",
	Long:  `Prints the bindings, nodes and links of a script as Markdown (rendered on a terminal), JSON or YAML.`,
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

		out := cmd.OutOrStdout()
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(dto.FromScript(args[0], s))
		case "yaml":
			enc := yaml.NewEncoder(out)
			defer enc.Close()
			return enc.Encode(dto.FromScript(args[0], s))
		case "markdown", "md":
			return writeMarkdown(out, graph.GenerateMarkdown(args[0], s))
		}
		return fmt.Errorf("unknown format %q", format)
	},
}

// writeMarkdown renders through glamour when out is an interactive terminal.
func writeMarkdown(out io.Writer, md string) error {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		render, err := tui.NewRenderer(0)
		if err != nil {
			return err
		}
		rendered, err := render(md)
		if err != nil {
			return err
		}
		md = rendered
	}
	_, err := io.WriteString(out, md)
	return err
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("format", "markdown", "Output format: markdown, json or yaml")
}
