package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/hexrune/internal/cli"
	"github.com/aretw0/hexrune/internal/presentation/tui"
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <asset>",
	Short: "Create a starter script",
	Long:  `Writes a starter script that greets on BeginPlay, warns about slow frames on Tick and says goodbye on EndPlay.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		defer e.close()

		ctx := cmd.Context()
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			if _, err := e.engine.Store().Load(ctx, args[0]); err == nil {
				return fmt.Errorf("script %q already exists (use --force to overwrite)", args[0])
			} else if !errors.Is(err, domain.ErrScriptNotFound) {
				return err
			}
		}

		s := e.engine.NewScript()
		if err := cli.BuildDemo(s); err != nil {
			return err
		}
		if err := e.engine.Save(ctx, args[0], s); err != nil {
			return err
		}

		if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %q (%d nodes, %d bytes)\n", args[0], len(s.Nodes()), s.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().BoolP("force", "f", false, "Overwrite an existing script")
	newCmd.Flags().BoolP("quiet", "q", false, "Skip the banner")
}
