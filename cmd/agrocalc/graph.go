package main

import (
	"fmt"

	"github.com/aretw0/agrocalc/internal/presentation/graph"
	"github.com/spf13/cobra"
)

var (
	graphCurrent  string
	graphStrategy string
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the navigation graph as a Mermaid flowchart",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(nil)
		if err != nil {
			return err
		}

		var overlay *graph.Overlay
		if cmd.Flags().Changed("current") || cmd.Flags().Changed("strategy") {
			if graphCurrent != "" {
				if _, err := engine.Module(graphCurrent); err != nil {
					return err
				}
			}
			overlay = &graph.Overlay{Current: graphCurrent, Strategy: graphStrategy}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(engine.Catalog().List(), overlay))
		return nil
	},
}

func init() {
	graphCmd.Flags().StringVar(&graphCurrent, "current", "", "highlight a module (empty highlights the catalog)")
	graphCmd.Flags().StringVar(&graphStrategy, "strategy", "", "highlight a strategy of the current module")
	rootCmd.AddCommand(graphCmd)
}
