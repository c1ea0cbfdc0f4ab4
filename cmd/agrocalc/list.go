package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "modules"},
	Short:   "List the calculators in catalog order",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(nil)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if listJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(engine.Modules())
		}
		for _, d := range engine.Modules() {
			fmt.Fprintf(out, "%-32s %s\n", d.ID, d.Name)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print the catalog as JSON")
	rootCmd.AddCommand(listCmd)
}
