package main

import (
	"fmt"

	"github.com/aretw0/agrocalc"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "agrocalc %s\n", agrocalc.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
