package main

import (
	"github.com/aretw0/agrocalc/internal/cli"
	"github.com/aretw0/agrocalc/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog declarations and smoke-run every strategy",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(nil)
		if err != nil {
			return err
		}
		modules := engine.Catalog().List()
		if err := validator.ValidateCatalog(modules); err != nil {
			return err
		}
		cli.PrintSystemMessage(cmd.OutOrStdout(), "catalog valid (%d modules)", len(modules))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
