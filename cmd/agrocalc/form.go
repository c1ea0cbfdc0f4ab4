package main

import (
	"fmt"
	"os"

	"github.com/aretw0/agrocalc/internal/cli"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/spf13/cobra"
)

var formStrategy string

var formCmd = &cobra.Command{
	Use:   "form <MODULE>",
	Short: "Fill a calculator in an interactive form",
	Long: `Opens the fields of one strategy as a terminal form. Numbers are checked
as you type; the results are printed when the form is submitted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cli.IsTerminal(os.Stdout) {
			return fmt.Errorf("form needs an interactive terminal; use 'calc' instead")
		}
		engine, err := newEngine(nil)
		if err != nil {
			return err
		}
		m, err := engine.Module(args[0])
		if err != nil {
			return err
		}
		st, err := m.Strategy(domain.StrategyID(formStrategy))
		if err != nil {
			return err
		}

		raw, err := cli.RunForm(cmd.Context(), m.Name, st, st.Defaults())
		if err != nil {
			return err
		}
		seq, err := engine.Compute(cmd.Context(), m.ID, st.ID, raw)
		if err != nil {
			return err
		}
		printResults(os.Stdout, m.Name, seq)
		return nil
	},
}

func init() {
	formCmd.Flags().StringVarP(&formStrategy, "strategy", "s", "", "strategy ID (default: the module's first)")
	rootCmd.AddCommand(formCmd)
}
