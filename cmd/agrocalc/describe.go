package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/agrocalc/internal/cli"
	"github.com/aretw0/agrocalc/internal/presentation/tui"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/runner"
	"github.com/spf13/cobra"
)

var describeJSON bool

var describeCmd = &cobra.Command{
	Use:   "describe <MODULE>",
	Short: "Show the strategies, fields and formula of a calculator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(nil)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if describeJSON {
			m, err := engine.Module(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		}

		state, err := engine.Dispatch(cmd.Context(), domain.NewState(), domain.Event{Type: domain.EventModuleSelect, Module: args[0]})
		if err != nil {
			return err
		}
		view, err := engine.Render(cmd.Context(), state)
		if err != nil {
			return err
		}
		return printMarkdown(out, runner.FormatView(view))
	},
}

func init() {
	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "print the module declaration as JSON")
	rootCmd.AddCommand(describeCmd)
}

// printMarkdown renders md with glamour on a terminal and prints it raw otherwise.
func printMarkdown(w io.Writer, md string) error {
	if cli.IsTerminal(w) {
		render, err := tui.NewRenderer(0)
		if err != nil {
			return err
		}
		if rendered, err := render(md); err == nil {
			md = rendered
		}
	}
	_, err := fmt.Fprint(w, md)
	return err
}
