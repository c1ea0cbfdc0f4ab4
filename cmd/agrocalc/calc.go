package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/agrocalc/internal/cli"
	"github.com/aretw0/agrocalc/internal/presentation/tui"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/locale"
	"github.com/aretw0/agrocalc/pkg/report"
	"github.com/spf13/cobra"
)

var (
	calcStrategy string
	calcReport   string
	calcForm     bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <MODULE> [field=value ...]",
	Short: "Run a calculator once",
	Long: `Runs one strategy of a calculator over field=value inputs. Omitted fields
take their defaults. Numbers accept a comma as decimal separator ("2,5").

With --form the inputs are edited in an interactive form first.
With --report the result is exported (markdown, json or yaml).`,
	Example: `  agrocalc calc LIMING_REQUIREMENT v=50 ctc=7 prnt=80
  agrocalc calc LIMING_REQUIREMENT --strategy cec_percentage ca=1 mg=0,3 ctc=5 cao=30 mgo=10 prnt=80
  agrocalc calc MOISTURE_DISCOUNT weight=1000 moisture=18 --report json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(nil)
		if err != nil {
			return err
		}
		m, err := engine.Module(args[0])
		if err != nil {
			return err
		}
		st, err := m.Strategy(domain.StrategyID(calcStrategy))
		if err != nil {
			return err
		}
		raw, err := cli.ParseAssignments(args[1:])
		if err != nil {
			return err
		}

		if calcForm {
			if !cli.IsTerminal(os.Stdout) {
				return fmt.Errorf("--form needs an interactive terminal")
			}
			merged := st.Defaults()
			for k, val := range raw {
				merged[k] = val
			}
			raw, err = cli.RunForm(cmd.Context(), m.Name, st, merged)
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		if calcReport != "" {
			format, err := report.ParseFormat(calcReport)
			if err != nil {
				return err
			}
			rep, err := engine.Report(cmd.Context(), m.ID, st.ID, raw)
			if err != nil {
				return err
			}
			data, err := report.Render(rep, format, engine.Now())
			if err != nil {
				return err
			}
			if format == report.FormatMarkdown {
				return printMarkdown(out, string(data))
			}
			_, err = out.Write(data)
			return err
		}

		seq, err := engine.Compute(cmd.Context(), m.ID, st.ID, raw)
		if err != nil {
			return err
		}
		printResults(out, m.Name, seq)
		if seq.Failed() {
			return fmt.Errorf("%s: %s", m.ID, domain.Outcome(seq))
		}
		return nil
	},
}

func init() {
	calcCmd.Flags().StringVarP(&calcStrategy, "strategy", "s", "", "strategy ID (default: the module's first)")
	calcCmd.Flags().StringVarP(&calcReport, "report", "r", "", "export a report: markdown, json or yaml")
	calcCmd.Flags().BoolVar(&calcForm, "form", false, "edit the inputs in an interactive form")
	rootCmd.AddCommand(calcCmd)
}

func printResults(w io.Writer, title string, seq domain.ResultSequence) {
	if cli.IsTerminal(w) {
		fmt.Fprintln(w, tui.RenderResults(title, seq))
		return
	}
	for _, r := range seq {
		fmt.Fprintf(w, "%s: %s\n", r.Label, locale.FormatValue(r.Value, r.Unit))
	}
}
