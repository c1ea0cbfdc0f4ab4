/*
Package dsl provides a fluent builder for declaring the input fields of a computation strategy.

Fields are declared in the order they are rendered and validated. Build checks the
declarations (unique names, valid constraints, parseable defaults, choice fields with
options) so a broken catalog fails at startup instead of at the first edit.

Example usage:

	fields := dsl.New().
		Number("ve", "Saturação por bases desejada").Default("70").Percent().
		Number("v", "Saturação por bases atual").Percent().
		Number("ctc", "CTC a pH 7,0").Unit(domain.UnitCmolcPerDm3).Positive().
		Choice("mode", "Aplicação",
			dsl.Option("total", "Área total"),
			dsl.Option("band", "Faixa")).Default("total").
		MustBuild()
*/
package dsl
