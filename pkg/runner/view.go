package runner

import (
	"fmt"
	"strings"

	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/report"
)

// FormatView renders a view as Markdown: the catalog when nothing is
// selected, otherwise the module form followed by its last results.
func FormatView(view *domain.View) string {
	var b strings.Builder
	if view.Home() {
		b.WriteString("# Calculadoras agronômicas\n\n")
		for i, d := range view.Catalog {
			fmt.Fprintf(&b, "%d. **%s** (`%s`)\n", i+1, d.Name, d.ID)
		}
		b.WriteString("\nUse `select <ID>` para abrir uma calculadora.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "# %s\n\n", view.Module.Name)
	if view.Module.Description != "" {
		b.WriteString(view.Module.Description + "\n\n")
	}

	if len(view.Strategies) > 1 {
		b.WriteString("**Método de cálculo:**\n\n")
		for _, s := range view.Strategies {
			mark := " "
			if s.ID == view.Strategy {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s (`%s`)\n", mark, s.Name, s.ID)
		}
		b.WriteString("\n")
	}

	b.WriteString("| Campo | Descrição | Valor |\n|---|---|---|\n")
	for _, f := range view.Fields {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", f.Name, fieldLabel(f.FieldSchema), fieldValue(f))
	}

	if len(view.Results) > 0 {
		b.WriteString("\n## Resultados\n\n")
		for _, e := range report.ProjectResults(view.Results) {
			fmt.Fprintf(&b, "- **%s:** %s\n", e.Label, e.Value)
		}
	}

	if view.Formula != "" {
		fmt.Fprintf(&b, "\n> %s\n", view.Formula)
	}
	for _, n := range view.Notes {
		fmt.Fprintf(&b, "\n_%s_\n", n)
	}
	return b.String()
}

func fieldLabel(f domain.FieldSchema) string {
	if f.Unit == "" {
		return f.Label
	}
	return fmt.Sprintf("%s (%s)", f.Label, f.Unit)
}

func fieldValue(f domain.FieldView) string {
	if f.Kind != domain.KindChoice {
		if f.Value == "" {
			return "_vazio_"
		}
		return f.Value
	}
	opts := make([]string, len(f.Choices))
	for i, c := range f.Choices {
		if c.Value == f.Value {
			opts[i] = "**" + c.Value + "**"
		} else {
			opts[i] = c.Value
		}
	}
	return strings.Join(opts, " / ")
}
