package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/schema"
	"github.com/charmbracelet/huh"
)

// FormField binds one strategy field to its huh widget.
type FormField struct {
	Name  string
	Value *string
	Field huh.Field
}

// BuildFields creates one widget per field, seeded from raw: a select for
// choices and a text input otherwise. Numeric inputs reject text that does
// not parse, with the same message the calculators report.
func BuildFields(st calc.Strategy, raw domain.RawInputSet) []FormField {
	out := make([]FormField, 0, len(st.Fields))
	for _, f := range st.Fields {
		value := raw[f.Name]
		ptr := &value
		title := f.Label
		if f.Unit != "" {
			title = fmt.Sprintf("%s (%s)", f.Label, f.Unit)
		}

		var field huh.Field
		if f.Kind == domain.KindChoice {
			opts := make([]huh.Option[string], len(f.Choices))
			for i, c := range f.Choices {
				opts[i] = huh.NewOption(c.Label, c.Value)
			}
			field = huh.NewSelect[string]().Title(title).Options(opts...).Value(ptr)
		} else {
			in := huh.NewInput().Title(title).Value(ptr)
			if f.Kind == domain.KindNumeric {
				in = in.Validate(NumericValidator(f))
			}
			field = in
		}
		out = append(out, FormField{Name: f.Name, Value: ptr, Field: field})
	}
	return out
}

// NumericValidator checks that the text parses as a decimal number. Domain
// constraints are left to the calculator so the user sees them in the results.
func NumericValidator(f domain.FieldSchema) func(string) error {
	return func(s string) error {
		if f.Optional && strings.TrimSpace(s) == "" {
			return nil
		}
		if _, err := schema.ParseDecimal(s); err != nil {
			return fmt.Errorf("%s", schema.ParseMessage(f.Label))
		}
		return nil
	}
}

// RunForm shows the form for st and returns the edited inputs.
func RunForm(ctx context.Context, title string, st calc.Strategy, raw domain.RawInputSet) (domain.RawInputSet, error) {
	fields := BuildFields(st, raw)
	widgets := make([]huh.Field, len(fields))
	for i, f := range fields {
		widgets[i] = f.Field
	}

	form := huh.NewForm(huh.NewGroup(widgets...).Title(title).Description(st.Name))
	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}

	out := raw.Clone()
	if out == nil {
		out = make(domain.RawInputSet, len(fields))
	}
	for _, f := range fields {
		out[f.Name] = *f.Value
	}
	return out, nil
}
