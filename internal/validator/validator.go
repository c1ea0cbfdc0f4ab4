package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/registry"
)

// SampleValue fills numeric and text fields without a default during the smoke run.
const SampleValue = "1"

// ValidateCatalog checks the module declarations (via the registry) and then
// smoke-runs every strategy over its defaults, with SampleValue for empty
// fields. A strategy fails the smoke run when it cannot complete at all.
func ValidateCatalog(modules []*calc.Module) error {
	if _, err := registry.New(modules...); err != nil {
		return err
	}

	var errors []string
	for _, m := range modules {
		for _, st := range m.Strategies {
			seq := st.Run(SampleInputs(st))
			if f, ok := seq.Failure(); ok && f.Value == calc.MsgUnexpected {
				errors = append(errors, fmt.Sprintf("%s/%s: smoke run did not complete", m.ID, st.ID))
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

// SampleInputs returns the defaults of st with every empty required field
// filled. Optional fields stay blank.
func SampleInputs(st calc.Strategy) domain.RawInputSet {
	raw := st.Defaults()
	for _, f := range st.Fields {
		if raw[f.Name] != "" || f.Optional {
			continue
		}
		if f.Kind == domain.KindChoice && len(f.Choices) > 0 {
			raw[f.Name] = f.Choices[0].Value
			continue
		}
		raw[f.Name] = SampleValue
	}
	return raw
}
