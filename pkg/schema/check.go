package schema

import (
	"github.com/aretw0/agrocalc/pkg/domain"
)

// CheckFields validates the field definitions of one strategy.
// It returns an AggregateError listing every problem found.
func CheckFields(fields []domain.FieldSchema) error {
	var errs []error
	seen := make(map[string]bool, len(fields))

	for _, f := range fields {
		if f.Name == "" {
			errs = append(errs, &ValidationError{Key: f.Label, Reason: "name is required"})
			continue
		}
		if seen[f.Name] {
			errs = append(errs, &ValidationError{Key: f.Name, Reason: "duplicate field name"})
		}
		seen[f.Name] = true

		switch f.Kind {
		case domain.KindNumeric:
			if _, err := For(f.Constraint); err != nil {
				errs = append(errs, &ValidationError{Key: f.Name, Reason: err.Error()})
			}
			if f.Default != "" {
				if _, err := ParseDecimal(f.Default); err != nil {
					errs = append(errs, &ValidationError{Key: f.Name, Reason: "default is not a number", Value: f.Default})
				}
			}
		case domain.KindChoice:
			if len(f.Choices) == 0 {
				errs = append(errs, &ValidationError{Key: f.Name, Reason: "choice field without choices"})
				continue
			}
			if f.Default != "" && !f.HasChoice(f.Default) {
				errs = append(errs, &ValidationError{Key: f.Name, Reason: "default is not one of the choices", Value: f.Default})
			}
		case domain.KindText:
		default:
			errs = append(errs, &ValidationError{Key: f.Name, Reason: "unsupported kind", Value: string(f.Kind)})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
