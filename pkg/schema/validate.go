package schema

import (
	"fmt"
	"strings"

	"github.com/aretw0/agrocalc/pkg/domain"
)

// Validate applies the validation policy to a raw input set.
//
// Pass 1 parses every numeric field in declaration order and reports the first
// one that is not a number; a blank optional field is skipped and stays absent.
// Pass 2 checks the declared constraints in
// declaration order and reports the first violation. Choice fields fall back to
// their default (or first choice) when the raw value is not a declared option.
func Validate(fields []domain.FieldSchema, raw domain.RawInputSet) (Values, *ValidationError) {
	values := Values{m: make(map[string]any, len(fields)), absent: map[string]bool{}}

	for _, f := range fields {
		if f.Kind != domain.KindNumeric {
			continue
		}
		text := raw[f.Name]
		if f.Optional && strings.TrimSpace(text) == "" {
			values.absent[f.Name] = true
			continue
		}
		v, err := ParseDecimal(text)
		if err != nil {
			return Values{}, &ValidationError{
				Key:    f.Name,
				Reason: ParseMessage(f.Label),
				Value:  text,
			}
		}
		values.m[f.Name] = v
	}

	for _, f := range fields {
		switch f.Kind {
		case domain.KindNumeric:
			typ, err := For(f.Constraint)
			if err != nil {
				return Values{}, &ValidationError{Key: f.Name, Reason: err.Error()}
			}
			if typ == nil || values.absent[f.Name] {
				continue
			}
			v := values.m[f.Name].(float64)
			if err := typ.Validate(v); err != nil {
				return Values{}, &ValidationError{
					Key:    f.Name,
					Reason: fmt.Sprintf("%s %s.", f.Label, err.Error()),
					Value:  v,
				}
			}
		case domain.KindChoice:
			values.m[f.Name] = resolveChoice(f, raw[f.Name])
		default:
			values.m[f.Name] = raw[f.Name]
		}
	}

	return values, nil
}

func resolveChoice(f domain.FieldSchema, value string) string {
	if f.HasChoice(value) {
		return value
	}
	if f.Default != "" {
		return f.Default
	}
	if len(f.Choices) > 0 {
		return f.Choices[0].Value
	}
	return value
}
