package schema

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Values is a validated input set. Numeric fields hold float64, text and
// choice fields hold string. It can only be produced by Validate.
type Values struct {
	m      map[string]any
	absent map[string]bool
}

// Float returns a numeric field. Unknown or non-numeric fields return 0.
func (v Values) Float(name string) float64 {
	f, _ := v.m[name].(float64)
	return f
}

// String returns a text or choice field.
func (v Values) String(name string) string {
	s, _ := v.m[name].(string)
	return s
}

// Has reports whether the field was validated.
func (v Values) Has(name string) bool {
	_, ok := v.m[name]
	return ok
}

// Len returns the number of validated fields.
func (v Values) Len() int { return len(v.m) }

// Map returns a copy of the underlying values.
func (v Values) Map() map[string]any {
	out := make(map[string]any, len(v.m))
	for k, val := range v.m {
		out[k] = val
	}
	return out
}

// Decode copies the values into a struct using `mapstructure` tags.
// Every field of out must be present in the set, except optional fields left
// blank, which keep their zero value.
func (v Values) Decode(out any) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		Metadata:    &md,
		ErrorUnused: false,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(v.m); err != nil {
		return fmt.Errorf("failed to decode values: %w", err)
	}
	var missing []string
	for _, name := range md.Unset {
		if !v.absent[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("failed to decode values: missing fields %v", missing)
	}
	return nil
}
