package domain

// FieldKind defines how the raw text of a field is interpreted.
type FieldKind string

const (
	KindNumeric FieldKind = "numeric"
	KindText    FieldKind = "text"
	KindChoice  FieldKind = "choice"
)

// Constraint names the numeric domain a field's value must lie in.
// The set is closed; pkg/schema implements the checks.
type Constraint string

const (
	ConstraintNone             Constraint = ""
	ConstraintPositive         Constraint = "positive"           // > 0
	ConstraintNonNegative      Constraint = "non_negative"       // >= 0
	ConstraintPercent          Constraint = "percent"            // [0, 100]
	ConstraintPercentPositive  Constraint = "percent_positive"   // (0, 100]
	ConstraintPercentBelowFull Constraint = "percent_below_full" // [0, 100)
)

// Choice is one option of an enumerated field.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// FieldSchema describes one input of a computation strategy.
type FieldSchema struct {
	Name       string     `json:"name" yaml:"name"`
	Label      string     `json:"label" yaml:"label"`
	Kind       FieldKind  `json:"kind" yaml:"kind"`
	Unit       string     `json:"unit,omitempty" yaml:"unit,omitempty"`
	Choices    []Choice   `json:"choices,omitempty" yaml:"choices,omitempty"`
	Default    string     `json:"default,omitempty" yaml:"default,omitempty"`
	Constraint Constraint `json:"constraint,omitempty" yaml:"constraint,omitempty"`
	// Optional numeric fields may be left blank; they are then absent from
	// the validated set instead of failing to parse.
	Optional bool `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// ChoiceLabel returns the display label of a choice value, or the value itself.
func (f FieldSchema) ChoiceLabel(value string) string {
	for _, c := range f.Choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// HasChoice reports whether value is one of the declared choices.
func (f FieldSchema) HasChoice(value string) bool {
	for _, c := range f.Choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// RawInputSet maps a field name to the text currently entered for it.
type RawInputSet map[string]string

// Clone returns an independent copy.
func (r RawInputSet) Clone() RawInputSet {
	if r == nil {
		return nil
	}
	out := make(RawInputSet, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Defaults seeds a RawInputSet from each field's default.
func Defaults(fields []FieldSchema) RawInputSet {
	raw := make(RawInputSet, len(fields))
	for _, f := range fields {
		raw[f.Name] = f.Default
	}
	return raw
}
