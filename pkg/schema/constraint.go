package schema

import (
	"errors"
	"fmt"

	"github.com/aretw0/agrocalc/pkg/domain"
)

// Type defines the contract for a numeric domain check.
type Type interface {
	// Name returns the constraint name (e.g., "positive").
	Name() string
	// Validate checks if a value lies in the domain. The error text is a
	// sentence fragment completed with the field label.
	Validate(value float64) error
}

type boundType struct {
	name     string
	min, max float64
	minOpen  bool
	maxOpen  bool
	hasMax   bool
	reason   string
}

func (t *boundType) Name() string { return t.name }

func (t *boundType) Validate(v float64) error {
	if t.minOpen && v <= t.min || !t.minOpen && v < t.min {
		return errors.New(t.reason)
	}
	if t.hasMax && (t.maxOpen && v >= t.max || !t.maxOpen && v > t.max) {
		return errors.New(t.reason)
	}
	return nil
}

// CustomType applies a user-defined check.
type CustomType struct {
	name     string
	validate func(float64) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(v float64) error { return t.validate(v) }

// Positive accepts values > 0.
func Positive() Type {
	return &boundType{name: string(domain.ConstraintPositive), min: 0, minOpen: true,
		reason: "deve ser maior que zero"}
}

// NonNegative accepts values >= 0.
func NonNegative() Type {
	return &boundType{name: string(domain.ConstraintNonNegative), min: 0,
		reason: "não pode ser negativo"}
}

// Percent accepts values in [0, 100].
func Percent() Type {
	return &boundType{name: string(domain.ConstraintPercent), min: 0, max: 100, hasMax: true,
		reason: "deve estar entre 0 e 100"}
}

// PercentPositive accepts values in (0, 100].
func PercentPositive() Type {
	return &boundType{name: string(domain.ConstraintPercentPositive), min: 0, minOpen: true, max: 100, hasMax: true,
		reason: "deve ser maior que 0 e no máximo 100"}
}

// PercentBelowFull accepts values in [0, 100).
func PercentBelowFull() Type {
	return &boundType{name: string(domain.ConstraintPercentBelowFull), min: 0, max: 100, hasMax: true, maxOpen: true,
		reason: "deve ser maior ou igual a 0 e menor que 100"}
}

// Custom creates a check with a user-defined function.
func Custom(name string, validate func(float64) error) Type {
	return &CustomType{name: name, validate: validate}
}

// For resolves a declared constraint. ConstraintNone resolves to nil.
func For(c domain.Constraint) (Type, error) {
	switch c {
	case domain.ConstraintNone:
		return nil, nil
	case domain.ConstraintPositive:
		return Positive(), nil
	case domain.ConstraintNonNegative:
		return NonNegative(), nil
	case domain.ConstraintPercent:
		return Percent(), nil
	case domain.ConstraintPercentPositive:
		return PercentPositive(), nil
	case domain.ConstraintPercentBelowFull:
		return PercentBelowFull(), nil
	default:
		return nil, fmt.Errorf("unsupported constraint: %s", c)
	}
}
