package dsl

import "github.com/aretw0/agrocalc/pkg/domain"

// FieldBuilder provides a fluent API for configuring a field.
type FieldBuilder struct {
	field   domain.FieldSchema
	builder *Builder
}

// Unit sets the display unit.
func (f *FieldBuilder) Unit(unit string) *FieldBuilder {
	f.field.Unit = unit
	return f
}

// Default sets the initial raw text of the field.
func (f *FieldBuilder) Default(value string) *FieldBuilder {
	f.field.Default = value
	return f
}

// Constraint sets the numeric domain check.
func (f *FieldBuilder) Constraint(c domain.Constraint) *FieldBuilder {
	f.field.Constraint = c
	return f
}

// Optional lets the field be left blank.
func (f *FieldBuilder) Optional() *FieldBuilder {
	f.field.Optional = true
	return f
}

// Positive requires a value > 0.
func (f *FieldBuilder) Positive() *FieldBuilder {
	return f.Constraint(domain.ConstraintPositive)
}

// NonNegative requires a value >= 0.
func (f *FieldBuilder) NonNegative() *FieldBuilder {
	return f.Constraint(domain.ConstraintNonNegative)
}

// Percent requires a value in [0, 100].
func (f *FieldBuilder) Percent() *FieldBuilder {
	return f.Unit(domain.UnitPercent).Constraint(domain.ConstraintPercent)
}

// PercentPositive requires a value in (0, 100].
func (f *FieldBuilder) PercentPositive() *FieldBuilder {
	return f.Unit(domain.UnitPercent).Constraint(domain.ConstraintPercentPositive)
}

// PercentBelowFull requires a value in [0, 100).
func (f *FieldBuilder) PercentBelowFull() *FieldBuilder {
	return f.Unit(domain.UnitPercent).Constraint(domain.ConstraintPercentBelowFull)
}

// Number starts the next field on the same builder.
func (f *FieldBuilder) Number(name, label string) *FieldBuilder {
	return f.builder.Number(name, label)
}

// Text starts the next field on the same builder.
func (f *FieldBuilder) Text(name, label string) *FieldBuilder {
	return f.builder.Text(name, label)
}

// Choice starts the next field on the same builder.
func (f *FieldBuilder) Choice(name, label string, options ...domain.Choice) *FieldBuilder {
	return f.builder.Choice(name, label, options...)
}

// Build finishes the whole builder.
func (f *FieldBuilder) Build() ([]domain.FieldSchema, error) {
	return f.builder.Build()
}

// MustBuild finishes the whole builder, panicking on error.
func (f *FieldBuilder) MustBuild() []domain.FieldSchema {
	return f.builder.MustBuild()
}

// Schema returns the field declared so far.
func (f *FieldBuilder) Schema() domain.FieldSchema {
	return f.field
}
