package dsl

import (
	"fmt"

	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/schema"
)

// Builder collects the fields of one computation strategy in declaration order.
type Builder struct {
	fields []*FieldBuilder
}

// New creates a new field builder.
func New() *Builder {
	return &Builder{}
}

func (b *Builder) add(name, label string, kind domain.FieldKind) *FieldBuilder {
	fb := &FieldBuilder{
		field: domain.FieldSchema{
			Name:  name,
			Label: label,
			Kind:  kind,
		},
		builder: b,
	}
	b.fields = append(b.fields, fb)
	return fb
}

// Number declares a numeric field.
func (b *Builder) Number(name, label string) *FieldBuilder {
	return b.add(name, label, domain.KindNumeric)
}

// Text declares a free text field. Text fields are never validated.
func (b *Builder) Text(name, label string) *FieldBuilder {
	return b.add(name, label, domain.KindText)
}

// Choice declares an enumerated field. The first option is the fallback
// when no default is set.
func (b *Builder) Choice(name, label string, options ...domain.Choice) *FieldBuilder {
	fb := b.add(name, label, domain.KindChoice)
	fb.field.Choices = append(fb.field.Choices, options...)
	return fb
}

// Build returns the declared fields, rejecting inconsistent declarations.
func (b *Builder) Build() ([]domain.FieldSchema, error) {
	fields := make([]domain.FieldSchema, 0, len(b.fields))
	for _, fb := range b.fields {
		fields = append(fields, fb.field)
	}

	if err := schema.CheckFields(fields); err != nil {
		return nil, fmt.Errorf("invalid field declarations: %w", err)
	}

	return fields, nil
}

// MustBuild is like Build but panics on error. Intended for package-level
// catalog declarations.
func (b *Builder) MustBuild() []domain.FieldSchema {
	fields, err := b.Build()
	if err != nil {
		panic(err)
	}
	return fields
}

// Option builds a choice option.
func Option(value, label string) domain.Choice {
	return domain.Choice{Value: value, Label: label}
}
