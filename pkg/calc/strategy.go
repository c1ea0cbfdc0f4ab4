package calc

import (
	"fmt"
	"math"

	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/schema"
)

// DefaultStrategy is the identifier used by modules that offer a single strategy.
const DefaultStrategy domain.StrategyID = "default"

// MsgUnexpected is reported when a computation cannot complete.
const MsgUnexpected = "Não foi possível concluir o cálculo com os valores informados."

// ComputeFunc maps validated inputs to an ordered result sequence.
// It must be pure: equal inputs always produce equal sequences.
type ComputeFunc func(in schema.Values) domain.ResultSequence

// Strategy is one way of computing a module's result.
type Strategy struct {
	ID      domain.StrategyID    `json:"id"`
	Name    string               `json:"name"`
	Fields  []domain.FieldSchema `json:"fields"`
	Formula string               `json:"formula,omitempty"`
	Compute ComputeFunc          `json:"-"`
}

// Field looks up a declared field by name.
func (s Strategy) Field(name string) (domain.FieldSchema, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return domain.FieldSchema{}, false
}

// Defaults returns a raw input set seeded from the field defaults.
func (s Strategy) Defaults() domain.RawInputSet {
	return domain.Defaults(s.Fields)
}

// Run validates raw and computes. Validation failures, panics and non-finite
// results all come back as a single failure entry; nothing escapes as a panic.
func (s Strategy) Run(raw domain.RawInputSet) (seq domain.ResultSequence) {
	values, verr := schema.Validate(s.Fields, raw)
	if verr != nil {
		return domain.Failure(verr.Reason)
	}

	defer func() {
		if r := recover(); r != nil {
			seq = domain.Failure(MsgUnexpected)
		}
	}()

	seq = s.Compute(values)
	if len(seq) == 0 {
		return domain.Failure(MsgUnexpected)
	}
	for _, r := range seq {
		if f, ok := r.Number(); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return domain.Failure(MsgUnexpected)
		}
	}
	return seq
}

// Typed adapts a function over a typed input struct into a ComputeFunc.
// Fields of T are filled from the validated values via `mapstructure` tags.
func Typed[T any](fn func(T) domain.ResultSequence) ComputeFunc {
	return func(in schema.Values) domain.ResultSequence {
		var args T
		if err := in.Decode(&args); err != nil {
			panic(fmt.Errorf("decode inputs: %w", err))
		}
		return fn(args)
	}
}
