package calc

import (
	"errors"
	"fmt"

	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/schema"
)

// Module is one entry of the calculator catalog.
type Module struct {
	domain.ModuleDescriptor
	Strategies []Strategy `json:"strategies"`
	Notes      []string   `json:"notes,omitempty"`
}

// Strategy looks up a strategy by ID. An empty ID selects the default.
func (m *Module) Strategy(id domain.StrategyID) (Strategy, error) {
	if id == "" {
		return m.Default(), nil
	}
	for _, s := range m.Strategies {
		if s.ID == id {
			return s, nil
		}
	}
	return Strategy{}, fmt.Errorf("%w: %s/%s", domain.ErrStrategyNotFound, m.ID, id)
}

// Default returns the first strategy.
func (m *Module) Default() Strategy {
	if len(m.Strategies) == 0 {
		return Strategy{}
	}
	return m.Strategies[0]
}

// StrategyIDs lists the strategy identifiers in declaration order.
func (m *Module) StrategyIDs() []domain.StrategyID {
	ids := make([]domain.StrategyID, len(m.Strategies))
	for i, s := range m.Strategies {
		ids[i] = s.ID
	}
	return ids
}

// Run computes with the given strategy.
func (m *Module) Run(id domain.StrategyID, raw domain.RawInputSet) (domain.ResultSequence, error) {
	s, err := m.Strategy(id)
	if err != nil {
		return nil, err
	}
	return s.Run(raw), nil
}

// Check verifies the module definition: identity, at least one strategy,
// unique strategy IDs, a compute function and consistent field schemas.
func (m *Module) Check() error {
	var errs []error
	if m.ID == "" {
		errs = append(errs, &schema.ValidationError{Key: "id", Reason: "module id is required"})
	}
	if len(m.Strategies) == 0 {
		errs = append(errs, &schema.ValidationError{Key: m.ID, Reason: "module has no strategies"})
	}

	seen := make(map[domain.StrategyID]bool, len(m.Strategies))
	for _, s := range m.Strategies {
		key := fmt.Sprintf("%s/%s", m.ID, s.ID)
		if s.ID == "" {
			errs = append(errs, &schema.ValidationError{Key: key, Reason: "strategy id is required"})
		}
		if seen[s.ID] {
			errs = append(errs, &schema.ValidationError{Key: key, Reason: "duplicate strategy id"})
		}
		seen[s.ID] = true
		if s.Compute == nil {
			errs = append(errs, &schema.ValidationError{Key: key, Reason: "strategy has no compute function"})
		}
		if err := schema.CheckFields(s.Fields); err != nil {
			for _, fe := range schema.ValidationErrors(err) {
				var ve *schema.ValidationError
				if errors.As(fe, &ve) {
					errs = append(errs, &schema.ValidationError{Key: key + "." + ve.Key, Reason: ve.Reason, Value: ve.Value})
				}
			}
		}
	}

	if len(errs) > 0 {
		return &schema.AggregateError{Errors: errs}
	}
	return nil
}
