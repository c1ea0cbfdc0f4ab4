package session

import (
	"fmt"

	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
)

// New seeds a session for m: the default strategy is active and every strategy
// gets its defaults.
func New(m *calc.Module) *domain.Session {
	s := &domain.Session{
		ModuleID: m.ID,
		Strategy: m.Default().ID,
		Inputs:   make(map[domain.StrategyID]domain.RawInputSet, len(m.Strategies)),
	}
	for _, st := range m.Strategies {
		s.Inputs[st.ID] = st.Defaults()
	}
	return s
}

// Edit sets the raw text of a field of the active strategy.
// Previous results stay visible until the next computation, still paired with
// the inputs they were computed from.
func Edit(m *calc.Module, s *domain.Session, field, value string) (*domain.Session, error) {
	st, err := m.Strategy(s.Strategy)
	if err != nil {
		return nil, err
	}
	if _, ok := st.Field(field); !ok {
		return nil, fmt.Errorf("%w: %s.%s", domain.ErrFieldNotFound, st.ID, field)
	}

	next := s.Clone()
	raw := next.Inputs[st.ID]
	if raw == nil {
		raw = st.Defaults()
		next.Inputs[st.ID] = raw
	}
	raw[field] = value
	return next, nil
}

// SelectStrategy switches the active strategy. Switching clears the results so
// a sequence produced by one method is never shown under another; re-selecting
// the active strategy is a no-op. Inputs of every strategy are retained.
func SelectStrategy(m *calc.Module, s *domain.Session, id domain.StrategyID) (*domain.Session, error) {
	st, err := m.Strategy(id)
	if err != nil {
		return nil, err
	}

	next := s.Clone()
	if st.ID == s.Strategy {
		return next, nil
	}
	next.Strategy = st.ID
	next.Results = nil
	next.Computed = nil
	if next.Inputs[st.ID] == nil {
		next.Inputs[st.ID] = st.Defaults()
	}
	return next, nil
}

// Compute runs the active strategy over its raw inputs and stores the sequence
// together with a copy of the inputs it was computed from.
func Compute(m *calc.Module, s *domain.Session) (*domain.Session, error) {
	st, err := m.Strategy(s.Strategy)
	if err != nil {
		return nil, err
	}

	next := s.Clone()
	raw := next.Inputs[st.ID]
	next.Results = st.Run(raw)
	next.Computed = raw.Clone()
	return next, nil
}
