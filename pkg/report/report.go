package report

import (
	"fmt"
	"strings"

	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/locale"
	"github.com/aretw0/agrocalc/pkg/schema"
)

// Entry is one projected (label, formatted value) pair.
type Entry struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Report is the projection of one module session.
type Report struct {
	ModuleID     string            `json:"module_id" yaml:"module_id"`
	Module       string            `json:"module" yaml:"module"`
	Strategy     domain.StrategyID `json:"strategy" yaml:"strategy"`
	StrategyName string            `json:"strategy_name" yaml:"strategy_name"`
	Inputs       []Entry           `json:"inputs" yaml:"inputs"`
	Results      []Entry           `json:"results" yaml:"results"`
	Formula      string            `json:"formula,omitempty" yaml:"formula,omitempty"`
	Notes        []string          `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Raw keeps the unformatted sequence for machine consumers.
	Raw domain.ResultSequence `json:"raw_results,omitempty" yaml:"raw_results,omitempty"`
}

// Entries returns inputs followed by results.
func (r *Report) Entries() []Entry {
	out := make([]Entry, 0, len(r.Inputs)+len(r.Results))
	out = append(out, r.Inputs...)
	return append(out, r.Results...)
}

// Project builds the report of the active strategy of s. Inputs of inactive
// strategies are never projected. When s holds results, the inputs echoed are
// the ones those results were computed from, not later edits.
func Project(m *calc.Module, s *domain.Session) (*Report, error) {
	if s == nil {
		return nil, domain.ErrNoActiveModule
	}
	if s.ModuleID != m.ID {
		return nil, fmt.Errorf("session belongs to %s, not %s", s.ModuleID, m.ID)
	}
	st, err := m.Strategy(s.Strategy)
	if err != nil {
		return nil, err
	}

	r := &Report{
		ModuleID:     m.ID,
		Module:       m.Name,
		Strategy:     st.ID,
		StrategyName: st.Name,
		Formula:      st.Formula,
		Notes:        m.Notes,
		Raw:          s.Results,
	}

	raw := s.Inputs[st.ID]
	if s.Results != nil && s.Computed != nil {
		raw = s.Computed
	}
	for _, f := range st.Fields {
		r.Inputs = append(r.Inputs, Entry{Label: f.Label, Value: formatInput(f, raw[f.Name])})
	}
	r.Results = ProjectResults(s.Results)
	return r, nil
}

// ProjectResults formats a result sequence.
func ProjectResults(seq domain.ResultSequence) []Entry {
	out := make([]Entry, 0, len(seq))
	for _, res := range seq {
		out = append(out, Entry{Label: res.Label, Value: locale.FormatValue(res.Value, res.Unit)})
	}
	return out
}

func formatInput(f domain.FieldSchema, raw string) string {
	switch f.Kind {
	case domain.KindNumeric:
		if f.Optional && strings.TrimSpace(raw) == "" {
			return "-"
		}
		v, err := schema.ParseDecimal(raw)
		if err != nil {
			return raw
		}
		return locale.FormatQuantity(v, f.Unit)
	case domain.KindChoice:
		if !f.HasChoice(raw) {
			raw = f.Default
			if raw == "" && len(f.Choices) > 0 {
				raw = f.Choices[0].Value
			}
		}
		return f.ChoiceLabel(raw)
	default:
		return raw
	}
}
