package runtime

import (
	"context"

	"github.com/aretw0/agrocalc/pkg/domain"
)

// Render projects state into a view. Only the active strategy's fields are shown.
func (e *Engine) Render(ctx context.Context, state *domain.State) (*domain.View, error) {
	if !state.Selected() {
		return &domain.View{Catalog: e.catalog.Descriptors()}, nil
	}

	snap := state.Snapshot()
	m, err := e.active(snap)
	if err != nil {
		return nil, err
	}
	st, err := m.Strategy(snap.Session.Strategy)
	if err != nil {
		return nil, err
	}

	desc := m.ModuleDescriptor
	view := &domain.View{
		Selection: m.ID,
		Module:    &desc,
		Strategy:  st.ID,
		Formula:   st.Formula,
		Notes:     m.Notes,
		Results:   snap.Session.Results,
	}
	for _, s := range m.Strategies {
		view.Strategies = append(view.Strategies, domain.StrategyOption{ID: s.ID, Name: s.Name})
	}
	raw := snap.Session.Raw()
	for _, f := range st.Fields {
		view.Fields = append(view.Fields, domain.FieldView{FieldSchema: f, Value: raw[f.Name]})
	}
	return view, nil
}
