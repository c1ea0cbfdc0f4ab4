package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/agrocalc/internal/logging"
	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/ports"
	"github.com/aretw0/agrocalc/pkg/session"
)

// Engine is the reducer over selection and session state.
type Engine struct {
	catalog ports.Catalog
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	now     func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger configures the logger used for transitions.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock overrides the time source of hook events.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine over the given catalog.
func NewEngine(catalog ports.Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog: catalog,
		logger:  logging.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.StatelessEngine = (*Engine)(nil)

// Inspect returns the catalog metadata.
func (e *Engine) Inspect() []domain.ModuleDescriptor {
	return e.catalog.Descriptors()
}

// Catalog exposes the catalog the engine runs on.
func (e *Engine) Catalog() ports.Catalog {
	return e.catalog
}

// NormalizeFragment strips the leading '#' and surrounding whitespace.
func NormalizeFragment(fragment string) string {
	return strings.TrimPrefix(strings.TrimSpace(fragment), "#")
}

// Dispatch applies one event to state and returns the next state.
func (e *Engine) Dispatch(ctx context.Context, state *domain.State, ev domain.Event) (*domain.State, error) {
	next := state.Snapshot()

	switch ev.Type {
	case domain.EventModuleSelect:
		m, err := e.catalog.Lookup(ev.Module)
		if err != nil {
			return nil, err
		}
		return e.selectModule(ctx, next, m), nil

	case domain.EventHome:
		return e.goHome(ctx, next), nil

	case domain.EventFragmentChange:
		id := NormalizeFragment(ev.Fragment)
		if id == "" {
			return e.goHome(ctx, next), nil
		}
		m, err := e.catalog.Lookup(id)
		if err != nil {
			e.logger.Debug("unknown fragment, going home", "fragment", ev.Fragment)
			return e.goHome(ctx, next), nil
		}
		return e.selectModule(ctx, next, m), nil

	case domain.EventFieldEdit:
		m, err := e.active(next)
		if err != nil {
			return nil, err
		}
		s, err := session.Edit(m, next.Session, ev.Field, ev.Value)
		if err != nil {
			return nil, err
		}
		next.Session = s
		return next, nil

	case domain.EventStrategySelect:
		m, err := e.active(next)
		if err != nil {
			return nil, err
		}
		s, err := session.SelectStrategy(m, next.Session, ev.Strategy)
		if err != nil {
			return nil, err
		}
		if s.Strategy != next.Session.Strategy {
			e.logger.Debug("strategy selected", "module", m.ID, "strategy", s.Strategy)
		}
		next.Session = s
		return next, nil

	case domain.EventCompute:
		m, err := e.active(next)
		if err != nil {
			return nil, err
		}
		s, err := session.Compute(m, next.Session)
		if err != nil {
			return nil, err
		}
		next.Session = s
		e.computed(ctx, m.ID, s)
		return next, nil

	default:
		return nil, &UnknownEventError{Type: ev.Type}
	}
}

// active resolves the selected module, repairing a missing session.
func (e *Engine) active(state *domain.State) (*calc.Module, error) {
	if !state.Selected() {
		return nil, domain.ErrNoActiveModule
	}
	m, err := e.catalog.Lookup(state.Selection)
	if err != nil {
		return nil, fmt.Errorf("active selection: %w", err)
	}
	if state.Session == nil || state.Session.ModuleID != m.ID {
		state.Session = session.New(m)
	}
	return m, nil
}

// selectModule keeps the session when m is already active and seeds a new one otherwise.
func (e *Engine) selectModule(ctx context.Context, state *domain.State, m *calc.Module) *domain.State {
	if state.Selection == m.ID && state.Session != nil && state.Session.ModuleID == m.ID {
		return state
	}
	from := state.Selection
	state.Selection = m.ID
	state.Session = session.New(m)
	e.selected(ctx, from, m.ID)
	return state
}

func (e *Engine) goHome(ctx context.Context, state *domain.State) *domain.State {
	from := state.Selection
	state.Selection = ""
	state.Session = nil
	if from != "" {
		e.selected(ctx, from, "")
	}
	return state
}

func (e *Engine) selected(ctx context.Context, from, to string) {
	e.logger.Debug("selection changed", "from", from, "to", to)
	if e.hooks.OnSelect != nil {
		e.hooks.OnSelect(ctx, &domain.SelectEvent{
			Timestamp: e.now(),
			From:      from,
			To:        to,
		})
	}
}

func (e *Engine) computed(ctx context.Context, moduleID string, s *domain.Session) {
	outcome := domain.Outcome(s.Results)
	e.logger.Debug("computed", "module", moduleID, "strategy", s.Strategy, "outcome", outcome)
	if e.hooks.OnCompute != nil {
		e.hooks.OnCompute(ctx, &domain.ComputeEvent{
			Timestamp: e.now(),
			ModuleID:  moduleID,
			Strategy:  s.Strategy,
			Outcome:   outcome,
		})
	}
}
