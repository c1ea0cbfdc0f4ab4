package agrocalc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/agrocalc/internal/logging"
	"github.com/aretw0/agrocalc/internal/runtime"
	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/calculators"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/ports"
	"github.com/aretw0/agrocalc/pkg/registry"
	"github.com/aretw0/agrocalc/pkg/report"
)

// Engine is the high-level entry point of the library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	catalog ports.Catalog
	modules []*calc.Module
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	now     func() time.Time
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithModules replaces the built-in catalog.
func WithModules(modules ...*calc.Module) Option {
	return func(e *Engine) {
		e.modules = modules
	}
}

// WithClock overrides the time source used by hooks and reports.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New initializes an engine over the built-in catalog.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.modules == nil {
		eng.modules = calculators.All()
	}

	reg, err := registry.New(eng.modules...)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	eng.catalog = reg

	eng.runtime = runtime.NewEngine(reg,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithClock(eng.now),
	)
	return eng, nil
}

// Catalog returns the module catalog.
func (e *Engine) Catalog() ports.Catalog {
	return e.catalog
}

// Modules returns the catalog metadata in display order.
func (e *Engine) Modules() []domain.ModuleDescriptor {
	return e.catalog.Descriptors()
}

// Module looks up a module by ID.
func (e *Engine) Module(id string) (*calc.Module, error) {
	return e.catalog.Lookup(id)
}

// Compute runs one strategy of a module over raw inputs, without any session.
// An empty strategy selects the module's default.
func (e *Engine) Compute(ctx context.Context, moduleID string, strategy domain.StrategyID, raw domain.RawInputSet) (domain.ResultSequence, error) {
	m, err := e.catalog.Lookup(moduleID)
	if err != nil {
		return nil, err
	}
	st, err := m.Strategy(strategy)
	if err != nil {
		return nil, err
	}

	// Start from defaults so omitted fields behave like untouched form fields.
	merged := st.Defaults()
	for k, v := range raw {
		merged[k] = v
	}

	seq := st.Run(merged)
	if e.hooks.OnCompute != nil {
		e.hooks.OnCompute(ctx, &domain.ComputeEvent{
			Timestamp: e.now(),
			ModuleID:  m.ID,
			Strategy:  st.ID,
			Outcome:   domain.Outcome(seq),
		})
	}
	e.logger.Debug("computed", "module", m.ID, "strategy", st.ID, "outcome", domain.Outcome(seq))
	return seq, nil
}

// Report computes and projects in one call.
func (e *Engine) Report(ctx context.Context, moduleID string, strategy domain.StrategyID, raw domain.RawInputSet) (*report.Report, error) {
	m, err := e.catalog.Lookup(moduleID)
	if err != nil {
		return nil, err
	}
	st, err := m.Strategy(strategy)
	if err != nil {
		return nil, err
	}
	seq, err := e.Compute(ctx, moduleID, st.ID, raw)
	if err != nil {
		return nil, err
	}

	inputs := st.Defaults()
	for k, v := range raw {
		inputs[k] = v
	}
	return report.Project(m, &domain.Session{
		ModuleID: m.ID,
		Strategy: st.ID,
		Inputs:   map[domain.StrategyID]domain.RawInputSet{st.ID: inputs},
		Results:  seq,
		Computed: inputs,
	})
}

// ReportState projects the session held by state.
func (e *Engine) ReportState(state *domain.State) (*report.Report, error) {
	if !state.Selected() || state.Session == nil {
		return nil, domain.ErrNoActiveModule
	}
	m, err := e.catalog.Lookup(state.Selection)
	if err != nil {
		return nil, err
	}
	return report.Project(m, state.Session)
}

// Dispatch applies an event to state and returns the next state.
func (e *Engine) Dispatch(ctx context.Context, state *domain.State, event domain.Event) (*domain.State, error) {
	return e.runtime.Dispatch(ctx, state, event)
}

// Render projects state into a view.
func (e *Engine) Render(ctx context.Context, state *domain.State) (*domain.View, error) {
	return e.runtime.Render(ctx, state)
}

// Inspect returns the catalog metadata for introspection tools.
func (e *Engine) Inspect() []domain.ModuleDescriptor {
	return e.runtime.Inspect()
}

// Runtime exposes the stateless reducer for adapters.
func (e *Engine) Runtime() ports.StatelessEngine {
	return e.runtime
}

// Navigate binds the engine to an external fragment. The fragment is read
// immediately; the returned navigator must be stopped by the caller.
func (e *Engine) Navigate(ctx context.Context, fragment ports.Fragment) *runtime.Navigator {
	nav := runtime.NewNavigator(e.runtime, fragment, runtime.WithNavigatorLogger(e.logger))
	nav.Start(ctx)
	return nav
}

// Now returns the engine's clock reading.
func (e *Engine) Now() time.Time {
	return e.now()
}
