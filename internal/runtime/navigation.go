package runtime

import (
	"context"
	"log/slog"

	"github.com/aretw0/agrocalc/internal/logging"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/ports"
)

// Navigator keeps a state in sync with an external fragment.
// It is single-threaded: callers must not dispatch concurrently.
type Navigator struct {
	engine      *Engine
	fragment    ports.Fragment
	state       *domain.State
	ctx         context.Context
	lastErr     error
	logger      *slog.Logger
	unsubscribe func()
}

// NavigatorOption configures the Navigator.
type NavigatorOption func(*Navigator)

// WithNavigatorLogger configures the navigator's logger.
func WithNavigatorLogger(logger *slog.Logger) NavigatorOption {
	return func(n *Navigator) {
		n.logger = logger
	}
}

// NewNavigator creates a navigator. Call Start before dispatching.
func NewNavigator(engine *Engine, fragment ports.Fragment, opts ...NavigatorOption) *Navigator {
	n := &Navigator{
		engine:   engine,
		fragment: fragment,
		state:    domain.NewState(),
		ctx:      context.Background(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Start reads the fragment (a valid one wins) and subscribes to its changes.
func (n *Navigator) Start(ctx context.Context) *domain.State {
	n.ctx = ctx
	n.onFragment(n.fragment.Get())
	if n.unsubscribe == nil {
		n.unsubscribe = n.fragment.Subscribe(n.onFragment)
	}
	return n.state
}

// Stop removes the fragment subscription.
func (n *Navigator) Stop() {
	if n.unsubscribe != nil {
		n.unsubscribe()
		n.unsubscribe = nil
	}
}

// State returns the current state. Callers must treat it as read-only.
func (n *Navigator) State() *domain.State {
	return n.state
}

func (n *Navigator) onFragment(fragment string) {
	next, err := n.engine.Dispatch(n.ctx, n.state, domain.Event{
		Type:     domain.EventFragmentChange,
		Fragment: fragment,
	})
	if err != nil {
		n.lastErr = err
		n.logger.Error("fragment change failed", "fragment", fragment, "err", err)
		return
	}
	n.state = next
}

// Dispatch applies an event. Selections are applied and then written to the
// fragment; the change notification re-enters the reducer and keeps the
// session because the selection already matches.
func (n *Navigator) Dispatch(ctx context.Context, ev domain.Event) (*domain.State, error) {
	n.ctx = ctx
	n.lastErr = nil

	next, err := n.engine.Dispatch(ctx, n.state, ev)
	if err != nil {
		return n.state, err
	}
	n.state = next

	switch ev.Type {
	case domain.EventModuleSelect:
		n.fragment.Set(next.Selection)
	case domain.EventHome:
		n.fragment.Set("")
	}

	return n.state, n.lastErr
}

// Render renders the current state.
func (n *Navigator) Render(ctx context.Context) (*domain.View, error) {
	return n.engine.Render(ctx, n.state)
}
