package ports

import (
	"context"

	"github.com/aretw0/agrocalc/pkg/domain"
)

// StatelessEngine defines the reducer surface for cores that do not keep state.
// This is the primary interface used by adapters (e.g., HTTP, MCP) that carry
// the state in each request.
type StatelessEngine interface {
	// Render projects a state into what a presentation layer shows.
	Render(ctx context.Context, state *domain.State) (*domain.View, error)

	// Dispatch applies one event and returns the next state. The input is never mutated.
	Dispatch(ctx context.Context, state *domain.State, event domain.Event) (*domain.State, error)

	// Inspect returns the catalog metadata for introspection.
	Inspect() []domain.ModuleDescriptor
}
