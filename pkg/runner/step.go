package runner

import (
	"context"

	"github.com/aretw0/agrocalc/pkg/domain"
)

// Stepper is the reducer half of the engine.
type Stepper interface {
	Dispatch(ctx context.Context, state *domain.State, event domain.Event) (*domain.State, error)
	Render(ctx context.Context, state *domain.State) (*domain.View, error)
}

// Response combines the next state with its view for rich clients (Web, MCP, etc).
type Response struct {
	State *domain.State `json:"state"`
	View  *domain.View  `json:"view"`
}

// DispatchAndRender applies one event and immediately renders the result, so
// clients always receive the screen of the state they just entered.
func DispatchAndRender(ctx context.Context, engine Stepper, state *domain.State, event domain.Event) (*Response, error) {
	next, err := engine.Dispatch(ctx, state, event)
	if err != nil {
		return nil, err
	}
	view, err := engine.Render(ctx, next)
	if err != nil {
		// The state is still returned so the caller can recover.
		return &Response{State: next}, err
	}
	return &Response{State: next, View: view}, nil
}
