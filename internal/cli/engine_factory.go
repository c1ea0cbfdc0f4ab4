package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/agrocalc"
	"github.com/aretw0/agrocalc/pkg/observability"
)

// NewEngine initializes the engine with standard CLI conventions: every
// selection and computation is logged, and recorded when metrics is not nil.
func NewEngine(logger *slog.Logger, metrics *observability.Metrics) (*agrocalc.Engine, error) {
	engine, err := agrocalc.New(
		agrocalc.WithLogger(logger),
		agrocalc.WithLifecycleHooks(observability.Hooks(logger, metrics)),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
