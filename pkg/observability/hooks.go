package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/agrocalc/pkg/domain"
)

// Hooks returns lifecycle hooks that log every transition and, when m is not
// nil, record it in the metrics.
func Hooks(logger *slog.Logger, m *Metrics) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSelect: func(ctx context.Context, e *domain.SelectEvent) {
			logger.Info("module_select", "from", e.From, "to", e.To)
			if m != nil {
				m.Selections.WithLabelValues(e.To).Inc()
			}
		},
		OnCompute: func(ctx context.Context, e *domain.ComputeEvent) {
			level := slog.LevelInfo
			if e.Outcome == domain.ResultError || e.Outcome == domain.ResultUnsatisfiable {
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "compute",
				"module", e.ModuleID,
				"strategy", e.Strategy,
				"outcome", e.Outcome,
			)
			if m != nil {
				m.Computations.WithLabelValues(e.ModuleID, string(e.Strategy), string(e.Outcome)).Inc()
			}
		},
	}
}

// Combine fans every event out to all hooks, in order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSelect: func(ctx context.Context, e *domain.SelectEvent) {
			for _, h := range hooks {
				if h.OnSelect != nil {
					h.OnSelect(ctx, e)
				}
			}
		},
		OnCompute: func(ctx context.Context, e *domain.ComputeEvent) {
			for _, h := range hooks {
				if h.OnCompute != nil {
					h.OnCompute(ctx, e)
				}
			}
		},
	}
}
