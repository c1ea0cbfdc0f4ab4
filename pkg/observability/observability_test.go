package observability

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooks_RecordMetricsAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	m := NewMetrics()
	hooks := Hooks(logger, m)
	ctx := context.Background()

	hooks.OnSelect(ctx, &domain.SelectEvent{To: "LIMING_REQUIREMENT"})
	hooks.OnCompute(ctx, &domain.ComputeEvent{ModuleID: "LIMING_REQUIREMENT", Strategy: "base_saturation", Outcome: domain.ResultValue})
	hooks.OnCompute(ctx, &domain.ComputeEvent{ModuleID: "LIMING_REQUIREMENT", Strategy: "cec_percentage", Outcome: domain.ResultUnsatisfiable})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Selections.WithLabelValues("LIMING_REQUIREMENT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Computations.WithLabelValues("LIMING_REQUIREMENT", "base_saturation", "value")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Computations.WithLabelValues("LIMING_REQUIREMENT", "cec_percentage", "unsatisfiable")))

	out := buf.String()
	assert.Contains(t, out, "msg=module_select")
	assert.Contains(t, out, "level=WARN msg=compute")
}

func TestHooks_WithoutMetrics(t *testing.T) {
	hooks := Hooks(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil)
	assert.NotPanics(t, func() {
		hooks.OnCompute(context.Background(), &domain.ComputeEvent{Outcome: domain.ResultValue})
	})
}

func TestCombine(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{OnSelect: func(context.Context, *domain.SelectEvent) { calls = append(calls, "a") }}
	b := domain.LifecycleHooks{
		OnSelect:  func(context.Context, *domain.SelectEvent) { calls = append(calls, "b") },
		OnCompute: func(context.Context, *domain.ComputeEvent) { calls = append(calls, "b-compute") },
	}

	h := Combine(a, b)
	h.OnSelect(context.Background(), &domain.SelectEvent{})
	h.OnCompute(context.Background(), &domain.ComputeEvent{})
	assert.Equal(t, []string{"a", "b", "b-compute"}, calls)
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.Computations.WithLabelValues("HARVEST_LOSS", "default", "value").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `agrocalc_computations_total{module="HARVEST_LOSS",outcome="value",strategy="default"} 1`), body)
}
