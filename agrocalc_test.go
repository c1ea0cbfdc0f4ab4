package agrocalc_test

import (
	"context"
	"testing"

	"github.com/aretw0/agrocalc"
	"github.com/aretw0/agrocalc/pkg/adapters/memory"
	"github.com/aretw0/agrocalc/pkg/calculators"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Compute(t *testing.T) {
	var outcomes []domain.ResultKind
	eng, err := agrocalc.New(agrocalc.WithLifecycleHooks(domain.LifecycleHooks{
		OnCompute: func(_ context.Context, ev *domain.ComputeEvent) { outcomes = append(outcomes, ev.Outcome) },
	}))
	require.NoError(t, err)
	ctx := context.Background()

	seq, err := eng.Compute(ctx, calculators.LimingID, calculators.StrategyCECPercentage, domain.RawInputSet{
		"ctc": "10", "ca": "3", "mg": "0.5", "cao": "40", "mgo": "0", "prnt": "80",
	})
	require.NoError(t, err)
	f, ok := seq.Failure()
	require.True(t, ok)
	assert.Equal(t, domain.ResultUnsatisfiable, f.Kind)
	assert.Equal(t, []domain.ResultKind{domain.ResultUnsatisfiable}, outcomes)

	_, err = eng.Compute(ctx, "NOPE", "", nil)
	assert.ErrorIs(t, err, domain.ErrModuleNotFound)

	_, err = eng.Compute(ctx, calculators.LimingID, "nope", nil)
	assert.ErrorIs(t, err, domain.ErrStrategyNotFound)
}

func TestEngine_Report(t *testing.T) {
	eng, err := agrocalc.New()
	require.NoError(t, err)

	r, err := eng.Report(context.Background(), calculators.HarvestLossID, "", domain.RawInputSet{
		"grains": "30",
	})
	require.NoError(t, err)
	assert.Equal(t, "15,00 grãos/m²", r.Results[0].Value)
	assert.Equal(t, "27,00 kg/ha", r.Results[1].Value)
	assert.Equal(t, "0,45 sc/ha (60kg)", r.Results[2].Value)
	assert.Equal(t, "30,00", r.Inputs[0].Value)
	assert.Equal(t, "2,00 m²", r.Inputs[1].Value, "omitted fields fall back to defaults")
}

func TestEngine_CustomCatalog(t *testing.T) {
	eng, err := agrocalc.New(agrocalc.WithModules(calculators.TravelSpeed(), calculators.HarvestLoss()))
	require.NoError(t, err)
	assert.Len(t, eng.Modules(), 2)

	_, err = agrocalc.New(agrocalc.WithModules(calculators.TravelSpeed(), calculators.TravelSpeed()))
	assert.Error(t, err)
}

func TestEngine_NavigateAndReportState(t *testing.T) {
	eng, err := agrocalc.New()
	require.NoError(t, err)
	ctx := context.Background()

	frag := memory.NewFragment(calculators.TravelSpeedID)
	nav := eng.Navigate(ctx, frag)
	defer nav.Stop()

	require.Equal(t, calculators.TravelSpeedID, nav.State().Selection)

	for _, ev := range []domain.Event{
		{Type: domain.EventFieldEdit, Field: "time", Value: "36"},
		{Type: domain.EventCompute},
	} {
		_, err := nav.Dispatch(ctx, ev)
		require.NoError(t, err)
	}

	r, err := eng.ReportState(nav.State())
	require.NoError(t, err)
	assert.Equal(t, "5,00 km/h", r.Results[0].Value)

	_, err = eng.ReportState(domain.NewState())
	assert.ErrorIs(t, err, domain.ErrNoActiveModule)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, agrocalc.Version)
	assert.NotContains(t, agrocalc.Version, "\n")
}
