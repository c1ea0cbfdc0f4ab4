package calculators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_Order(t *testing.T) {
	want := []string{
		LimingID,
		CoffeeLimingID,
		MagnesiumAppliedID,
		SeedQuantityID,
		SeederRegulationID,
		SowingTimeID,
		TravelSpeedID,
		SprayingSpeedID,
		NozzleRegulationID,
		TankDosageID,
		SpreaderCalibrationID,
		BackpackSprayerID,
		SoybeanYieldID,
		FlowerAbortionID,
		CoffeeYieldID,
		HarvestLossID,
		MoistureDiscountID,
	}

	modules := All()
	require.Len(t, modules, len(want))
	for i, m := range modules {
		assert.Equal(t, want[i], m.ID)
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Description)
		assert.NoError(t, m.Check(), m.ID)
	}
}

func TestAll_FreshCopies(t *testing.T) {
	a, b := All(), All()
	a[0].Strategies[0].Fields[0].Default = "changed"
	assert.NotEqual(t, "changed", b[0].Strategies[0].Fields[0].Default)
}

func TestAll_DefaultsCompute(t *testing.T) {
	// Every strategy opens with values that compute: the form is never
	// seeded with a set that fails validation.
	for _, m := range All() {
		for _, s := range m.Strategies {
			seq := s.Run(s.Defaults())
			require.NotEmpty(t, seq, "%s/%s", m.ID, s.ID)
			assert.False(t, seq.Failed(), "%s/%s: %v", m.ID, s.ID, seq)
			for _, f := range s.Fields {
				assert.NotEmpty(t, f.Default, "%s/%s.%s has no default", m.ID, s.ID, f.Name)
			}
		}
	}
}
