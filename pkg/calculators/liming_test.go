package calculators

import (
	"testing"

	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func number(t *testing.T, seq domain.ResultSequence, label string) float64 {
	t.Helper()
	r, ok := seq.Lookup(label)
	require.True(t, ok, "missing result %q in %v", label, seq)
	v, ok := r.Number()
	require.True(t, ok, "result %q is not numeric", label)
	return v
}

func TestLiming_BaseSaturation(t *testing.T) {
	m := Liming()
	seq, err := m.Run(StrategyBaseSaturation, domain.RawInputSet{
		"ve": "70", "v": "50", "ctc": "7", "prnt": "80", "depth": "20", "coverage": "100",
	})
	require.NoError(t, err)
	require.False(t, seq.Failed(), "unexpected failure: %v", seq)

	assert.InDelta(t, 1.4, number(t, seq, LabelLimeNeed), 1e-9)
	assert.InDelta(t, 1.75, number(t, seq, LabelLimeDose), 1e-9)
	require.Len(t, seq, 2)
	assert.Equal(t, LabelLimeNeed, seq[0].Label)
	assert.Equal(t, LabelLimeDose, seq[1].Label)
}

func TestLiming_BaseSaturationScalesWithDepthAndCoverage(t *testing.T) {
	seq, err := Liming().Run(StrategyBaseSaturation, domain.RawInputSet{
		"ve": "70", "v": "50", "ctc": "7", "prnt": "80", "depth": "40", "coverage": "50",
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.75, number(t, seq, LabelLimeDose), 1e-9)
}

func TestLiming_EarlyExit(t *testing.T) {
	for _, v := range []string{"60", "70"} {
		seq, err := Liming().Run(StrategyBaseSaturation, domain.RawInputSet{
			"ve": "60", "v": v, "ctc": "7", "prnt": "80", "depth": "20", "coverage": "100",
		})
		require.NoError(t, err)

		require.Len(t, seq, 3, "V=%s", v)
		assert.Equal(t, LabelLimeNeed, seq[0].Label)
		assert.Equal(t, LabelLimeDose, seq[1].Label)
		assert.Equal(t, 0.0, number(t, seq, LabelLimeNeed), "V=%s", v)
		assert.Equal(t, 0.0, number(t, seq, LabelLimeDose), "V=%s", v)
		assert.Equal(t, domain.ResultInfo, domain.Outcome(seq))
		assert.Equal(t, "Info", seq[2].Label)
		assert.Contains(t, seq[2].Value, "("+v+"%)")
		assert.Contains(t, seq[2].Value, "(60%)")
	}
}

func TestLiming_DefaultsCompute(t *testing.T) {
	m := Liming()
	seq, err := m.Run(StrategyBaseSaturation, m.Default().Defaults())
	require.NoError(t, err)
	assert.InDelta(t, 1.4, number(t, seq, LabelLimeNeed), 1e-9)
	assert.InDelta(t, 1.75, number(t, seq, LabelLimeDose), 1e-9)

	st, err := m.Strategy(StrategyCECPercentage)
	require.NoError(t, err)
	seq = st.Run(st.Defaults())
	assert.False(t, seq.Failed(), "unexpected failure: %v", seq)
}

func cecInputs(overrides map[string]string) domain.RawInputSet {
	raw := domain.RawInputSet{
		"ctc": "10", "ca": "3", "mg": "0,5", "ca_target": "60", "mg_target": "15",
		"cao": "40", "mgo": "10", "prnt": "80",
	}
	for k, v := range overrides {
		raw[k] = v
	}
	return raw
}

func TestLiming_CECPercentageTakesMaxNotSum(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		wantBase  string
	}{
		{"calcium dominates", nil, LabelCaDose},
		{"magnesium dominates", map[string]string{"mgo": "5"}, LabelMgDose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Liming().Run(StrategyCECPercentage, cecInputs(tt.overrides))
			require.NoError(t, err)
			require.False(t, seq.Failed(), "unexpected failure: %v", seq)

			caDose := number(t, seq, LabelCaDose)
			mgDose := number(t, seq, LabelMgDose)
			base := number(t, seq, LabelLimeNeed)

			assert.Greater(t, caDose, 0.0)
			assert.Greater(t, mgDose, 0.0)
			assert.InDelta(t, number(t, seq, tt.wantBase), base, 1e-12)
			assert.NotEqual(t, caDose+mgDose, base)
			assert.InDelta(t, base*100/80, number(t, seq, LabelLimeDose), 1e-12)
		})
	}
}

func TestLiming_CECPercentageValues(t *testing.T) {
	seq, err := Liming().Run(StrategyCECPercentage, cecInputs(nil))
	require.NoError(t, err)

	// Ca: (6 − 3) × 400 = 1200 kg/ha ÷ (0,40 × 0,7143)
	// Mg: (1,5 − 0,5) × 240 = 240 kg/ha ÷ (0,10 × 0,60304)
	assert.InDelta(t, 3.0, number(t, seq, LabelCaDeficit), 1e-12)
	assert.InDelta(t, 1.0, number(t, seq, LabelMgDeficit), 1e-12)
	assert.InDelta(t, 1200/(0.4*0.7143)/1000, number(t, seq, LabelCaDose), 1e-9)
	assert.InDelta(t, 240/(0.1*0.60304)/1000, number(t, seq, LabelMgDose), 1e-9)
	assert.InDelta(t, 1200/(0.4*0.7143)/1000, number(t, seq, LabelLimeNeed), 1e-9)
	assert.Equal(t, LabelLimeNeed, seq[0].Label)
	assert.Equal(t, LabelLimeDose, seq[1].Label)
	assert.InDelta(t, 1200/(0.4*0.7143)/1000*100/80, number(t, seq, LabelLimeDose), 1e-9)
}

func TestLiming_CECPercentageUnsatisfiable(t *testing.T) {
	seq, err := Liming().Run(StrategyCECPercentage, cecInputs(map[string]string{"mgo": "0"}))
	require.NoError(t, err)

	f, ok := seq.Failure()
	require.True(t, ok)
	assert.Equal(t, domain.ResultUnsatisfiable, f.Kind)
	assert.Contains(t, f.Value, "Mg")
	assert.Contains(t, f.Value, "240,00 kg/ha")

	seq, _ = Liming().Run(StrategyCECPercentage, cecInputs(map[string]string{"cao": "0"}))
	f, ok = seq.Failure()
	require.True(t, ok)
	assert.Equal(t, domain.ResultUnsatisfiable, f.Kind)
	assert.Contains(t, f.Value, "CaO")
}

func TestLiming_CECPercentageZeroOxideWithoutDeficit(t *testing.T) {
	// Mg already above target: a material without MgO is fine.
	seq, err := Liming().Run(StrategyCECPercentage, cecInputs(map[string]string{"mg": "2", "mgo": "0"}))
	require.NoError(t, err)
	require.False(t, seq.Failed(), "unexpected failure: %v", seq)
	assert.Equal(t, 0.0, number(t, seq, LabelMgDose))
	assert.Greater(t, number(t, seq, LabelLimeDose), 0.0)
}

func TestLiming_CECPercentageNothingToCorrect(t *testing.T) {
	seq, err := Liming().Run(StrategyCECPercentage, cecInputs(map[string]string{"ca": "6", "mg": "1,5"}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, number(t, seq, LabelLimeNeed))
	assert.Equal(t, 0.0, number(t, seq, LabelLimeDose))
	assert.Equal(t, domain.ResultInfo, domain.Outcome(seq))
}

func TestLiming_ValidationIsPerStrategy(t *testing.T) {
	// Only the active strategy's fields are validated: the CEC inputs carry no "ve".
	seq, err := Liming().Run(StrategyCECPercentage, cecInputs(nil))
	require.NoError(t, err)
	assert.False(t, seq.Failed())

	seq, err = Liming().Run(StrategyBaseSaturation, cecInputs(nil))
	require.NoError(t, err)
	f, ok := seq.Failure()
	require.True(t, ok)
	assert.Equal(t, domain.ResultError, f.Kind)
}

func TestLiming_Idempotent(t *testing.T) {
	m := Liming()
	for _, tc := range []struct {
		id  domain.StrategyID
		raw domain.RawInputSet
	}{
		{StrategyBaseSaturation, domain.RawInputSet{"ve": "70", "v": "50", "ctc": "7", "prnt": "80", "depth": "20", "coverage": "100"}},
		{StrategyCECPercentage, cecInputs(nil)},
		{StrategyCECPercentage, cecInputs(map[string]string{"mgo": "0"})},
	} {
		first, _ := m.Run(tc.id, tc.raw)
		second, _ := m.Run(tc.id, tc.raw)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s not idempotent (-first +second):\n%s", tc.id, diff)
		}
	}
}
