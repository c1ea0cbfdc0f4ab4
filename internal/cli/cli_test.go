package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/agrocalc/internal/logging"
	"github.com/aretw0/agrocalc/pkg/calculators"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	raw, err := ParseAssignments([]string{"v=50", "ctc = 7", "note=a=b", "empty="})
	require.NoError(t, err)
	assert.Equal(t, domain.RawInputSet{"v": "50", "ctc": " 7", "note": "a=b", "empty": ""}, raw)

	_, err = ParseAssignments([]string{"v"})
	assert.Error(t, err)
	_, err = ParseAssignments([]string{"=3"})
	assert.Error(t, err)
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestPrintSystemMessage(t *testing.T) {
	var buf bytes.Buffer
	PrintSystemMessage(&buf, "server on %d", 8080)
	assert.Equal(t, ">>> server on 8080\n", buf.String())
}

func TestNewEngine_RecordsMetrics(t *testing.T) {
	m := observability.NewMetrics()
	eng, err := NewEngine(logging.NewNop(), m)
	require.NoError(t, err)

	_, err = eng.Compute(context.Background(), calculators.TravelSpeedID, "", domain.RawInputSet{"time": "36"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Computations.WithLabelValues(calculators.TravelSpeedID, "default", "value")))
}

func TestRun_Fragment(t *testing.T) {
	eng, err := NewEngine(logging.NewNop(), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	state, err := Run(context.Background(), eng, logging.NewNop(), RunOptions{Fragment: "#HARVEST_LOSS"},
		strings.NewReader("set grains 10\ncompute\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, calculators.HarvestLossID, state.Selection)
	require.NotNil(t, state.Session)
	require.Len(t, state.Session.Results, 3)
	assert.Equal(t, "Perda na Colheita", state.Session.Results[1].Label)
	assert.Contains(t, out.String(), "Perdas na Colheita")
}

func TestRun_UnknownFragmentStartsHome(t *testing.T) {
	eng, err := NewEngine(logging.NewNop(), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	state, err := Run(context.Background(), eng, logging.NewNop(), RunOptions{Fragment: "#NOPE", JSON: true}, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.False(t, state.Selected())
	assert.Contains(t, out.String(), `"type":"view"`)
}

func TestBuildFields(t *testing.T) {
	st := calculators.CoffeeLiming().Default()
	fields := BuildFields(st, st.Defaults())
	require.Len(t, fields, len(st.Fields))

	for i, f := range fields {
		assert.Equal(t, st.Fields[i].Name, f.Name)
		assert.Equal(t, st.Fields[i].Default, *f.Value)
		assert.NotNil(t, f.Field)
	}
}

func TestNumericValidator(t *testing.T) {
	validate := NumericValidator(domain.FieldSchema{Label: "PRNT"})
	assert.NoError(t, validate("80"))
	assert.NoError(t, validate("0,5"))
	err := validate("abc")
	require.Error(t, err)
	assert.Equal(t, "Por favor, insira um valor numérico válido para PRNT.", err.Error())
	assert.Error(t, validate(""))

	optional := NumericValidator(domain.FieldSchema{Label: "Total de Hectares", Optional: true})
	assert.NoError(t, optional(""))
	assert.NoError(t, optional("  "))
	assert.Error(t, optional("cem"))
}
