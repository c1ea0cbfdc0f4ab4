package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/agrocalc/pkg/calculators"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/locale"
	"github.com/aretw0/agrocalc/pkg/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func computedLiming(t *testing.T) *domain.Session {
	t.Helper()
	m := calculators.Liming()
	s := session.New(m)
	var err error
	for k, v := range map[string]string{"v": "50", "ctc": "7", "prnt": "80"} {
		s, err = session.Edit(m, s, k, v)
		require.NoError(t, err)
	}
	s, err = session.Compute(m, s)
	require.NoError(t, err)
	return s
}

func TestProject(t *testing.T) {
	r, err := Project(calculators.Liming(), computedLiming(t))
	require.NoError(t, err)

	assert.Equal(t, calculators.LimingID, r.ModuleID)
	assert.Equal(t, "Saturação por bases", r.StrategyName)
	require.Len(t, r.Inputs, 6, "only the active strategy's fields are projected")
	assert.Equal(t, Entry{Label: "Saturação por Bases Desejada (VE)", Value: "70,00 %"}, r.Inputs[0])
	assert.Equal(t, Entry{Label: "Profundidade de Incorporação", Value: "20,00 cm"}, r.Inputs[4])

	require.Len(t, r.Results, 2)
	assert.Equal(t, Entry{Label: calculators.LabelLimeNeed, Value: "1,40 t/ha"}, r.Results[0])
	assert.Equal(t, Entry{Label: calculators.LabelLimeDose, Value: "1,75 t/ha"}, r.Results[1])
	assert.Len(t, r.Entries(), 8)
}

func TestProject_EditAfterComputeKeepsInputsWithResults(t *testing.T) {
	m := calculators.Liming()
	s := computedLiming(t)
	s, err := session.Edit(m, s, "v", "69")
	require.NoError(t, err)

	r, err := Project(m, s)
	require.NoError(t, err)
	assert.Equal(t, Entry{Label: "Saturação por Bases Atual do Solo (V)", Value: "50,00 %"}, r.Inputs[1],
		"inputs echo the values the results were computed from")
	assert.Equal(t, "1,75 t/ha", r.Results[1].Value)
	assert.Equal(t, "69", s.Raw()["v"], "the edit itself is kept for the next computation")

	s, err = session.Compute(m, s)
	require.NoError(t, err)
	r, err = Project(m, s)
	require.NoError(t, err)
	assert.Equal(t, "69,00 %", r.Inputs[1].Value)
	assert.Equal(t, "0,0875 t/ha", r.Results[1].Value)
}

func TestProject_WithoutResultsEchoesCurrentInputs(t *testing.T) {
	m := calculators.Liming()
	s, err := session.Edit(m, session.New(m), "v", "60")
	require.NoError(t, err)

	r, err := Project(m, s)
	require.NoError(t, err)
	assert.Equal(t, "60,00 %", r.Inputs[1].Value)
	assert.Empty(t, r.Results)
}

func TestProject_ChoiceAndUnparsedInputs(t *testing.T) {
	m := calculators.MoistureDiscount()
	s := session.New(m)
	s, err := session.Edit(m, s, "weight_unit", "kg")
	require.NoError(t, err)
	s, err = session.Edit(m, s, "weight", "abc")
	require.NoError(t, err)
	s, err = session.Compute(m, s)
	require.NoError(t, err)

	r, err := Project(m, s)
	require.NoError(t, err)

	byLabel := map[string]string{}
	for _, e := range r.Inputs {
		byLabel[e.Label] = e.Value
	}
	assert.Equal(t, "kg", byLabel["Unidade do Peso Colhido"])
	assert.Equal(t, "abc", byLabel["Peso/Quantidade Colhida"])

	require.Len(t, r.Results, 1)
	assert.Equal(t, domain.LabelError, r.Results[0].Label)
}

func TestProject_BlankOptionalInput(t *testing.T) {
	m := calculators.SeedQuantity()
	s, err := session.Edit(m, session.New(m), "total_area", "")
	require.NoError(t, err)
	s, err = session.Compute(m, s)
	require.NoError(t, err)

	r, err := Project(m, s)
	require.NoError(t, err)
	assert.Equal(t, "-", r.Inputs[3].Value)
	assert.Len(t, r.Results, 2)
}

func TestProject_Errors(t *testing.T) {
	_, err := Project(calculators.Liming(), nil)
	assert.ErrorIs(t, err, domain.ErrNoActiveModule)

	_, err = Project(calculators.HarvestLoss(), computedLiming(t))
	assert.Error(t, err)
}

func TestProjectedNumbersRoundTrip(t *testing.T) {
	s := computedLiming(t)
	entries := ProjectResults(s.Results)
	for i, res := range s.Results {
		want, _ := res.Number()
		text := strings.TrimSuffix(entries[i].Value, " "+res.Unit)
		got, err := locale.ParseNumber(text)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 0.5e-4)
	}
}

func TestMarkdown(t *testing.T) {
	r, err := Project(calculators.Liming(), computedLiming(t))
	require.NoError(t, err)

	md := Markdown(r)
	assert.True(t, strings.HasPrefix(md, "# Necessidade de Calagem\n"))
	assert.Contains(t, md, "| Calagem Corrigida (Qta) | 1,75 t/ha |")
	assert.Contains(t, md, "## Fórmula")
	assert.Contains(t, md, "## Observações")
}

func TestRender(t *testing.T) {
	r, err := Project(calculators.Liming(), computedLiming(t))
	require.NoError(t, err)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	data, err := Render(r, FormatJSON, now)
	require.NoError(t, err)
	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	_, err = uuid.Parse(doc.ID)
	assert.NoError(t, err)
	assert.True(t, doc.GeneratedAt.Equal(now))
	assert.Equal(t, r.Results, doc.Report.Results)

	data, err = Render(r, FormatYAML, now)
	require.NoError(t, err)
	var ydoc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &ydoc))
	assert.Contains(t, ydoc, "report")

	data, err = Render(r, FormatMarkdown, now)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1,75 t/ha")

	_, err = Render(r, "pdf", now)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"md": FormatMarkdown, "JSON": FormatJSON, "yml": FormatYAML, " yaml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
