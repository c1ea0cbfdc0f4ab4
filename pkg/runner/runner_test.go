package runner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/agrocalc"
	"github.com/aretw0/agrocalc/pkg/calculators"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *agrocalc.Engine {
	t.Helper()
	eng, err := agrocalc.New(agrocalc.WithClock(func() time.Time {
		return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	}))
	require.NoError(t, err)
	return eng
}

func runScript(t *testing.T, script string) (*domain.State, string) {
	t.Helper()
	var out bytes.Buffer
	r := runner.NewRunner(runner.WithInputHandler(runner.NewTextHandler(strings.NewReader(script), &out)))
	state, err := r.Run(context.Background(), newEngine(t), nil)
	require.NoError(t, err)
	return state, out.String()
}

func TestRunner_LimingSession(t *testing.T) {
	state, out := runScript(t, strings.Join([]string{
		"select LIMING_REQUIREMENT",
		"set v 50",
		"set ctc 7",
		"set prnt 80",
		"compute",
		"report",
		"quit",
		"select HARVEST_LOSS",
	}, "\n")+"\n")

	assert.Equal(t, calculators.LimingID, state.Selection)
	require.NotNil(t, state.Session)
	assert.Contains(t, out, "# Calculadoras agronômicas")
	assert.Contains(t, out, "Calagem Corrigida (Qta):** 1,75 t/ha")
	assert.Less(t, strings.Index(out, "Necessidade de Calcário (NC)"), strings.Index(out, "Calagem Corrigida (Qta)"))
	assert.Contains(t, out, "Resultados")
	assert.NotContains(t, out, "Perdas na Colheita")
}

func TestRunner_ErrorsDoNotStopTheLoop(t *testing.T) {
	state, out := runScript(t, strings.Join([]string{
		"compute",
		"select NOPE",
		"dance",
		"select HARVEST_LOSS",
		"set nope 1",
		"report",
	}, "\n")+"\n")

	assert.Equal(t, calculators.HarvestLossID, state.Selection)
	assert.Contains(t, out, "Erro: no active module")
	assert.Contains(t, out, "Erro: module not found")
	assert.Contains(t, out, `unknown command "dance"`)
	assert.Contains(t, out, "Erro: field not found: default.nope")
}

func TestRunner_FragmentAndHome(t *testing.T) {
	state, out := runScript(t, "#MOISTURE_DISCOUNT\nhome\n")
	assert.False(t, state.Selected())
	assert.Contains(t, out, "Desconto de Umidade")
}

func TestRunner_StrategySwitch(t *testing.T) {
	state, _ := runScript(t, "select LIMING_REQUIREMENT\nstrategy cec_percentage\n")
	require.NotNil(t, state.Session)
	assert.Equal(t, calculators.StrategyCECPercentage, state.Session.Strategy)
}

func TestRunner_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	r := runner.NewRunner(runner.WithInputHandler(runner.NewJSONHandler(strings.NewReader("home\n"), &out)))
	_, err := r.Run(ctx, newEngine(t), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_JSONHandler(t *testing.T) {
	script := strings.Join([]string{
		`{"type":"module_select","module":"TRAVEL_SPEED"}`,
		`{"type":"field_edit","field":"distance","value":"50"}`,
		"set time 36",
		"compute",
		"report json",
	}, "\n")

	var out bytes.Buffer
	r := runner.NewRunner(runner.WithInputHandler(runner.NewJSONHandler(strings.NewReader(script), &out)))
	state, err := r.Run(context.Background(), newEngine(t), nil)
	require.NoError(t, err)
	require.NotNil(t, state.Session)
	require.NotEmpty(t, state.Session.Results)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	var views, messages int
	var last runner.Message
	for _, line := range lines {
		var msg runner.Message
		require.NoError(t, json.Unmarshal([]byte(line), &msg), line)
		switch msg.Type {
		case "view":
			views++
		case "message":
			messages++
			last = msg
		}
	}
	assert.Equal(t, 5, views)
	assert.Equal(t, 1, messages)
	assert.Contains(t, last.Text, `"generated_at": "2024-01-02T03:04:05Z"`)
}
