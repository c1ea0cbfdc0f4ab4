package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	calcStrategy, calcReport, calcForm = "", "", false
	listJSON, describeJSON = false, false
	graphCurrent, graphStrategy = "", ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "LIMING_REQUIREMENT")
	assert.Contains(t, out, "MOISTURE_DISCOUNT")
}

func TestCalc_Plain(t *testing.T) {
	out, err := execute(t, "calc", "LIMING_REQUIREMENT", "v=50", "ctc=7", "prnt=80")
	require.NoError(t, err)
	assert.Equal(t, "Necessidade de Calcário (NC): 1,40 t/ha\nCalagem Corrigida (Qta): 1,75 t/ha\n", out)
}

func TestCalc_DefaultsOnly(t *testing.T) {
	out, err := execute(t, "calc", "TRAVEL_SPEED")
	require.NoError(t, err)
	assert.Equal(t, "Velocidade de Deslocamento: 6,00 km/h\n", out)
}

func TestCalc_Failure(t *testing.T) {
	out, err := execute(t, "calc", "LIMING_REQUIREMENT", "v=abc", "ctc=7", "prnt=80")
	require.Error(t, err)
	assert.Contains(t, out, "Erro: ")
}

func TestCalc_Errors(t *testing.T) {
	_, err := execute(t, "calc", "NOPE")
	assert.Error(t, err)

	_, err = execute(t, "calc", "LIMING_REQUIREMENT", "--strategy", "nope")
	assert.Error(t, err)

	_, err = execute(t, "calc", "LIMING_REQUIREMENT", "v50")
	assert.Error(t, err)
}

func TestCalc_ReportJSON(t *testing.T) {
	out, err := execute(t, "calc", "MOISTURE_DISCOUNT", "weight=1000", "weight_unit=kg", "moisture=18", "--report", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"generated_at"`)
	assert.Contains(t, out, "Desconto de Umidade")
	assert.Contains(t, out, "953,4884 kg")
}

func TestGraph(t *testing.T) {
	out, err := execute(t, "graph", "--current", "LIMING_REQUIREMENT")
	require.NoError(t, err)
	assert.Contains(t, out, "graph LR")
	assert.Contains(t, out, `"#LIMING_REQUIREMENT"`)

	_, err = execute(t, "graph", "--current", "NOPE")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, ">>> catalog valid")
}
