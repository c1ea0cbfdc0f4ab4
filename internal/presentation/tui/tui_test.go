package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResults(t *testing.T) {
	out := RenderResults("Desconto de Umidade", domain.ResultSequence{
		domain.Value("Peso/Quantidade Corrigida", domain.Q(953.4884, "kg")),
		domain.Info("A umidade inicial (14%) já é menor ou igual à final (14%). Nenhum desconto aplicado."),
	})
	assert.Contains(t, out, "Desconto de Umidade")
	assert.Contains(t, out, "953,4884 kg")
	assert.Contains(t, out, "Nenhum desconto aplicado.")
}

func TestRenderResults_Failure(t *testing.T) {
	out := RenderResults("x", domain.ResultSequence{{Label: domain.LabelError, Value: "inválido", Kind: domain.ResultError}})
	assert.Contains(t, out, "Erro: inválido")
}

func TestRenderResults_Empty(t *testing.T) {
	assert.Empty(t, RenderResults("x", nil))
}

func TestPrintBanner_PlainWriter(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "v1.0.0")
	assert.Contains(t, buf.String(), "calculadoras agronômicas v1.0.0")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer(60)
	require.NoError(t, err)
	out, err := render("# Título\n\nTexto")
	require.NoError(t, err)
	assert.Contains(t, out, "Texto")
}
