package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/agrocalc"
	"github.com/aretw0/agrocalc/pkg/calculators"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	eng, err := agrocalc.New()
	require.NoError(t, err)
	return NewServer(eng, "test")
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestListModules(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleListModules(context.Background(), callRequest("list_modules", nil))
	require.NoError(t, err)

	var list []domain.ModuleDescriptor
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &list))
	assert.Len(t, list, 17)
}

func TestDescribeModule(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleDescribeModule(context.Background(), callRequest("describe_module", map[string]any{"module": calculators.LimingID}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "cec_percentage")

	res, err = s.handleDescribeModule(context.Background(), callRequest("describe_module", map[string]any{"module": "NOPE"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleDescribeModule(context.Background(), callRequest("describe_module", nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestCompute(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.handleCompute(context.Background(), callRequest("compute", nil), ComputeArgs{
		Module:   calculators.LimingID,
		Strategy: string(calculators.StrategyCECPercentage),
		Inputs:   map[string]string{"ca": "1", "mg": "0,3", "ctc": "5", "cao": "30", "mgo": "10", "prnt": "80"},
	})
	require.NoError(t, err)
	assert.Equal(t, calculators.StrategyCECPercentage, resp.Strategy)
	require.Len(t, resp.Results, 6)
	assert.Equal(t, calculators.LabelLimeNeed, resp.Results[0].Label)
	assert.Equal(t, calculators.LabelLimeDose, resp.Results[1].Label)

	_, err = s.handleCompute(context.Background(), callRequest("compute", nil), ComputeArgs{Module: "NOPE"})
	assert.ErrorIs(t, err, domain.ErrModuleNotFound)

	_, err = s.handleCompute(context.Background(), callRequest("compute", nil), ComputeArgs{Module: calculators.LimingID, Strategy: "nope"})
	assert.ErrorIs(t, err, domain.ErrStrategyNotFound)
}

func TestCompute_ValidationReportedInResults(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.handleCompute(context.Background(), callRequest("compute", nil), ComputeArgs{
		Module: calculators.HarvestLossID,
		Inputs: map[string]string{"grains": "x"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ResultError, resp.Outcome)
	require.Len(t, resp.Results, 1)
}

func TestReport(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleReport(context.Background(), callRequest("report", map[string]any{
		"module": calculators.LimingID,
		"inputs": map[string]any{"v": "50", "ctc": "7", "prnt": "80"},
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	text := resultText(t, res)
	assert.Contains(t, text, "Resultados")
	assert.Contains(t, text, "1,75 t/ha")
}
