package http

import (
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/locale"
	"github.com/aretw0/agrocalc/pkg/runner"
)

// InfoResponse is the body of GET /info.
type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Modules int    `json:"modules"`
}

// ComputeRequest is the body of the compute and report endpoints.
// Omitted inputs take the field defaults; an empty strategy selects the default one.
type ComputeRequest struct {
	Strategy domain.StrategyID `json:"strategy,omitempty"`
	Inputs   map[string]string `json:"inputs"`
}

// ComputeResponse is the body returned by POST /modules/{id}/compute.
type ComputeResponse struct {
	Module   string            `json:"module"`
	Strategy domain.StrategyID `json:"strategy"`
	Outcome  domain.ResultKind `json:"outcome"`
	Results  []ResultView      `json:"results"`
}

// ResultView is a result entry plus its pt-BR display text.
type ResultView struct {
	domain.Result
	Text string `json:"text"`
}

// DispatchRequest carries the full client state and one event.
type DispatchRequest struct {
	State *domain.State `json:"state"`
	Event domain.Event  `json:"event"`
}

// DispatchResponse is the next state and its rendered view.
type DispatchResponse = runner.Response

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newResultViews(seq domain.ResultSequence) []ResultView {
	out := make([]ResultView, len(seq))
	for i, r := range seq {
		out[i] = ResultView{Result: r, Text: locale.FormatValue(r.Value, r.Unit)}
	}
	return out
}
