package domain

import (
	"context"
	"time"
)

// EventType defines the kind of event the runtime reacts to.
type EventType string

const (
	EventFieldEdit      EventType = "field_edit"
	EventStrategySelect EventType = "strategy_select"
	EventModuleSelect   EventType = "module_select"
	EventHome           EventType = "home"
	EventFragmentChange EventType = "fragment_change"
	EventCompute        EventType = "compute"
)

// Event is a single input to the runtime reducer.
// Only the fields relevant to Type are read.
type Event struct {
	Type     EventType  `json:"type"`
	Module   string     `json:"module,omitempty"`
	Strategy StrategyID `json:"strategy,omitempty"`
	Field    string     `json:"field,omitempty"`
	Value    string     `json:"value,omitempty"`
	Fragment string     `json:"fragment,omitempty"`
}

// SelectEvent reports a selection transition.
type SelectEvent struct {
	Timestamp time.Time `json:"timestamp"`
	From      string    `json:"from"`
	To        string    `json:"to"`
}

// ComputeEvent reports a finished computation.
type ComputeEvent struct {
	Timestamp time.Time  `json:"timestamp"`
	ModuleID  string     `json:"module_id"`
	Strategy  StrategyID `json:"strategy"`
	Outcome   ResultKind `json:"outcome"`
}

// LifecycleHooks defines callbacks for runtime observability.
type LifecycleHooks struct {
	OnSelect  func(context.Context, *SelectEvent)
	OnCompute func(context.Context, *ComputeEvent)
}

// Outcome summarizes a sequence for observability: the failure kind, info when
// the computation early-exited, value otherwise.
func Outcome(seq ResultSequence) ResultKind {
	if f, ok := seq.Failure(); ok {
		return f.Kind
	}
	for _, r := range seq {
		if r.Kind == ResultInfo {
			return ResultInfo
		}
	}
	return ResultValue
}
