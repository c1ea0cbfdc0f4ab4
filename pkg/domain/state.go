package domain

// Session is the working state of the active module.
// Every strategy keeps its own raw inputs; only the active one is rendered,
// validated and projected.
type Session struct {
	ModuleID string                     `json:"module_id"`
	Strategy StrategyID                 `json:"strategy"`
	Inputs   map[StrategyID]RawInputSet `json:"inputs"`
	Results  ResultSequence             `json:"results,omitempty"`

	// Computed is the raw input set Results were produced from. Edits after
	// a computation change Inputs but never Computed.
	Computed RawInputSet `json:"computed,omitempty"`
}

// Raw returns the raw inputs of the active strategy.
func (s *Session) Raw() RawInputSet {
	if s == nil {
		return nil
	}
	return s.Inputs[s.Strategy]
}

// Clone returns a deep copy so reducers never mutate their input.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := &Session{
		ModuleID: s.ModuleID,
		Strategy: s.Strategy,
		Inputs:   make(map[StrategyID]RawInputSet, len(s.Inputs)),
	}
	for id, raw := range s.Inputs {
		out.Inputs[id] = raw.Clone()
	}
	if s.Results != nil {
		out.Results = append(ResultSequence(nil), s.Results...)
	}
	out.Computed = s.Computed.Clone()
	return out
}

// State represents the current snapshot of the application.
type State struct {
	// Selection is the active module ID, or empty when nothing is selected.
	Selection string `json:"selection"`

	// Session holds the active module's inputs and last results.
	Session *Session `json:"session,omitempty"`
}

// NewState creates the "nothing selected" state.
func NewState() *State {
	return &State{}
}

// Selected reports whether a module is active.
func (s *State) Selected() bool {
	return s != nil && s.Selection != ""
}

// Snapshot returns a deep copy of the state.
func (s *State) Snapshot() *State {
	if s == nil {
		return NewState()
	}
	return &State{
		Selection: s.Selection,
		Session:   s.Session.Clone(),
	}
}
