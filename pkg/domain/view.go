package domain

// StrategyOption is one entry of a module's strategy selector.
type StrategyOption struct {
	ID   StrategyID `json:"id"`
	Name string     `json:"name"`
}

// FieldView is a field paired with the raw text currently entered for it.
type FieldView struct {
	FieldSchema
	Value string `json:"value"`
}

// View is what a presentation layer renders for a state.
// With nothing selected only Catalog is set.
type View struct {
	Selection  string             `json:"selection"`
	Catalog    []ModuleDescriptor `json:"catalog,omitempty"`
	Module     *ModuleDescriptor  `json:"module,omitempty"`
	Strategies []StrategyOption   `json:"strategies,omitempty"`
	Strategy   StrategyID         `json:"strategy,omitempty"`
	Fields     []FieldView        `json:"fields,omitempty"`
	Formula    string             `json:"formula,omitempty"`
	Notes      []string           `json:"notes,omitempty"`
	Results    ResultSequence     `json:"results,omitempty"`
}

// Home reports whether the view is the catalog screen.
func (v *View) Home() bool {
	return v.Module == nil
}
