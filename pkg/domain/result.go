package domain

// ResultKind classifies a Result entry.
type ResultKind string

const (
	ResultValue         ResultKind = "value"
	ResultInfo          ResultKind = "info"
	ResultError         ResultKind = "error"
	ResultUnsatisfiable ResultKind = "unsatisfiable"
)

// Labels that mark non-numeric entries.
const (
	LabelError         = "Erro"
	LabelUnsatisfiable = "Correção inviável"
	LabelInfo          = "Info"
)

// Result is one labeled entry of a computation output.
// Value holds either a float64 or a string.
type Result struct {
	Label string     `json:"label" yaml:"label"`
	Value any        `json:"value" yaml:"value"`
	Unit  string     `json:"unit,omitempty" yaml:"unit,omitempty"`
	Kind  ResultKind `json:"kind" yaml:"kind"`
}

// Number returns the numeric value of the entry, if it has one.
func (r Result) Number() (float64, bool) {
	f, ok := r.Value.(float64)
	return f, ok
}

// Quantity returns the entry as a unit-tagged value, if it is numeric.
func (r Result) Quantity() (Quantity, bool) {
	f, ok := r.Number()
	if !ok {
		return Quantity{}, false
	}
	return Q(f, r.Unit), true
}

// IsFailure reports whether the entry is an error marker.
func (r Result) IsFailure() bool {
	return r.Kind == ResultError || r.Kind == ResultUnsatisfiable
}

// ResultSequence is the ordered output of a computation, primary result first.
type ResultSequence []Result

// Failure returns the failure entry when the sequence reports one.
// A failed sequence has exactly one element.
func (s ResultSequence) Failure() (Result, bool) {
	if len(s) == 1 && s[0].IsFailure() {
		return s[0], true
	}
	return Result{}, false
}

// Failed reports whether the sequence is a single failure entry.
func (s ResultSequence) Failed() bool {
	_, ok := s.Failure()
	return ok
}

// Lookup finds the first entry with the given label.
func (s ResultSequence) Lookup(label string) (Result, bool) {
	for _, r := range s {
		if r.Label == label {
			return r, true
		}
	}
	return Result{}, false
}

// Value builds a numeric entry.
func Value(label string, q Quantity) Result {
	return Result{Label: label, Value: q.Value, Unit: q.Unit, Kind: ResultValue}
}

// Text builds a textual (non-numeric, non-error) entry.
func Text(label, text string) Result {
	return Result{Label: label, Value: text, Kind: ResultValue}
}

// Info builds an informational entry for degenerate-but-valid inputs.
func Info(message string) Result {
	return Result{Label: LabelInfo, Value: message, Kind: ResultInfo}
}

// Failure builds the single-entry sequence reporting invalid input.
func Failure(message string) ResultSequence {
	return ResultSequence{{Label: LabelError, Value: message, Kind: ResultError}}
}

// Unsatisfiable builds the single-entry sequence reporting that valid inputs
// cannot be corrected with the declared material.
func Unsatisfiable(message string) ResultSequence {
	return ResultSequence{{Label: LabelUnsatisfiable, Value: message, Kind: ResultUnsatisfiable}}
}
