package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotANumber is returned when raw text is not a finite decimal number.
var ErrNotANumber = errors.New("not a number")

// ParseDecimal parses user-entered text as a decimal number.
// Surrounding whitespace is ignored and a single comma is accepted as the
// decimal separator when the text has no dot ("2,5" == "2.5").
// Empty text and non-finite values (NaN, Inf) are rejected.
func ParseDecimal(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, ErrNotANumber
	}
	if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotANumber
	}
	return v, nil
}

// ParseMessage is the reason reported for a field whose text does not parse.
func ParseMessage(label string) string {
	return fmt.Sprintf("Por favor, insira um valor numérico válido para %s.", label)
}
