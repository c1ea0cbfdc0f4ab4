// Package locale formats and parses numbers in the fixed Brazilian Portuguese
// convention used by reports: "." groups thousands, "," separates decimals and
// every number carries between 2 and 4 fraction digits.
package locale

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Tag is the only locale numbers are rendered in.
var Tag = language.BrazilianPortuguese

const (
	MinFractionDigits = 2
	MaxFractionDigits = 4
)

// FormatNumber renders v as "1.234,5678" / "1,75" / "0,00".
func FormatNumber(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	p := message.NewPrinter(Tag)
	return p.Sprint(number.Decimal(v,
		number.MinFractionDigits(MinFractionDigits),
		number.MaxFractionDigits(MaxFractionDigits),
	))
}

// FormatCompact renders v with at most 3 fraction digits and no padding,
// for numbers quoted inside labels and messages: "1", "2,5", "1.500".
func FormatCompact(v float64) string {
	if v == 0 {
		v = 0
	}
	p := message.NewPrinter(Tag)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatQuantity renders a value followed by its unit, separated by a space.
func FormatQuantity(v float64, unit string) string {
	if unit == "" {
		return FormatNumber(v)
	}
	return FormatNumber(v) + " " + unit
}

// FormatValue renders a result value: numbers through FormatNumber, anything
// else as text. The unit is appended to numbers only.
func FormatValue(value any, unit string) string {
	switch v := value.(type) {
	case float64:
		return FormatQuantity(v, unit)
	case float32:
		return FormatQuantity(float64(v), unit)
	case int:
		return FormatQuantity(float64(v), unit)
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// ParseNumber inverts FormatNumber. Grouping separators are ignored.
func ParseNumber(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q: %w", text, err)
	}
	return v, nil
}
