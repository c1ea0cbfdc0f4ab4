package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format selects an export encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported report format: %q", name)
	}
}

// ContentType returns the MIME type of the encoding.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/markdown; charset=utf-8"
	}
}

// Document is the export envelope.
type Document struct {
	ID          string    `json:"id" yaml:"id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Report      *Report   `json:"report" yaml:"report"`
}

// NewDocument wraps r with a fresh identifier.
func NewDocument(r *Report, now time.Time) Document {
	return Document{
		ID:          uuid.NewString(),
		GeneratedAt: now.UTC(),
		Report:      r,
	}
}

// Render encodes r in the given format.
func Render(r *Report, format Format, now time.Time) ([]byte, error) {
	switch format {
	case FormatMarkdown, "":
		return []byte(Markdown(r)), nil
	case FormatJSON:
		data, err := json.MarshalIndent(NewDocument(r, now), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(NewDocument(r, now))
		if err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %q", format)
	}
}

// Markdown renders r as a Markdown document.
func Markdown(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Module)
	if r.StrategyName != "" {
		fmt.Fprintf(&b, "_Método: %s_\n\n", r.StrategyName)
	}

	b.WriteString("## Dados informados\n\n")
	writeTable(&b, r.Inputs)

	b.WriteString("\n## Resultados\n\n")
	if len(r.Results) == 0 {
		b.WriteString("Nenhum cálculo realizado.\n")
	} else {
		writeTable(&b, r.Results)
	}

	if r.Formula != "" {
		b.WriteString("\n## Fórmula\n\n```\n")
		b.WriteString(r.Formula)
		b.WriteString("\n```\n")
	}

	if len(r.Notes) > 0 {
		b.WriteString("\n## Observações\n\n")
		for _, n := range r.Notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
	}

	return b.String()
}

func writeTable(b *strings.Builder, entries []Entry) {
	b.WriteString("| Item | Valor |\n|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(b, "| %s | %s |\n", escapeCell(e.Label), escapeCell(e.Value))
	}
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
