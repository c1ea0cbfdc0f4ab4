package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/agrocalc/pkg/calc"
)

// HomeNode is the Mermaid ID of the catalog screen.
const HomeNode = "home"

// Overlay contains dynamic state data to visualize on the graph.
type Overlay struct {
	// Current is the selected module ID; empty highlights the catalog.
	Current  string
	Strategy string
}

// GenerateMermaid produces a Mermaid flowchart of the navigation:
// - Catalog: ((Circle)), linked to every module by its fragment
// - Module: [Rectangle]
// - Strategy: [[Subroutine]], only drawn for modules that offer a choice
// The overlay, when given, highlights the current screen.
func GenerateMermaid(modules []*calc.Module, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	fmt.Fprintf(&sb, "    %s((\"Calculadoras\"))\n", HomeNode)

	for _, m := range modules {
		id := sanitizeMermaidID(m.ID)
		fmt.Fprintf(&sb, "    %s[\"%s\"]\n", id, escapeLabel(m.Name))
		fmt.Fprintf(&sb, "    %s -- \"#%s\" --> %s\n", HomeNode, m.ID, id)

		if len(m.Strategies) < 2 {
			continue
		}
		for _, st := range m.Strategies {
			sid := strategyNode(m.ID, string(st.ID))
			fmt.Fprintf(&sb, "    %s[[\"%s\"]]\n", sid, escapeLabel(st.Name))
			fmt.Fprintf(&sb, "    %s -.-> %s\n", id, sid)
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef current fill:#bbf7d0,stroke:#15803d,stroke-width:4px,color:#000;\n")
		current := HomeNode
		if overlay.Current != "" {
			current = sanitizeMermaidID(overlay.Current)
		}
		fmt.Fprintf(&sb, "    class %s current;\n", current)
		if overlay.Current != "" && overlay.Strategy != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", strategyNode(overlay.Current, overlay.Strategy))
		}
	}

	return sb.String()
}

func strategyNode(moduleID, strategy string) string {
	return sanitizeMermaidID(moduleID + "__" + strategy)
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_").Replace(id)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
