package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/agrocalc/pkg/domain"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ParseAssignments turns "field=value" arguments into a raw input set.
// Values keep their text untouched; "v=" sets an empty value.
func ParseAssignments(args []string) (domain.RawInputSet, error) {
	raw := make(domain.RawInputSet, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid input %q: expected field=value", arg)
		}
		raw[name] = value
	}
	return raw, nil
}

// PrintSystemMessage prints a standardized system message.
func PrintSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
