package runner

import (
	"context"

	"github.com/aretw0/agrocalc/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents the current screen.
	Output(ctx context.Context, view *domain.View) error

	// Input reads one command line from the user.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message (errors, help, exported reports).
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer transforms Markdown before it reaches the terminal.
// This allows TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
