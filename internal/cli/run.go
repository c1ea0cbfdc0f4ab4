package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/agrocalc"
	"github.com/aretw0/agrocalc/internal/presentation/tui"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/runner"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	// JSON switches to JSON-Lines IO.
	JSON bool
	// Plain disables Markdown rendering even on a terminal.
	Plain bool
	// Fragment opens a module at start, like a URL "#ID".
	Fragment string
	// Width wraps rendered Markdown; zero keeps the renderer default.
	Width int
}

// Run starts the interactive loop over in/out and returns the final state.
func Run(ctx context.Context, engine *agrocalc.Engine, logger *slog.Logger, opts RunOptions, in io.Reader, out io.Writer) (*domain.State, error) {
	state := domain.NewState()
	if opts.Fragment != "" {
		next, err := engine.Dispatch(ctx, state, domain.Event{Type: domain.EventFragmentChange, Fragment: opts.Fragment})
		if err != nil {
			return nil, fmt.Errorf("failed to open %q: %w", opts.Fragment, err)
		}
		state = next
	}

	handler, err := newHandler(opts, in, out)
	if err != nil {
		return nil, err
	}

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(handler),
	)
	return r.Run(ctx, engine, state)
}

func newHandler(opts RunOptions, in io.Reader, out io.Writer) (runner.IOHandler, error) {
	if opts.JSON {
		return runner.NewJSONHandler(in, out), nil
	}
	var hopts []runner.TextHandlerOption
	if !opts.Plain && IsTerminal(out) {
		render, err := tui.NewRenderer(opts.Width)
		if err != nil {
			return nil, fmt.Errorf("failed to create renderer: %w", err)
		}
		hopts = append(hopts, runner.WithTextHandlerRenderer(render))
	}
	return runner.NewTextHandler(in, out, hopts...), nil
}
