package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/agrocalc/internal/logging"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/report"
)

// Engine is what the runner drives.
type Engine interface {
	Stepper
	ReportState(state *domain.State) (*report.Report, error)
	Now() time.Time
}

// Runner handles the interactive loop of the calculator engine using the
// provided IO. This allows for easy testing and integration with different
// frontends (CLI, TUI, pipes).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler over Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Renderer is applied by the default text handler.
	Renderer ContentRenderer
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run executes the loop until quit, end of input or ctx cancellation, and
// returns the last state. A nil initial state starts at the catalog.
// Engine errors (unknown module, unknown field) are reported to the user and
// never end the loop.
func (r *Runner) Run(ctx context.Context, engine Engine, initial *domain.State) (*domain.State, error) {
	handler := r.resolveHandler()
	state := initial
	if state == nil {
		state = domain.NewState()
	}

	view, err := engine.Render(ctx, state)
	if err != nil {
		return state, fmt.Errorf("render error: %w", err)
	}
	if err := handler.Output(ctx, view); err != nil {
		return state, fmt.Errorf("output error: %w", err)
	}

	for {
		line, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return state, nil
			}
			return state, err
		}

		cmd, err := ParseCommand(line)
		if errors.Is(err, ErrEmptyCommand) {
			continue
		}
		if err != nil {
			r.notify(ctx, handler, "Erro: "+err.Error())
			continue
		}

		switch cmd.Kind {
		case CommandQuit:
			return state, nil

		case CommandHelp:
			r.notify(ctx, handler, HelpText)

		case CommandShow:
			if err := r.show(ctx, engine, handler, state); err != nil {
				return state, err
			}

		case CommandReport:
			r.notify(ctx, handler, r.export(engine, state, cmd.Arg))

		case CommandEvent:
			resp, err := DispatchAndRender(ctx, engine, state, cmd.Event)
			if err != nil {
				r.Logger.Debug("event rejected", "type", cmd.Event.Type, "error", err)
				r.notify(ctx, handler, "Erro: "+err.Error())
				if resp == nil {
					continue
				}
			}
			state = resp.State
			if resp.View != nil {
				if err := handler.Output(ctx, resp.View); err != nil {
					return state, fmt.Errorf("output error: %w", err)
				}
			}
		}
	}
}

func (r *Runner) show(ctx context.Context, engine Engine, handler IOHandler, state *domain.State) error {
	view, err := engine.Render(ctx, state)
	if err != nil {
		return fmt.Errorf("render error: %w", err)
	}
	if err := handler.Output(ctx, view); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}

func (r *Runner) export(engine Engine, state *domain.State, formatName string) string {
	format := report.FormatMarkdown
	if formatName != "" {
		f, err := report.ParseFormat(formatName)
		if err != nil {
			return "Erro: " + err.Error()
		}
		format = f
	}
	rep, err := engine.ReportState(state)
	if err != nil {
		return "Erro: " + err.Error()
	}
	data, err := report.Render(rep, format, engine.Now())
	if err != nil {
		return "Erro: " + err.Error()
	}
	return string(data)
}

func (r *Runner) notify(ctx context.Context, handler IOHandler, msg string) {
	if err := handler.SystemOutput(ctx, msg); err != nil {
		r.Logger.Warn("system output failed", "error", err)
	}
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	// Memoize to prevent creating new pumps on subsequent Run calls.
	r.Handler = NewTextHandler(os.Stdin, os.Stdout, WithTextHandlerRenderer(r.Renderer))
	return r.Handler
}
