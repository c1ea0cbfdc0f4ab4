package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/agrocalc/pkg/domain"
)

// TextHandler implements the line-oriented terminal interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
	Prompt   string

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		Prompt: "> ",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// initPump starts the reader goroutine once, so Input can honor ctx while a
// read is blocked.
func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

func (h *TextHandler) pump() {
	defer close(h.inputChan)
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				h.inputChan <- inputResult{err: err}
			}
			return
		}
	}
}

// Output renders the view as Markdown, through the renderer when set.
func (h *TextHandler) Output(ctx context.Context, view *domain.View) error {
	_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(h.render(FormatView(view))))
	return err
}

// Input prompts and reads one sanitized line. Lines rejected by the
// sanitizer are reported and the prompt is repeated.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, h.Prompt)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeInput(strings.TrimSpace(res.text))
			if err != nil {
				fmt.Fprintf(h.Writer, "Erro: %v. Tente novamente.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

// SystemOutput prints a meta-message.
func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(h.render(msg)))
	return err
}

func (h *TextHandler) render(md string) string {
	if h.Renderer == nil {
		return md
	}
	out, err := h.Renderer(md)
	if err != nil {
		return md
	}
	return out
}
