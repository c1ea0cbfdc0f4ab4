package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/agrocalc/pkg/domain"
)

// Message is one JSON-Lines output record.
type Message struct {
	Type string       `json:"type"`
	View *domain.View `json:"view,omitempty"`
	Text string       `json:"text,omitempty"`
}

// JSONHandler implements the IOHandler interface for JSON-Lines communication.
// Each input line is either a command or a raw domain.Event object.
type JSONHandler struct {
	Reader  *bufio.Reader
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Encoder: json.NewEncoder(w),
	}
}

// Output emits the view as a single JSON line.
func (h *JSONHandler) Output(ctx context.Context, view *domain.View) error {
	return h.Encoder.Encode(Message{Type: "view", View: view})
}

// Input reads one line. Blank lines are skipped.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := h.Reader.ReadString('\n')
		text = strings.TrimSpace(text)
		if text != "" {
			return SanitizeInput(text)
		}
		if err != nil {
			return "", err
		}
	}
}

// SystemOutput emits a message record.
func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(Message{Type: "message", Text: msg})
}
