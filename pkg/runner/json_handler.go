package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/balance/internal/dto"
	"github.com/aretw0/balance/pkg/domain"
)

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
type JSONHandler struct {
	Reader       *bufio.Reader
	Writer       io.Writer
	Encoder      *json.Encoder
	MaxInputSize int
}

// systemMessage is the line emitted by SystemOutput.
type systemMessage struct {
	System string `json:"system"`
}

// JSONHandlerOption defines configuration for JSONHandler.
type JSONHandlerOption func(*JSONHandler)

// WithJSONHandlerMaxInputSize overrides the line size limit.
func WithJSONHandlerMaxInputSize(limit int) JSONHandlerOption {
	return func(h *JSONHandler) {
		h.MaxInputSize = limit
	}
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer, opts ...JSONHandlerOption) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Output emits the snapshot as a single JSON line.
func (h *JSONHandler) Output(ctx context.Context, s *domain.Session) error {
	return h.Encoder.Encode(dto.NewSnapshot(s))
}

// Input reads one line. It accepts a JSON string ("set ()") or raw text (set ()).
// Lines that fail sanitization are reported as system messages and skipped.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := h.Reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			return "", err
		}
		text = strings.TrimRight(text, "\r\n")

		var val string
		if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &val); err == nil {
			text = val
		}

		clean, err := SanitizeInputLimit(text, h.MaxInputSize)
		if err != nil {
			if err := h.SystemOutput(ctx, fmt.Sprintf("%v; please try again", err)); err != nil {
				return "", err
			}
			continue
		}
		return clean, nil
	}
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(systemMessage{System: msg})
}
