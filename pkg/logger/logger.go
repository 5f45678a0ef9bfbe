// Package logger provides a colored slog handler for terminal output.
package logger

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// storageMarkers select info messages about persistence, which are shown in green.
var storageMarkers = []string{"persist", "stored", "saved", "loaded"}

// ColorHandler renders records like slog.TextHandler and colors each line by
// level: errors red, warnings yellow, debug gray, storage info green.
type ColorHandler struct {
	handler slog.Handler
	buf     *bytes.Buffer
	mu      *sync.Mutex
	w       io.Writer
	color   bool
}

// NewColorHandler creates a ColorHandler writing to w. Colors are disabled
// when NO_COLOR is set.
func NewColorHandler(w io.Writer, opts *slog.HandlerOptions) *ColorHandler {
	buf := &bytes.Buffer{}
	_, noColor := os.LookupEnv("NO_COLOR")
	return &ColorHandler{
		handler: slog.NewTextHandler(buf, opts),
		buf:     buf,
		mu:      &sync.Mutex{},
		w:       w,
		color:   !noColor,
	}
}

// NewDefaultLogger returns a logger writing colored text to stderr.
func NewDefaultLogger(level slog.Level) *slog.Logger {
	return slog.New(NewColorHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Enabled implements slog.Handler.
func (h *ColorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *ColorHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	if err := h.handler.Handle(ctx, r); err != nil {
		return err
	}
	line := bytes.TrimRight(h.buf.Bytes(), "\n")

	color := h.colorFor(r)
	if color == "" {
		_, err := h.w.Write(append(line, '\n'))
		return err
	}

	out := make([]byte, 0, len(color)+len(line)+len(colorReset)+1)
	out = append(out, color...)
	out = append(out, line...)
	out = append(out, colorReset...)
	out = append(out, '\n')
	_, err := h.w.Write(out)
	return err
}

// WithAttrs implements slog.Handler.
func (h *ColorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.handler = h.handler.WithAttrs(attrs)
	return &clone
}

// WithGroup implements slog.Handler.
func (h *ColorHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.handler = h.handler.WithGroup(name)
	return &clone
}

func (h *ColorHandler) colorFor(r slog.Record) string {
	if !h.color {
		return ""
	}
	switch {
	case r.Level >= slog.LevelError:
		return colorRed
	case r.Level >= slog.LevelWarn:
		return colorYellow
	case r.Level < slog.LevelInfo:
		return colorGray
	}
	msg := strings.ToLower(r.Message)
	for _, marker := range storageMarkers {
		if strings.Contains(msg, marker) {
			return colorGreen
		}
	}
	return ""
}

// ParseLevel maps a configuration string to a slog level. Unknown values
// yield info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
