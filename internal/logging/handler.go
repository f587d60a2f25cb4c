package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	errorColor = color.New(color.FgRed).SprintFunc()
	warnColor  = color.New(color.FgYellow).SprintFunc()
	infoColor  = color.New(color.FgCyan).SprintFunc()
	debugColor = color.New(color.Faint).SprintFunc()
)

// Renders records as single "<level>(scope): message" lines.
//
// The scope is taken from WithGroup and rendered as plain ": " when unset.
// Attrs are appended as " key=value" pairs after the message.
type Handler struct {
	out    io.Writer
	mu     *sync.Mutex
	pretty bool
	scope  string
	attrs  string // preformatted attrs from WithAttrs
}

// NewHandler creates a handler writing to out.
//
// pretty enables colored level tokens and should reflect whether out is an
// interactive terminal.
func NewHandler(out io.Writer, pretty bool) *Handler {
	return &Handler{out: out, mu: &sync.Mutex{}, pretty: pretty}
}

// Enabled consults the process-wide threshold.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return Enabled(level)
}

// Handle writes one line for the record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelToken(r.Level))
	if h.scope != "" {
		b.WriteByte('(')
		b.WriteString(h.scope)
		b.WriteByte(')')
	}
	b.WriteString(": ")
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// WithAttrs returns a handler that appends attrs to every line.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(&b, a)
	}
	h2.attrs = b.String()
	return &h2
}

// WithGroup returns a handler scoped under name. Nested groups join with a
// dot.
func (h *Handler) WithGroup(name string) slog.Handler {
	h2 := *h
	if h2.scope == "" {
		h2.scope = name
	} else {
		h2.scope += "." + name
	}
	return &h2
}

func (h *Handler) levelToken(level slog.Level) string {
	name := LevelName(level)
	if !h.pretty {
		return name
	}
	switch {
	case level >= slog.LevelError:
		return errorColor(name)
	case level >= slog.LevelWarn:
		return warnColor(name)
	case level >= slog.LevelInfo:
		return infoColor(name)
	default:
		return debugColor(name)
	}
}

func writeAttr(b *strings.Builder, a slog.Attr) {
	fmt.Fprintf(b, " %s=%v", a.Key, a.Value)
}
