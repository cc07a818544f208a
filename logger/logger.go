package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"
	"time"
)

// Config selects the slog handler. Format is "console" (the default), "text"
// or "json". Output defaults to stderr.
type Config struct {
	Level  string
	Format string
	Output io.Writer
}

func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	switch cfg.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(out, opts))
	case "text":
		return slog.New(slog.NewTextHandler(out, opts))
	}
	return slog.New(&console{mu: &sync.Mutex{}, w: out, level: opts.Level})
}

// Init builds a logger and makes it the slog default.
func Init(cfg Config) *slog.Logger {
	l := New(cfg)
	slog.SetDefault(l)
	return l
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// console writes one line per record:
//
//	12:00:00 INFO  controller ready  surfaces=5
type console struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	group  string // dotted prefix, "" or "a.b."
	preset []byte // attrs from WithAttrs, already rendered
}

func (h *console) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *console) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 128)
	if !r.Time.IsZero() {
		buf = r.Time.AppendFormat(buf, time.TimeOnly)
		buf = append(buf, ' ')
	}
	buf = append(buf, levelTag(r.Level)...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)
	buf = append(buf, h.preset...)
	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.group, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

func (h *console) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.preset = slices.Clip(h.preset)
	for _, a := range attrs {
		c.preset = appendAttr(c.preset, h.group, a)
	}
	return &c
}

func (h *console) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.group = h.group + name + "."
	return &c
}

func levelTag(l slog.Level) string {
	return fmt.Sprintf("%-5s", l.String())
}

// appendAttr renders a as "  key=value", flattening groups into dotted keys.
func appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		inner := group
		if a.Key != "" {
			inner += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, inner, ga)
		}
		return buf
	}
	return fmt.Appendf(buf, "  %s%s=%v", group, a.Key, a.Value)
}
