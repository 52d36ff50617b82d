package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ANSI escape sequences.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyHandler writes colorized records, either as key=value pairs on one
// line or as an indented JSON object.
type prettyHandler struct {
	opts slog.HandlerOptions
	mu   *sync.Mutex
	w    io.Writer
	json bool
	goas []groupOrAttrs
}

// groupOrAttrs is one call of WithGroup or WithAttrs, in call order.
type groupOrAttrs struct {
	group string
	attrs []slog.Attr
}

func newPrettyHandler(w io.Writer, json bool, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{opts: *opts, mu: &sync.Mutex{}, w: w, json: json}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	return h.push(groupOrAttrs{attrs: slices.Clone(attrs)})
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return h.push(groupOrAttrs{group: name})
}

func (h *prettyHandler) push(goa groupOrAttrs) *prettyHandler {
	c := *h
	c.goas = append(slices.Clip(h.goas), goa)

	return &c
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make([]slog.Attr, 0, 4+r.NumAttrs())

	if !r.Time.IsZero() {
		attrs = append(attrs, h.replace(slog.Time(slog.TimeKey, r.Time)))
	}

	attrs = append(attrs, h.replace(slog.Any(slog.LevelKey, r.Level)))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			attrs = append(attrs,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	attrs = append(attrs, slog.String(slog.MessageKey, r.Message))
	attrs = normalize(append(attrs, h.scoped(r)...))

	p := printer{level: r.Level}
	if h.json {
		p.object(attrs, 1)
	} else {
		p.line(attrs, "")
	}

	p.buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(p.buf.Bytes())

	return err
}

func (h *prettyHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

// scoped returns the attributes of r together with those added by
// WithAttrs, each nested in the groups opened before it was added.
func (h *prettyHandler) scoped(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, r.NumAttrs())

	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)

		return true
	})

	for _, goa := range slices.Backward(h.goas) {
		if goa.group == "" {
			attrs = append(slices.Clone(goa.attrs), attrs...)

			continue
		}

		if len(attrs) > 0 {
			attrs = []slog.Attr{{Key: goa.group, Value: slog.GroupValue(attrs...)}}
		}
	}

	return attrs
}

// normalize resolves values, drops empty attributes and empty groups, and
// inlines groups without a key.
func normalize(attrs []slog.Attr) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs))

	for _, a := range attrs {
		a.Value = a.Value.Resolve()

		switch {
		case a.Equal(slog.Attr{}):
		case a.Value.Kind() == slog.KindGroup:
			group := normalize(a.Value.Group())
			if len(group) == 0 {
				continue
			}

			if a.Key == "" {
				out = append(out, group...)
			} else {
				out = append(out, slog.Attr{Key: a.Key, Value: slog.GroupValue(group...)})
			}
		default:
			out = append(out, a)
		}
	}

	return out
}

type printer struct {
	buf   bytes.Buffer
	level slog.Level
}

// line writes attrs as space-separated key=value pairs, qualifying the keys
// of group members with the group key.
func (p *printer) line(attrs []slog.Attr, prefix string) {
	for _, a := range attrs {
		if a.Value.Kind() == slog.KindGroup {
			p.line(a.Value.Group(), prefix+a.Key+".")

			continue
		}

		if p.buf.Len() > 0 {
			p.buf.WriteByte(' ')
		}

		p.paint(colorGray, prefix+a.Key)
		p.buf.WriteByte('=')
		p.value(prefix == "" && a.Key == slog.LevelKey, a.Value, false)
	}
}

// object writes attrs as a JSON object indented depth levels deep.
func (p *printer) object(attrs []slog.Attr, depth int) {
	indent := strings.Repeat("  ", depth)

	p.buf.WriteString("{\n")

	for i, a := range attrs {
		if i > 0 {
			p.buf.WriteString(",\n")
		}

		p.buf.WriteString(indent)
		p.paint(colorGray, strconv.Quote(a.Key))
		p.buf.WriteString(": ")

		if a.Value.Kind() == slog.KindGroup {
			p.object(a.Value.Group(), depth+1)
		} else {
			p.value(depth == 1 && a.Key == slog.LevelKey, a.Value, true)
		}
	}

	p.buf.WriteString("\n" + indent[2:] + "}")
}

// value writes a scalar. Strings are quoted when quote is set; the record
// level is colored by severity.
func (p *printer) value(isLevel bool, v slog.Value, quote bool) {
	text := func(s string) string {
		if quote {
			return strconv.Quote(s)
		}

		return s
	}

	switch v.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		p.paint(colorYellow, v.String())

	case slog.KindBool:
		if v.Bool() {
			p.paint(colorGreen, "true")
		} else {
			p.paint(colorRed, "false")
		}

	case slog.KindDuration:
		p.paint(colorMagenta, text(v.Duration().String()))

	case slog.KindTime:
		p.paint(colorBlue, text(v.Time().Format(time.RFC3339Nano)))

	default:
		color := colorCyan
		if isLevel {
			color = levelColor(p.level)
		}

		p.paint(color, text(v.String()))
	}
}

func (p *printer) paint(color, s string) {
	p.buf.WriteString(color)
	p.buf.WriteString(s)
	p.buf.WriteString(colorReset)
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorRed
	case level >= slog.LevelWarn:
		return colorYellow
	case level >= slog.LevelInfo:
		return colorGreen
	default:
		return colorBlue
	}
}
