package log

//go:generate go tool stringer --linecomment --type Level,Format --output config_string.go

import (
	"io"
	"iter"
	"log/slog"
	"strings"
	"time"
	"unicode"
)

// Level is the severity of a log message.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4) // trace
	LevelDebug Level = Level(slog.LevelDebug)     // debug
	LevelInfo  Level = Level(slog.LevelInfo)      // info
	LevelWarn  Level = Level(slog.LevelWarn)      // warn
	LevelError Level = Level(slog.LevelError)     // error
)

// DefaultLevel is the level of a [Logger] made without [WithLevel].
const DefaultLevel = LevelInfo

var levels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

// Levels returns the names of the defined levels, lowest first.
func Levels() iter.Seq[string] { return names(levels) }

// ParseLevel returns the level named by s, ignoring case.
// Besides the names of [Levels], it accepts anything
// [slog.Level.UnmarshalText] does ("INFO+2", "warn-1", ...).
// Unknown names yield [DefaultLevel].
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)

	for _, level := range levels {
		if strings.EqualFold(s, level.String()) {
			return level
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(level)
}

// Level implements [slog.Leveler].
func (l Level) Level() slog.Level { return slog.Level(l) }

// label is the upper-case name written in log records.
func (l Level) label() string {
	for _, level := range levels {
		if l == level {
			return strings.ToUpper(l.String())
		}
	}

	return slog.Level(l).String()
}

// Format selects how records are encoded.
type Format int

const (
	FormatText Format = iota // text
	FormatJSON               // json
)

// DefaultFormat is the format of a [Logger] made without [WithFormat].
const DefaultFormat = FormatJSON

var formats = []Format{FormatJSON, FormatText}

// Formats returns the names of the supported formats.
func Formats() iter.Seq[string] { return names(formats) }

// ParseFormat returns the format named by s, ignoring case and surrounding
// space. Unknown names yield [DefaultFormat].
func ParseFormat(s string) Format {
	s = strings.TrimSpace(s)

	for _, format := range formats {
		if strings.EqualFold(s, format.String()) {
			return format
		}
	}

	return DefaultFormat
}

func names[T interface{ String() string }](values []T) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range values {
			if !yield(v.String()) {
				return
			}
		}
	}
}

const (
	// DefaultTimeLayout is the timestamp layout used without [WithTimeLayout].
	DefaultTimeLayout = time.RFC3339
	// DefaultCaller reports whether records include the caller by default.
	DefaultCaller = false
	// DefaultPretty reports whether output is colorized by default.
	DefaultPretty = true
)

// layouts maps layout names, lower-cased with everything but letters and
// digits removed, to [time] layouts. An empty layout omits timestamps.
var layouts = map[string]string{
	"none":        "",
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"rfc1123":     time.RFC1123,
	"rfc1123z":    time.RFC1123Z,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"dateonly":    time.DateOnly,
	"timeonly":    time.TimeOnly,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"ms":          time.StampMilli,
	"stampmicro":  time.StampMicro,
	"us":          time.StampMicro,
	"stampnano":   time.StampNano,
	"ns":          time.StampNano,
}

// timeLayout returns the layout named by name, or name itself if it is not
// a known name.
func timeLayout(name string) string {
	key := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, name)

	if key == "" {
		return ""
	}

	if layout, ok := layouts[key]; ok {
		return layout
	}

	return name
}

// config is the immutable configuration of a Logger.
type config struct {
	output io.Writer
	layout string
	level  Level
	format Format
	caller bool
	pretty bool
}

func newConfig(w io.Writer, opts ...Option) config {
	return config{
		output: w,
		layout: DefaultTimeLayout,
		level:  DefaultLevel,
		format: DefaultFormat,
		caller: DefaultCaller,
		pretty: DefaultPretty,
	}.with(opts...)
}

// with returns a copy of c with opts applied.
func (c config) with(opts ...Option) config {
	for _, opt := range opts {
		opt(&c)
	}

	if c.output == nil {
		c.output = io.Discard
	}

	return c
}

// replaceAttr renders the time with the configured layout, dropping it when
// the layout is empty, and the level by its upper-case name.
func (c config) replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			if c.layout == "" {
				return slog.Attr{}
			}

			return slog.String(slog.TimeKey, t.Format(c.layout))
		}

	case slog.LevelKey:
		if level, ok := a.Value.Any().(slog.Level); ok {
			return slog.String(slog.LevelKey, Level(level).label())
		}
	}

	return a
}

func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   c.caller,
		Level:       c.level,
		ReplaceAttr: c.replaceAttr,
	}

	switch {
	case c.pretty:
		return newPrettyHandler(c.output, c.format == FormatJSON, opts)
	case c.format == FormatJSON:
		return slog.NewJSONHandler(c.output, opts)
	default:
		return slog.NewTextHandler(c.output, opts)
	}
}
