package log

// Option configures a [Logger] made by [Make] or [Logger.Wrap].
type Option func(*config)

// WithLevel discards messages below level.
func WithLevel(level Level) Option {
	return func(c *config) { c.level = level }
}

// WithFormat sets the record encoding.
func WithFormat(format Format) Option {
	return func(c *config) { c.format = format }
}

// WithTimeLayout sets the timestamp layout.
//
// The layout is either a name of a [time] layout constant, matched without
// regard to case or punctuation ("RFC3339", "rfc-3339-nano", "kitchen"), or
// a literal layout passed to [time.Time.Format]. The name "none" and an
// empty layout omit timestamps.
func WithTimeLayout(layout string) Option {
	return func(c *config) { c.layout = timeLayout(layout) }
}

// WithCaller includes the file and line of the logging call.
func WithCaller(enable bool) Option {
	return func(c *config) { c.caller = enable }
}

// WithPretty colorizes output. Text records stay on one line; JSON records
// are indented over several lines.
func WithPretty(enable bool) Option {
	return func(c *config) { c.pretty = enable }
}
