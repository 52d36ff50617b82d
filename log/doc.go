// Package log provides a concurrency-safe structured logger based on
// [log/slog].
//
// A [Logger] is created with [Make] and configured with functional options
// such as [WithLevel], [WithFormat], [WithTimeLayout], [WithCaller] and
// [WithPretty]. The zero Logger discards everything, so components can hold
// one by value and log unconditionally.
//
//	logger := log.Make(os.Stderr, log.WithLevel(log.LevelDebug))
//	logger.Debug("include", slog.String("path", "/themes/base.dfr"))
//
// # Levels
//
// In addition to the [log/slog] levels, [LevelTrace] sits below
// [LevelDebug] for per-statement tracing. Levels are rendered in upper case
// ("TRACE", "DEBUG", ...).
//
// # Default Logger
//
// The package-level functions ([Info], [DebugContext], ...) write through a
// default logger on standard error. [Config] reconfigures it; standard
// output is left for program output.
package log
