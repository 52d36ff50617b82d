// Package cli contains the command line interface for defiro.
//
// # Usage
//
//	defiro [flags] [eval] [FILE|-]...
//	defiro fmt (native|json|yaml|swatch) [FILE|-]...
//	defiro repl [FILE]...
//	defiro init [--force]
//
// Evaluation is the default command. Source files are evaluated in order
// into one environment, and "-" (the default) reads standard input.
//
// # Configuration
//
// Flag defaults are read from the per-user configuration directory, first
// from config.json and then from the "config" mapping of config.yaml:
//
//	config:
//	  log-level: debug
//	  log-format: text
//
// Command-line flags override configuration files. "defiro init" writes the
// current flag values to config.yaml.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// Logging flags are applied before the rest of the command line is parsed,
// so they also affect how parse errors are reported.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: <cache>/pprof)
package cli
