// Package cmd implements the defiro subcommands.
//
// [Eval] evaluates source files and prints the resulting bindings as JSON,
// [Fmt] prints them in another format, [Init] writes a configuration file
// from the current flag values, and [Repl] starts an interactive session.
//
// Commands read their source files as positional arguments; "-" (the
// default) reads standard input. Duplicate files are evaluated once, and
// standard input is always evaluated last. Faults are written to standard
// error as "<Category>Error: <message>", one per line, after the command's
// output.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file written by [Init].
	ConfigIdentifier = "config"
)
