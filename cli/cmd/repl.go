package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ardnew/defiro/cli/cmd/repl"
	"github.com/ardnew/defiro/lang"
	"github.com/ardnew/defiro/log"
)

// replName is the file name the interactive session is anchored at in the
// working directory, so that it can include relative paths.
const replName = "<repl>"

// Repl starts an interactive session, optionally preloaded with the
// bindings of source files.
type Repl struct {
	Sources []string `arg:"" help:"Source file(s) to evaluate before the session starts." name:"source" optional:"" type:"path"`
	History bool     `default:"true" help:"Persist input history in the cache directory." negatable:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return repl.ErrNoTerminal
	}

	logger := log.Default()
	env := lang.NewEnv(lang.WithLogger(logger))

	// Standard input is the terminal, so "-" is not a source here.
	files, _ := uniqueSources(r.Sources)
	for _, file := range files {
		lang.RunFile(ctx, env, file)
	}

	if err := writeFaults(streamsFrom(ctx).Err, env.Faults()); err != nil {
		return err
	}

	path, err := lang.WorkPath(replName)
	if err != nil {
		return err
	}

	cacheDir := ""
	if ktx := kongContextFrom(ctx); ktx != nil && r.History {
		cacheDir = ktx.Model.Vars()[CacheIdentifier]
	}

	log.DebugContext(ctx, "repl",
		slog.Any("path", path),
		slog.Int("bindings", env.Len()),
		slog.String("cache", cacheDir),
	)

	return repl.Run(ctx, env, path, cacheDir, logger)
}
