package lang

import (
	"context"
	"log/slog"
	"strings"
)

// Run evaluates the source text of the file at path against env.
//
// The source is split into statements on ';' after comments are removed.
// Each non-empty statement is lexed, parsed and evaluated in order; a
// failing statement appends its fault to env and evaluation continues with
// the next one. If path is already being evaluated (an include cycle), a
// fault is appended and nothing is evaluated.
//
// Run never fails and never panics: all errors are reported through
// [Env.Faults]. Evaluation stops early if ctx is canceled.
func Run(ctx context.Context, env *Env, src string, path AbsPath) {
	if err := env.push(path); err != nil {
		env.logger.DebugContext(ctx, "include rejected", slog.Any("error", err))
		env.Fault(err)

		return
	}

	defer env.pop()

	outer := env.logger
	env.logger = env.base.With(
		slog.String("path", path.String()),
		slog.Int("depth", len(env.stack)))

	defer func() { env.logger = outer }()

	env.logger.DebugContext(ctx, "enter")

	for i, chunk := range strings.Split(StripComments(src), ";") {
		if ctx.Err() != nil {
			env.Fault(ErrCanceled.With(slog.String("path", path.String())).
				Wrap(context.Cause(ctx)))

			return
		}

		if err := env.statement(ctx, chunk); err != nil {
			env.logger.DebugContext(ctx, "statement failed",
				slog.Int("statement", i+1),
				slog.Any("error", err))
			env.Fault(err)
		}
	}

	env.logger.DebugContext(ctx, "leave",
		slog.Int("bindings", env.Len()),
		slog.Int("faults", len(env.faults)))
}

// RunFile canonicalizes the named host file, reads it through env and runs
// it. Failures to locate or read the file are reported as faults.
func RunFile(ctx context.Context, env *Env, name string) {
	path, err := Canonical(name)
	if err != nil {
		env.Fault(err)

		return
	}

	src, err := env.readFile(path)
	if err != nil {
		env.Fault(err)

		return
	}

	Run(ctx, env, src, path)
}

// statement lexes, parses and evaluates a single statement. Statements
// without tokens are skipped.
func (e *Env) statement(ctx context.Context, src string) error {
	tokens, err := Lex(src)
	if err != nil {
		return err
	}

	if len(tokens) == 0 {
		return nil
	}

	stmt, err := Parse(tokens)
	if err != nil {
		return err
	}

	e.logger.TraceContext(ctx, "eval", slog.String("statement", stmt.String()))

	return Eval(ctx, e, stmt)
}
