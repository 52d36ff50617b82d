package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/defiro/lang"
	"github.com/ardnew/defiro/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type streamsKey struct{}

// Streams are the standard streams used by a command.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// WithStreams returns a new context.Context whose commands read and write
// the given streams instead of the process's standard streams.
func WithStreams(ctx context.Context, s Streams) context.Context {
	return context.WithValue(ctx, streamsKey{}, s)
}

func streamsFrom(ctx context.Context) Streams {
	s, _ := ctx.Value(streamsKey{}).(Streams)

	if s.In == nil {
		s.In = os.Stdin
	}

	if s.Out == nil {
		s.Out = os.Stdout
	}

	if s.Err == nil {
		s.Err = os.Stderr
	}

	return s
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

const (
	// stdinSource is the special source indicator for reading from stdin.
	stdinSource = "-"
	// stdinName is the file name standard input is anchored at in the
	// working directory, so that it can include relative paths.
	stdinName = "<stdin>"
)

// uniqueSources returns the source files named by sources with duplicates
// removed, and whether stdin was named. Files are compared by device and
// inode after resolving symlinks; files that cannot be resolved are compared
// by name and kept, so evaluation reports them as missing.
func uniqueSources(sources []string) (files []string, stdin bool) {
	seen := make(map[fileKey]struct{})
	named := make(map[string]struct{})

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, hasStdinKey := makeFileKey(stdinInfo)

	for _, src := range sources {
		if src == stdinSource {
			stdin = true

			continue
		}

		key, ok := resolveFileKey(src)
		if !ok {
			if _, dup := named[src]; !dup {
				named[src] = struct{}{}
				files = append(files, src)
			}

			continue
		}

		// A named file that is stdin itself (e.g. /dev/stdin) is read once.
		if hasStdinKey && key == stdinKey {
			stdin = true

			continue
		}

		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		files = append(files, src)
	}

	return files, stdin
}

// resolveFileKey returns the device/inode pair of the file at path.
func resolveFileKey(path string) (fileKey, bool) {
	// Resolve to absolute path to handle relative path duplicates.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fileKey{}, false
	}

	// Resolve symlinks to their target.
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return fileKey{}, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fileKey{}, false
	}

	return makeFileKey(info)
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	if info == nil {
		return key, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: stat.Dev, ino: stat.Ino}, true
}

// Input holds the flags and arguments shared by commands that evaluate
// source files.
type Input struct {
	Sources []string `arg:"" default:"-" help:"Source file(s) or '-' for stdin." name:"source" optional:""`
	Where   string   `help:"Keep only bindings for which the expr-lang predicate is true." placeholder:"EXPR" short:"w"`
	Strict  bool     `help:"Fail if evaluation reports any fault."`
}

// evaluate runs every source into one environment and returns its bindings
// that satisfy the --where predicate, along with the faults reported.
func (in *Input) evaluate(
	ctx context.Context,
) (bindings []lang.Binding, faults []error, err error) {
	filter, err := in.filter()
	if err != nil {
		return nil, nil, err
	}

	env := lang.NewEnv(lang.WithLogger(log.Default()))

	if err := load(ctx, env, in.Sources); err != nil {
		return nil, nil, err
	}

	bindings, err = filter.Apply(env.Bindings())
	if err != nil {
		return nil, nil, ErrFilter.Wrap(err)
	}

	log.DebugContext(ctx, "evaluated",
		slog.Int("sources", len(in.Sources)),
		slog.Int("bindings", env.Len()),
		slog.Int("selected", len(bindings)),
		slog.Int("faults", len(env.Faults())),
	)

	return bindings, env.Faults(), nil
}

func (in *Input) filter() (*lang.Filter, error) {
	if in.Where == "" {
		return nil, nil
	}

	filter, err := lang.CompileFilter(in.Where)
	if err != nil {
		return nil, ErrFilter.Wrap(err)
	}

	return filter, nil
}

// report writes faults to the error stream. With --strict, any fault fails
// the command.
func (in *Input) report(ctx context.Context, faults []error) error {
	if err := writeFaults(streamsFrom(ctx).Err, faults); err != nil {
		return err
	}

	if in.Strict && len(faults) > 0 {
		return ErrFaults.With(slog.Int("count", len(faults)))
	}

	return nil
}

// load evaluates each unique source into env, in order, with stdin last.
func load(ctx context.Context, env *lang.Env, sources []string) error {
	files, stdin := uniqueSources(sources)

	for _, file := range files {
		log.DebugContext(ctx, "load source", slog.String("file", file))
		lang.RunFile(ctx, env, file)
	}

	if !stdin {
		return nil
	}

	src, err := io.ReadAll(streamsFrom(ctx).In)
	if err != nil {
		return ErrReadSource.
			With(slog.String("file", stdinSource)).
			Wrap(err)
	}

	path, err := lang.WorkPath(stdinName)
	if err != nil {
		return ErrReadSource.
			With(slog.String("file", stdinSource)).
			Wrap(err)
	}

	lang.Run(ctx, env, string(src), path)

	return nil
}

// writeFaults writes each fault on its own line.
func writeFaults(w io.Writer, faults []error) error {
	for _, fault := range faults {
		if _, err := fmt.Fprintln(w, lang.FormatFault(fault)); err != nil {
			return err
		}
	}

	return nil
}
