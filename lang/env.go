package lang

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/ardnew/defiro/log"
)

// Env is the state of one evaluation: the color bindings, the faults
// reported so far, and the stack of files being evaluated.
//
// An Env is not safe for concurrent use.
type Env struct {
	vars   map[string]Color
	fsys   fs.FS
	home   HomeFunc
	faults []error
	stack  []AbsPath
	base   log.Logger
	logger log.Logger // base, scoped to the file being evaluated
}

// Option configures an [Env].
type Option func(*Env)

// WithFS sets the file system included files are read from. Paths are
// looked up relative to the root of fsys, so fsys should represent "/".
func WithFS(fsys fs.FS) Option {
	return func(e *Env) { e.fsys = fsys }
}

// WithHome sets the provider of the home directory that "~" expands to.
func WithHome(home HomeFunc) Option {
	return func(e *Env) { e.home = home }
}

// WithLogger sets the logger for evaluation tracing.
func WithLogger(logger log.Logger) Option {
	return func(e *Env) { e.base, e.logger = logger, logger }
}

// NewEnv returns an empty environment reading files from the host file
// system.
func NewEnv(opts ...Option) *Env {
	e := &Env{
		vars: make(map[string]Color),
		fsys: os.DirFS("/"),
		home: os.UserHomeDir,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Lookup returns the color bound to name.
func (e *Env) Lookup(name string) (Color, bool) {
	c, ok := e.vars[name]

	return c, ok
}

// Define binds c to name, replacing any previous binding.
func (e *Env) Define(name string, c Color) { e.vars[name] = c }

// Len returns the number of bindings.
func (e *Env) Len() int { return len(e.vars) }

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.vars))
}

// Bindings returns all bindings sorted by name.
func (e *Env) Bindings() []Binding {
	bs := make([]Binding, 0, len(e.vars))
	for _, name := range e.Names() {
		bs = append(bs, Binding{Name: name, Color: e.vars[name]})
	}

	return bs
}

// Faults returns the faults reported so far, in order.
func (e *Env) Faults() []error { return slices.Clone(e.faults) }

// Fault appends err to the fault list.
func (e *Env) Fault(err error) {
	e.faults = append(e.faults, err)
}

// Reset removes all bindings and faults.
func (e *Env) Reset() {
	clear(e.vars)
	e.faults = nil
}

// Stack returns the files currently being evaluated, innermost last.
func (e *Env) Stack() []AbsPath { return slices.Clone(e.stack) }

// MarshalJSON encodes the bindings as an object of name to "#rrggbb",
// with names sorted.
func (e *Env) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.vars)
}

// current returns the innermost file being evaluated.
func (e *Env) current() AbsPath {
	if len(e.stack) == 0 {
		return AbsPath{}
	}

	return e.stack[len(e.stack)-1]
}

// push enters path, failing if it is already being evaluated.
func (e *Env) push(path AbsPath) error {
	for i, p := range e.stack {
		if p.Equal(path) {
			chain := make([]string, 0, len(e.stack)-i+1)
			for _, q := range e.stack[i:] {
				chain = append(chain, q.String())
			}

			chain = append(chain, path.String())

			return ErrIncludeCycle.With(
				slog.String("path", path.String()),
				slog.String("chain", strings.Join(chain, " -> ")),
			)
		}
	}

	e.stack = append(e.stack, path)

	return nil
}

func (e *Env) pop() {
	e.stack = e.stack[:len(e.stack)-1]
}

// readFile reads the contents of path from the environment's file system.
func (e *Env) readFile(path AbsPath) (string, error) {
	data, err := fs.ReadFile(e.fsys, strings.TrimPrefix(path.String(), "/"))
	if err != nil {
		return "", ErrNoSuchFile.With(slog.String("path", path.String())).Wrap(err)
	}

	return string(data), nil
}

// Binding is a name and its color.
type Binding struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
}
