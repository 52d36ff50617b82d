package lang

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Predefined filter errors.
var (
	ErrFilterCompile  = NewError("filter compilation failed")
	ErrFilterEvaluate = NewError("filter evaluation failed")
)

// Filter is a compiled boolean expr-lang predicate over bindings.
//
// The predicate sees the variables name (string), hex (string, "#rrggbb")
// and r, g, b (int), for example:
//
//	r > 128 && g < 64
//	name startsWith "accent"
type Filter struct {
	program *vm.Program
	source  string
}

// CompileFilter compiles source into a [Filter].
func CompileFilter(source string) (*Filter, error) {
	program, err := expr.Compile(source,
		expr.Env(filterEnv(Binding{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, ErrFilterCompile.Wrap(err).
			With(slog.String("source", source))
	}

	return &Filter{program: program, source: source}, nil
}

// String returns the source of the predicate.
func (f *Filter) String() string { return f.source }

// Match reports whether b satisfies the predicate.
func (f *Filter) Match(b Binding) (bool, error) {
	out, err := expr.Run(f.program, filterEnv(b))
	if err != nil {
		return false, ErrFilterEvaluate.Wrap(err).
			With(slog.String("source", f.source), slog.String("name", b.Name))
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Apply returns the bindings of bs that satisfy the predicate, in order.
// A nil Filter matches everything.
func (f *Filter) Apply(bs []Binding) ([]Binding, error) {
	if f == nil {
		return bs, nil
	}

	out := make([]Binding, 0, len(bs))

	for _, b := range bs {
		ok, err := f.Match(b)
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, b)
		}
	}

	return out, nil
}

func filterEnv(b Binding) map[string]any {
	return map[string]any{
		"name": b.Name,
		"hex":  b.Color.String(),
		"r":    int(b.Color.R),
		"g":    int(b.Color.G),
		"b":    int(b.Color.B),
	}
}
