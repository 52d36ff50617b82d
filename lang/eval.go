package lang

import (
	"context"
	"log/slog"
)

// Builtin identifies a builtin function.
type Builtin uint8

// Builtin functions. Names that are not builtins map to BuiltinUnknown.
const (
	BuiltinUnknown Builtin = iota // unknown
	BuiltinRGB                    // rgb
	BuiltinPlus                   // plus
	BuiltinMinus                  // minus
)

// LookupBuiltin returns the builtin with the given name.
func LookupBuiltin(name string) Builtin {
	switch name {
	case "rgb":
		return BuiltinRGB
	case "plus":
		return BuiltinPlus
	case "minus":
		return BuiltinMinus
	default:
		return BuiltinUnknown
	}
}

// Builtins returns the names of all builtin functions.
func Builtins() []string {
	return []string{
		BuiltinMinus.String(),
		BuiltinPlus.String(),
		BuiltinRGB.String(),
	}
}

// Signature returns the call syntax of b, e.g. "rgb(r, g, b)".
func (b Builtin) Signature() string {
	switch b {
	case BuiltinRGB:
		return "rgb(r, g, b)"
	case BuiltinPlus, BuiltinMinus:
		return b.String() + "(color, r, g, b)"
	default:
		return ""
	}
}

// value is the result of an expression: a color or an integer.
type value struct {
	color Color
	num   uint8
	isInt bool
}

// Eval evaluates a statement against env.
//
// A let statement binds a color, replacing any previous binding. An include
// statement resolves its path against the file currently being evaluated,
// reads it, and runs it against env; faults inside the included file are
// appended to env rather than returned.
func Eval(ctx context.Context, env *Env, stmt Stmt) error {
	switch s := stmt.(type) {
	case *LetStmt:
		v, err := env.eval(s.Value)
		if err != nil {
			return err
		}

		if v.isInt {
			return ErrTypeMismatch.With(
				slog.String("name", s.Name),
				slog.Int("value", int(v.num)),
			)
		}

		env.Define(s.Name, v.color)

		env.logger.TraceContext(ctx, "define",
			slog.String("name", s.Name),
			slog.String("color", v.color.String()))

		return nil

	case *IncludeStmt:
		path, err := env.current().Resolve(s.Path, env.home)
		if err != nil {
			return err
		}

		src, err := env.readFile(path)
		if err != nil {
			return err
		}

		Run(ctx, env, src, path)

		return nil

	default:
		return ErrSyntax
	}
}

func (e *Env) eval(expr Expr) (value, error) {
	switch x := expr.(type) {
	case *ColorLit:
		return value{color: x.Value}, nil

	case *IntLit:
		return value{num: x.Value, isInt: true}, nil

	case *Ident:
		c, ok := e.Lookup(x.Name)
		if !ok {
			return value{}, ErrNotFound.With(slog.String("name", x.Name))
		}

		return value{color: c}, nil

	case *Call:
		return e.call(x)

	default:
		return value{}, ErrSyntax
	}
}

func (e *Env) call(c *Call) (value, error) {
	switch b := LookupBuiltin(c.Name); b {
	case BuiltinRGB:
		if err := arity(c, 3); err != nil {
			return value{}, err
		}

		ch, err := e.channels(c, c.Args)
		if err != nil {
			return value{}, err
		}

		return value{color: RGB(ch[0], ch[1], ch[2])}, nil

	case BuiltinPlus, BuiltinMinus:
		if err := arity(c, 4); err != nil {
			return value{}, err
		}

		base, err := e.eval(c.Args[0])
		if err != nil {
			return value{}, err
		}

		if base.isInt {
			return value{}, argType(c, 0, "color")
		}

		ch, err := e.channels(c, c.Args[1:])
		if err != nil {
			return value{}, err
		}

		if b == BuiltinPlus {
			return value{color: base.color.Plus(ch[0], ch[1], ch[2])}, nil
		}

		return value{color: base.color.Minus(ch[0], ch[1], ch[2])}, nil

	default:
		return value{}, ErrNotFunction.With(slog.String("name", c.Name))
	}
}

// channels evaluates the three integer arguments r, g and b of a call.
func (e *Env) channels(c *Call, args []Expr) ([3]uint8, error) {
	var ch [3]uint8

	offset := len(c.Args) - len(args)

	for i, arg := range args {
		v, err := e.eval(arg)
		if err != nil {
			return ch, err
		}

		if !v.isInt {
			return ch, argType(c, offset+i, "integer")
		}

		ch[i] = v.num
	}

	return ch, nil
}

func arity(c *Call, want int) error {
	if len(c.Args) == want {
		return nil
	}

	return ErrWrongArity.With(
		slog.String("name", c.Name),
		slog.Int("want", want),
		slog.Int("got", len(c.Args)),
	)
}

func argType(c *Call, index int, want string) error {
	return ErrArgType.With(
		slog.String("name", c.Name),
		slog.Int("index", index),
		slog.String("want", want),
	)
}
