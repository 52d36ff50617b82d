package lang

import (
	"strconv"
	"strings"
)

// Expr is an expression: one of [*IntLit], [*ColorLit], [*Ident] or
// [*Call].
type Expr interface {
	String() string
	expr()
}

// Stmt is a statement: one of [*LetStmt] or [*IncludeStmt].
type Stmt interface {
	String() string
	stmt()
}

// IntLit is an integer literal in [0, 255].
type IntLit struct {
	Value uint8
}

// ColorLit is a hex color literal.
type ColorLit struct {
	Value Color
}

// Ident is a reference to a bound name.
type Ident struct {
	Name string
}

// Call is a builtin function call. Name is not validated until evaluation.
type Call struct {
	Name string
	Args []Expr
}

// LetStmt binds the color value of an expression to a name.
// Short records the "name = expr" form; it has no effect on evaluation.
type LetStmt struct {
	Value Expr
	Name  string
	Short bool
}

// IncludeStmt evaluates another source file into the same environment.
type IncludeStmt struct {
	Path string
}

func (*IntLit) expr()   {}
func (*ColorLit) expr() {}
func (*Ident) expr()    {}
func (*Call) expr()     {}

func (*LetStmt) stmt()     {}
func (*IncludeStmt) stmt() {}

func (e *IntLit) String() string   { return strconv.Itoa(int(e.Value)) }
func (e *ColorLit) String() string { return e.Value.String() }
func (e *Ident) String() string    { return e.Name }

func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.String()
	}

	return e.Name + "(" + strings.Join(args, ", ") + ")"
}

func (s *LetStmt) String() string {
	if s.Short {
		return s.Name + " = " + s.Value.String()
	}

	return "let " + s.Name + " = " + s.Value.String()
}

func (s *IncludeStmt) String() string { return "include " + s.Path }
