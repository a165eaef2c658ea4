/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package pysrc

import "github.com/alecthomas/participle/v2/lexer"

// Module is a parsed source unit
type Module struct {
	FileName string
	Body     []Stmt
}

type Stmt interface {
	Position() lexer.Position
}

type Statement struct {
	Pos lexer.Position
}

func (s *Statement) Position() lexer.Position { return s.Pos }

type ClassDef struct {
	Statement
	Name  string
	Bases []*Arg
	Body  []Stmt
}

type FuncDef struct {
	Statement
	Name       string
	Body       []Stmt
}

// Assign is `targets = value`. Value is nil when the right-hand side could not be parsed, Raw keeps its text
type Assign struct {
	Statement
	Targets []string
	Value   *Expr
	Raw     string
}

type ExprStmt struct {
	Statement
	Value *Expr
	Raw   string
}

// Other is any statement the reader does not model: imports, control flow, decorators, returns
type Other struct {
	Statement
	Keyword string
	Raw     string
	Body    []Stmt
}

type logicalLine struct {
	line   int
	indent int
	text   string
}

type ValueKind int

// Value is the result of static evaluation of a literal expression
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	Items []Value
	Dict  []DictEntry
}

type DictEntry struct {
	Key   Value
	Value Value
	// false when Value could not be evaluated, Expr is kept for such entries
	Literal bool
	Expr    *Expr
}
