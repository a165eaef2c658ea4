/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package pysrc

import "github.com/alecthomas/participle/v2/lexer"

type Expr struct {
	Pos    lexer.Position
	Lambda *Lambda   `  @@`
	Cond   *CondExpr `| @@`
}

type Lambda struct {
	Params []*LambdaParam `"lambda" ( @@ ( "," @@ )* )? ":"`
	Body   *Expr          `@@`
}

type LambdaParam struct {
	Star    string `@( "**" | "*" )?`
	Name    string `@Ident`
	Default *Expr  `( "=" @@ )?`
}

type CondExpr struct {
	Body *BinaryExpr `@@`
	If   *BinaryExpr `( "if" @@`
	Else *Expr       `  "else" @@ )?`
}

// BinaryExpr is a flat chain of operands, precedence is irrelevant for static checks
type BinaryExpr struct {
	Left *UnaryExpr  `@@`
	Ops  []*BinaryOp `@@*`
}

type BinaryOp struct {
	Op    string     `@( Op | "and" | "or" | "not" "in" | "in" | "is" "not" | "is" )`
	Right *UnaryExpr `@@`
}

type UnaryExpr struct {
	Ops     []string     `@( "-" | "+" | "~" | "not" | "**" | "*" | "await" )*`
	Operand *PostfixExpr `@@`
}

type PostfixExpr struct {
	Primary  *Primary   `@@`
	Trailers []*Trailer `@@*`
}

type Trailer struct {
	Attr  *string    `  "." @Ident`
	Call  *Call      `| @@`
	Index *Subscript `| "[" @@ "]"`
}

type Call struct {
	Args []*Arg `"(" ( @@ ( "," @@ )* ","? )? ")"`
}

type Arg struct {
	Name  string   `( @Ident "=" )?`
	Value *Expr    `@@`
	Comp  *CompFor `@@?`
}

type Subscript struct {
	Items []*SliceItem `@@ ( "," @@ )* ","?`
}

type SliceItem struct {
	Lower *Expr      `@@?`
	Tail  *SliceTail `@@?`
}

type SliceTail struct {
	Upper *Expr `":" @@?`
	Step  *Expr `( ":" @@? )?`
}

type CompFor struct {
	Targets []string      `"for" ( "(" @Ident ( "," @Ident )* ")" | @Ident ( "," @Ident )* )`
	Iter    *BinaryExpr   `"in" @@`
	Ifs     []*BinaryExpr `( "if" @@ )*`
	Next    *CompFor      `@@?`
}

type Primary struct {
	Number  *string  `  @Number`
	Strings []string `| @String+`
	Const   *string  `| @( "True" | "False" | "None" )`
	Name    *string  `| @Ident`
	Paren   *Paren   `| @@`
	List    *List    `| @@`
	Brace   *Brace   `| @@`
}

type Paren struct {
	First    *Expr    `"(" ( @@`
	Comp     *CompFor `    @@?`
	Rest     []*Expr  `    ( "," @@ )*`
	Trailing bool     `    @","? )? ")"`
}

type List struct {
	First *Expr    `"[" ( @@`
	Comp  *CompFor `    @@?`
	Rest  []*Expr  `    ( "," @@ )* ","? )? "]"`
}

type Brace struct {
	Items []*BraceItem `"{" ( @@ ( "," @@ )* ","? )?`
	Comp  *CompFor     `@@? "}"`
}

type BraceItem struct {
	Spread *Expr `  "**" @@`
	Key    *Expr `| @@`
	Value  *Expr `  ( ":" @@ )?`
}

type classHeader struct {
	Name  string `"class" @Ident`
	Bases []*Arg `( "(" ( @@ ( "," @@ )* ","? )? ")" )? ":"`
}
