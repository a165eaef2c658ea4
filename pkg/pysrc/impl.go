/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package pysrc

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var pyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `(?:[rRbBuUfF]{1,2})?(?:'''(?:\\[\s\S]|[^\\])*?'''|"""(?:\\[\s\S]|[^\\])*?"""|'(?:\\[\s\S]|[^\\'\n])*'|"(?:\\[\s\S]|[^\\"\n])*")`},
	{Name: "Number", Pattern: `0[xXoObB][0-9a-fA-F_]+|(?:\d[\d_]*(?:\.[\d_]*)?|\.\d[\d_]*)(?:[eE][-+]?\d+)?[jJ]?`},
	{Name: "Keyword", Pattern: `(?:lambda|if|else|for|in|not|and|or|is|await)\b`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "Op", Pattern: `\*\*|//|<<|>>|<=|>=|==|!=|->|:=|[-+*/%@&|^~<>]`},
	{Name: "Punct", Pattern: `[()\[\]{},:.;=]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n\f]+|\\\r?\n`},
})

var exprParser = participle.MustBuild[Expr](
	participle.Lexer(pyLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(4),
)

var classHeaderParser = participle.MustBuild[classHeader](
	participle.Lexer(pyLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(4),
)

type blockParser struct {
	fileName string
	lines    []logicalLine
	pos      int
}

func parseFileImpl(fileName string, content string) (*Module, error) {
	lines, err := splitLogicalLines(fileName, content)
	if err != nil {
		return nil, err
	}
	if len(lines) > 0 && lines[0].indent != 0 {
		return nil, syntaxErr(fileName, lines[0].line, "unexpected indent")
	}
	p := &blockParser{fileName: fileName, lines: lines}
	body, err := p.parseBlock(0)
	if err != nil {
		return nil, err
	}
	return &Module{FileName: fileName, Body: body}, nil
}

func (p *blockParser) parseBlock(level int) ([]Stmt, error) {
	res := make([]Stmt, 0)
	for p.pos < len(p.lines) {
		ll := p.lines[p.pos]
		if ll.indent < level {
			break
		}
		if ll.indent > level {
			return nil, syntaxErr(p.fileName, ll.line, "unexpected indent")
		}
		p.pos++
		stmts, err := p.parseLine(ll)
		if err != nil {
			return nil, err
		}
		res = append(res, stmts...)
	}
	return res, nil
}

func (p *blockParser) parseLine(ll logicalLine) ([]Stmt, error) {
	word := firstWord(ll.text)
	if compoundKeywords[word] || (softCompoundKeywords[word] && strings.HasSuffix(ll.text, ":")) {
		stmt, err := p.parseCompound(ll, word)
		if err != nil {
			return nil, err
		}
		return []Stmt{stmt}, nil
	}
	return p.parseSimpleStatements(ll), nil
}

func (p *blockParser) parseCompound(ll logicalLine, word string) (Stmt, error) {
	colon := topLevelColon(ll.text)
	if colon < 0 {
		return nil, syntaxErr(p.fileName, ll.line, "expected ':'")
	}
	header := ll.text[:colon+1]
	inline := strings.TrimSpace(ll.text[colon+1:])

	var body []Stmt
	if inline == "" {
		if p.pos >= len(p.lines) || p.lines[p.pos].indent <= ll.indent {
			return nil, syntaxErr(p.fileName, ll.line, "expected an indented block after '%s' statement", word)
		}
		var err error
		if body, err = p.parseBlock(p.lines[p.pos].indent); err != nil {
			return nil, err
		}
		if p.pos < len(p.lines) && p.lines[p.pos].indent > ll.indent {
			return nil, syntaxErr(p.fileName, p.lines[p.pos].line, "unindent does not match any outer indentation level")
		}
	} else {
		body = p.parseSimpleStatements(logicalLine{line: ll.line, indent: ll.indent, text: inline})
	}

	st := Statement{Pos: p.position(ll)}
	switch word {
	case "class":
		h, err := parseClassHeader(p.fileName, header)
		if err != nil {
			return nil, syntaxErr(p.fileName, ll.line, "invalid class definition: %s", header)
		}
		return &ClassDef{Statement: st, Name: h.Name, Bases: h.Bases, Body: body}, nil
	case "def", "async":
		name, ok := funcName(header)
		if !ok && word == "def" {
			return nil, syntaxErr(p.fileName, ll.line, "invalid function definition: %s", header)
		}
		if ok {
			return &FuncDef{Statement: st, Name: name, Body: body}, nil
		}
	}
	return &Other{Statement: st, Keyword: word, Raw: header, Body: body}, nil
}

func (p *blockParser) parseSimpleStatements(ll logicalLine) []Stmt {
	res := make([]Stmt, 0, 1)
	for _, part := range splitTopLevel(ll.text, ';') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		res = append(res, p.parseSimple(ll, part))
	}
	return res
}

func (p *blockParser) parseSimple(ll logicalLine, text string) Stmt {
	st := Statement{Pos: p.position(ll)}
	if strings.HasPrefix(text, "@") {
		return &Other{Statement: st, Keyword: "@", Raw: text}
	}
	if word := firstWord(text); simpleKeywords[word] {
		return &Other{Statement: st, Keyword: word, Raw: text}
	}

	if eqs := assignIndexes(text); len(eqs) > 0 {
		a := &Assign{Statement: st}
		from := 0
		for _, eq := range eqs {
			a.Targets = append(a.Targets, splitTargets(text[from:eq])...)
			from = eq + 1
		}
		a.Raw = strings.TrimSpace(text[from:])
		if v, err := parseExprImpl(p.fileName, a.Raw); err == nil {
			a.Value = v
		}
		return a
	}

	if v, err := parseExprImpl(p.fileName, text); err == nil {
		return &ExprStmt{Statement: st, Value: v, Raw: text}
	}
	return &Other{Statement: st, Raw: text}
}

func (p *blockParser) position(ll logicalLine) lexer.Position {
	return lexer.Position{Filename: p.fileName, Line: ll.line, Column: ll.indent + 1}
}

func parseExprImpl(fileName string, text string) (expr *Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			expr, err = nil, grammarPanic(r)
		}
	}()
	return exprParser.ParseString(fileName, text)
}

func parseClassHeader(fileName string, text string) (h *classHeader, err error) {
	defer func() {
		if r := recover(); r != nil {
			h, err = nil, grammarPanic(r)
		}
	}()
	return classHeaderParser.ParseString(fileName, text)
}

// grammarPanic turns a parser panic into an error, the line is then treated as unparsed
func grammarPanic(r any) error {
	return fmt.Errorf("%w: parser failure: %v", ErrSyntax, r)
}
