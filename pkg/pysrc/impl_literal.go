/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package pysrc

import (
	"strconv"
	"strings"
)

// Literal evaluates the expression statically. ok is false for anything that needs a runtime
func (e *Expr) Literal() (v Value, ok bool) {
	if e == nil || e.Lambda != nil || e.Cond == nil || e.Cond.If != nil {
		return v, false
	}
	return e.Cond.Body.literal()
}

func (b *BinaryExpr) literal() (Value, bool) {
	left, ok := b.Left.literal()
	if !ok || len(b.Ops) == 0 {
		return left, ok
	}
	// only string concatenation is folded
	if left.Kind != ValueString {
		return Value{}, false
	}
	sb := strings.Builder{}
	sb.WriteString(left.Str)
	for _, op := range b.Ops {
		if op.Op != "+" {
			return Value{}, false
		}
		right, ok := op.Right.literal()
		if !ok || right.Kind != ValueString {
			return Value{}, false
		}
		sb.WriteString(right.Str)
	}
	return Value{Kind: ValueString, Str: sb.String()}, true
}

func (u *UnaryExpr) literal() (Value, bool) {
	v, ok := u.Operand.literal()
	if !ok {
		return v, false
	}
	for i := len(u.Ops) - 1; i >= 0; i-- {
		switch u.Ops[i] {
		case "+":
			if v.Kind != ValueInt && v.Kind != ValueFloat {
				return Value{}, false
			}
		case "-":
			switch v.Kind {
			case ValueInt:
				v.Int = -v.Int
			case ValueFloat:
				v.Float = -v.Float
			default:
				return Value{}, false
			}
		case "not":
			if v.Kind != ValueBool {
				return Value{}, false
			}
			v.Bool = !v.Bool
		default:
			return Value{}, false
		}
	}
	return v, true
}

func (p *PostfixExpr) literal() (Value, bool) {
	if len(p.Trailers) == 0 {
		return p.Primary.literal()
	}
	// _("text")
	if p.Primary.Name != nil && *p.Primary.Name == translateFunc && len(p.Trailers) == 1 && p.Trailers[0].Call != nil {
		args := p.Trailers[0].Call.Args
		if len(args) == 1 && args[0].Name == "" && args[0].Comp == nil {
			if v, ok := args[0].Value.Literal(); ok && v.Kind == ValueString {
				return v, true
			}
		}
	}
	return Value{}, false
}

func (p *Primary) literal() (Value, bool) {
	switch {
	case p.Number != nil:
		return numberLiteral(*p.Number)
	case len(p.Strings) > 0:
		sb := strings.Builder{}
		for _, raw := range p.Strings {
			s, ok := unquote(raw)
			if !ok {
				return Value{}, false
			}
			sb.WriteString(s)
		}
		return Value{Kind: ValueString, Str: sb.String()}, true
	case p.Const != nil:
		switch *p.Const {
		case "True":
			return Value{Kind: ValueBool, Bool: true}, true
		case "False":
			return Value{Kind: ValueBool}, true
		}
		return Value{Kind: ValueNone}, true
	case p.Paren != nil:
		if p.Paren.Comp != nil {
			return Value{}, false
		}
		if p.Paren.First == nil {
			return Value{Kind: ValueList}, true
		}
		if len(p.Paren.Rest) == 0 && !p.Paren.Trailing {
			return p.Paren.First.Literal()
		}
		return listLiteral(append([]*Expr{p.Paren.First}, p.Paren.Rest...))
	case p.List != nil:
		if p.List.Comp != nil {
			return Value{}, false
		}
		if p.List.First == nil {
			return Value{Kind: ValueList}, true
		}
		return listLiteral(append([]*Expr{p.List.First}, p.List.Rest...))
	case p.Brace != nil:
		return p.Brace.literal()
	}
	return Value{}, false
}

func (b *Brace) literal() (Value, bool) {
	if b.Comp != nil {
		return Value{}, false
	}
	if len(b.Items) == 0 {
		return Value{Kind: ValueDict}, true
	}
	if b.Items[0].Value == nil {
		// set display
		exprs := make([]*Expr, 0, len(b.Items))
		for _, it := range b.Items {
			if it.Key == nil || it.Value != nil {
				return Value{}, false
			}
			exprs = append(exprs, it.Key)
		}
		return listLiteral(exprs)
	}
	v := Value{Kind: ValueDict}
	for _, it := range b.Items {
		if it.Spread != nil || it.Value == nil {
			return Value{}, false
		}
		k, ok := it.Key.Literal()
		if !ok {
			return Value{}, false
		}
		val, ok := it.Value.Literal()
		if !ok {
			return Value{}, false
		}
		v.Dict = append(v.Dict, DictEntry{Key: k, Value: val, Literal: true, Expr: it.Value})
	}
	return v, true
}

// DictEntries returns the entries of a dict display with literal keys, values may be non-literal.
// ok is false when the expression is not such a dict display
func (e *Expr) DictEntries() (entries []DictEntry, ok bool) {
	p := e.postfix()
	if p == nil || len(p.Trailers) > 0 || p.Primary.Brace == nil || p.Primary.Brace.Comp != nil {
		return nil, false
	}
	for _, it := range p.Primary.Brace.Items {
		if it.Spread != nil || it.Value == nil {
			return nil, false
		}
		k, ok := it.Key.Literal()
		if !ok {
			return nil, false
		}
		val, lit := it.Value.Literal()
		entries = append(entries, DictEntry{Key: k, Value: val, Literal: lit, Expr: it.Value})
	}
	return entries, true
}

func listLiteral(exprs []*Expr) (Value, bool) {
	v := Value{Kind: ValueList, Items: make([]Value, 0, len(exprs))}
	for _, e := range exprs {
		item, ok := e.Literal()
		if !ok {
			return Value{}, false
		}
		v.Items = append(v.Items, item)
	}
	return v, true
}

func numberLiteral(s string) (Value, bool) {
	s = strings.ReplaceAll(s, "_", "")
	if strings.HasSuffix(s, "j") || strings.HasSuffix(s, "J") {
		return Value{}, false
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		i, err := strconv.ParseInt(lower, 0, 64)
		if err != nil {
			return Value{}, false
		}
		return Value{Kind: ValueInt, Int: i}, true
	}
	if !strings.ContainsAny(lower, ".e") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Value{Kind: ValueInt, Int: i}, true
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, false
	}
	return Value{Kind: ValueFloat, Float: f}, true
}

func (e *Expr) postfix() *PostfixExpr {
	if e == nil || e.Lambda != nil || e.Cond == nil || e.Cond.If != nil {
		return nil
	}
	b := e.Cond.Body
	if len(b.Ops) > 0 || len(b.Left.Ops) > 0 {
		return nil
	}
	return b.Left.Operand
}

// DottedName returns "a.b.c" for a plain name or attribute chain
func (e *Expr) DottedName() (string, bool) {
	p := e.postfix()
	if p == nil {
		return "", false
	}
	return p.dottedName(len(p.Trailers))
}

func (p *PostfixExpr) dottedName(trailers int) (string, bool) {
	if p.Primary.Name == nil {
		return "", false
	}
	parts := []string{*p.Primary.Name}
	for _, t := range p.Trailers[:trailers] {
		if t.Attr == nil {
			return "", false
		}
		parts = append(parts, *t.Attr)
	}
	return strings.Join(parts, "."), true
}

// CallOf returns the dotted callee name and arguments when the expression is a single call `a.b(...)`
func (e *Expr) CallOf() (callee string, args []*Arg, ok bool) {
	p := e.postfix()
	if p == nil || len(p.Trailers) == 0 {
		return "", nil, false
	}
	last := p.Trailers[len(p.Trailers)-1]
	if last.Call == nil {
		return "", nil, false
	}
	callee, ok = p.dottedName(len(p.Trailers) - 1)
	if !ok {
		return "", nil, false
	}
	return callee, last.Call.Args, true
}

func (e *Expr) IsLambda() bool {
	return e != nil && e.Lambda != nil
}

// StringList accepts a string or a list/tuple of strings
func (v Value) StringList() ([]string, bool) {
	switch v.Kind {
	case ValueString:
		return []string{v.Str}, true
	case ValueList:
		res := make([]string, 0, len(v.Items))
		for _, it := range v.Items {
			if it.Kind != ValueString {
				return nil, false
			}
			res = append(res, it.Str)
		}
		return res, true
	}
	return nil, false
}

// Truthy follows python truthiness for literals
func (v Value) Truthy() bool {
	switch v.Kind {
	case ValueString:
		return v.Str != ""
	case ValueInt:
		return v.Int != 0
	case ValueFloat:
		return v.Float != 0
	case ValueBool:
		return v.Bool
	case ValueList:
		return len(v.Items) > 0
	case ValueDict:
		return len(v.Dict) > 0
	}
	return false
}

func (v Value) Get(key string) (Value, bool) {
	for _, e := range v.Dict {
		if e.Key.Kind == ValueString && e.Key.Str == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

func (k ValueKind) String() string {
	switch k {
	case ValueNone:
		return "None"
	case ValueString:
		return "str"
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueBool:
		return "bool"
	case ValueList:
		return "list"
	case ValueDict:
		return "dict"
	}
	return "unknown"
}
