/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package modelparser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/pysrc"
	"github.com/voedger/modlint/pkg/schema"
)

func parseModuleImpl(m *pysrc.Module, opts Options) ([]schema.ModelFragment, []issues.Issue) {
	c := &parseCtx{
		opts:     opts,
		fileName: m.FileName,
		consts:   map[string]*pysrc.Expr{},
	}
	for _, st := range m.Body {
		switch s := st.(type) {
		case *pysrc.Assign:
			if len(s.Targets) == 1 && s.Value != nil {
				c.consts[s.Targets[0]] = s.Value
			}
		case *pysrc.ClassDef:
			c.class(s)
		}
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%s: %d model fragment(s)", m.FileName, len(c.fragments)))
	}
	return c.fragments, c.issues
}

func (c *parseCtx) class(cls *pysrc.ClassDef) {
	attrs := map[string]*pysrc.Assign{}
	for _, st := range cls.Body {
		if a, ok := st.(*pysrc.Assign); ok && len(a.Targets) == 1 {
			attrs[a.Targets[0]] = a
		}
	}

	f := schema.ModelFragment{
		ClassName: cls.Name,
		Location:  schema.SourceLocation{File: c.fileName, Line: cls.Pos.Line},
		Seq:       c.opts.Seq,
	}

	if a, ok := attrs[attrName]; ok {
		if s, ok := c.stringValue(a.Value); ok {
			f.Primary = schema.ModelID(s)
		} else {
			c.info(issues.CategoryUnparsed, a.Pos.Line, "class %s: %s is not statically evaluable", cls.Name, attrName)
		}
	}
	if a, ok := attrs[attrInherit]; ok {
		v, ok := c.literal(a.Value)
		list, isList := v.StringList()
		if !ok || !isList {
			c.info(issues.CategoryUnparsed, a.Pos.Line, "class %s: %s is not statically evaluable", cls.Name, attrInherit)
		}
		for _, p := range list {
			f.Inherits = append(f.Inherits, schema.ModelID(p))
		}
	}
	if a, ok := attrs[attrInherits]; ok {
		v, ok := c.literal(a.Value)
		if !ok || v.Kind != pysrc.ValueDict {
			c.info(issues.CategoryUnparsed, a.Pos.Line, "class %s: %s is not statically evaluable", cls.Name, attrInherits)
		} else {
			f.Delegates = map[schema.ModelID]schema.FieldName{}
			for _, e := range v.Dict {
				if e.Key.Kind == pysrc.ValueString && e.Value.Kind == pysrc.ValueString {
					f.Delegates[schema.ModelID(e.Key.Str)] = schema.FieldName(e.Value.Str)
				}
			}
		}
	}

	if f.TargetIdentity() == "" {
		// not a model declaration
		return
	}
	if !f.IsExtension() && len(f.Inherits) > 0 {
		c.info(issues.CategoryInheritanceIntent, cls.Pos.Line,
			"model %q declares a new identity and inherits from %s: a new model inheriting from a base, confirm this is not meant as a pure extension",
			f.Primary, joinModels(f.Inherits))
	}

	for _, st := range cls.Body {
		a, ok := st.(*pysrc.Assign)
		if !ok || len(a.Targets) != 1 || !isIdentifier(a.Targets[0]) {
			continue
		}
		if fs, ok := c.field(a); ok {
			f.Fields = append(f.Fields, fs)
		}
	}
	c.fragments = append(c.fragments, f)
}

func (c *parseCtx) field(a *pysrc.Assign) (fs schema.FieldSpec, ok bool) {
	name := a.Targets[0]
	if a.Value == nil {
		if c.looksLikeField(a.Raw) {
			c.info(issues.CategoryUnparsed, a.Pos.Line, "field %q: declaration is not statically evaluable", name)
		}
		return fs, false
	}
	call, ok := c.fieldCall(a)
	if !ok {
		return fs, false
	}

	fs = schema.FieldSpec{
		Name:       schema.FieldName(name),
		Kind:       schema.FieldKind{Kind: call.kind},
		DeclaredAt: schema.SourceLocation{File: c.fileName, Line: a.Pos.Line},
	}
	storeSet := false

	// keyword order is irrelevant, iterate in a fixed order for stable issue output
	for _, kw := range sortedKeys(call.kwargs) {
		e := call.kwargs[kw]
		switch kw {
		case kwString:
			if s, ok := c.stringValue(e); ok {
				fs.Label = s
			} else {
				c.unparsed(&fs, kw, a.Pos.Line)
			}
		case kwRequired:
			if v, ok := c.literal(e); ok {
				fs.Required = v.Truthy()
			} else {
				c.unparsed(&fs, kw, a.Pos.Line)
			}
		case kwSelection:
			if call.kind != schema.KindSelection {
				continue
			}
			c.selection(&fs, e, a.Pos.Line)
		case kwSelectionAdd:
			keys, ok := c.selectionKeys(e)
			if !ok {
				c.unparsed(&fs, kw, a.Pos.Line)
				continue
			}
			fs.SelectionAdd = keys
		case kwComodel:
			if s, ok := c.stringValue(e); ok {
				fs.Kind.Target = schema.ModelID(s)
			} else {
				c.unparsed(&fs, kw, a.Pos.Line)
			}
		case kwInverse:
			if s, ok := c.stringValue(e); ok {
				fs.Kind.Inverse = schema.FieldName(s)
			} else {
				c.unparsed(&fs, kw, a.Pos.Line)
			}
		case kwRelated:
			if s, ok := c.stringValue(e); ok {
				fs.Related = schema.ParsePath(s)
			} else {
				c.unparsed(&fs, kw, a.Pos.Line)
			}
		case kwCompute:
			fs.Computed = true
			if s, ok := c.stringValue(e); ok {
				fs.ComputeMethod = s
			} else if n, ok := e.DottedName(); ok {
				fs.ComputeMethod = n
			}
		case kwStore:
			if v, ok := c.literal(e); ok {
				fs.Stored = v.Truthy()
				storeSet = true
			} else {
				c.unparsed(&fs, kw, a.Pos.Line)
			}
		}
	}
	if !storeSet {
		fs.Stored = !fs.Computed && !fs.IsRelated()
	}
	return fs, true
}

func (c *parseCtx) selection(fs *schema.FieldSpec, e *pysrc.Expr, line int) {
	if keys, ok := c.selectionKeys(e); ok {
		fs.Kind.Options = keys
		return
	}
	fs.Kind.OptionsDynamic = true
	if e.IsLambda() {
		return
	}
	if _, ok := c.stringValue(e); ok {
		// method name
		return
	}
	if _, ok := e.DottedName(); ok {
		// method or function reference
		return
	}
	c.unparsed(fs, kwSelection, line)
}

// selectionKeys accepts [(key, label), ...] and [(key,), ...]
func (c *parseCtx) selectionKeys(e *pysrc.Expr) ([]string, bool) {
	v, ok := c.literal(e)
	if !ok || v.Kind != pysrc.ValueList {
		return nil, false
	}
	keys := make([]string, 0, len(v.Items))
	for _, it := range v.Items {
		if it.Kind != pysrc.ValueList || len(it.Items) == 0 {
			return nil, false
		}
		switch k := it.Items[0]; k.Kind {
		case pysrc.ValueString:
			keys = append(keys, k.Str)
		case pysrc.ValueInt:
			keys = append(keys, fmt.Sprint(k.Int))
		default:
			return nil, false
		}
	}
	return keys, true
}

func (c *parseCtx) fieldCall(a *pysrc.Assign) (res fieldCall, ok bool) {
	callee, args, ok := a.Value.CallOf()
	if !ok {
		return res, false
	}
	ctor, ok := c.constructorName(callee)
	if !ok {
		return res, false
	}
	kind, ok := schema.ParseKind(ctor)
	if !ok {
		c.info(issues.CategoryUnparsed, a.Pos.Line, "field %q: unrecognized field constructor %s", a.Targets[0], callee)
		return res, false
	}
	res = fieldCall{ctor: ctor, kind: kind, kwargs: map[string]*pysrc.Expr{}}
	params, ok := positionalParams[ctor]
	if !ok {
		params = scalarPositional
	}
	pos := 0
	for _, arg := range args {
		if arg.Comp != nil {
			continue
		}
		if arg.Name != "" {
			res.kwargs[arg.Name] = arg.Value
			continue
		}
		if pos < len(params) {
			if _, dup := res.kwargs[params[pos]]; !dup {
				res.kwargs[params[pos]] = arg.Value
			}
		}
		pos++
	}
	return res, true
}

func (c *parseCtx) constructorName(callee string) (string, bool) {
	for _, prefix := range c.opts.FieldPrefixes {
		if prefix == "" {
			if !strings.Contains(callee, ".") {
				return callee, true
			}
			continue
		}
		if ctor, ok := strings.CutPrefix(callee, prefix+"."); ok && !strings.Contains(ctor, ".") {
			return ctor, true
		}
	}
	return "", false
}

func (c *parseCtx) looksLikeField(raw string) bool {
	for _, prefix := range c.opts.FieldPrefixes {
		if prefix != "" && strings.HasPrefix(raw, prefix+".") {
			return true
		}
	}
	return false
}

// literal evaluates e, bare names of module level literal constants are resolved
func (c *parseCtx) literal(e *pysrc.Expr) (pysrc.Value, bool) {
	if v, ok := e.Literal(); ok {
		return v, true
	}
	if n, ok := e.DottedName(); ok {
		if ce, ok := c.consts[n]; ok {
			return ce.Literal()
		}
	}
	return pysrc.Value{}, false
}

func (c *parseCtx) stringValue(e *pysrc.Expr) (string, bool) {
	v, ok := c.literal(e)
	if !ok || v.Kind != pysrc.ValueString {
		return "", false
	}
	return v.Str, true
}

func (c *parseCtx) unparsed(fs *schema.FieldSpec, kw string, line int) {
	fs.Unparsed = append(fs.Unparsed, kw)
	c.info(issues.CategoryUnparsed, line, "field %q: value of %q is not statically evaluable", fs.Name, kw)
}

func (c *parseCtx) info(category string, line int, msg string, args ...any) {
	c.issues = append(c.issues, issues.Info(category, c.fileName, line, msg, args...))
}

func parseErrorIssue(fileName string, err error) issues.Issue {
	line := 0
	var se *pysrc.SyntaxError
	if errors.As(err, &se) {
		line = se.Line
		err = errors.New(se.Msg)
	}
	return issues.Error(issues.CategoryParse, fileName, line, "%v", err).WithClass(issues.ClassParseError)
}

func sortedKeys(m map[string]*pysrc.Expr) []string {
	res := maps.Keys(m)
	slices.Sort(res)
	return res
}

func joinModels(ids []schema.ModelID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%q", id)
	}
	return strings.Join(parts, ", ")
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}
