/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package schema

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// ParseKind resolves a field constructor name like "Char" or "Image"
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	k, ok := kindAliases[name]
	return k, ok
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) IsRelational() bool {
	return k == KindMany2one || k == KindOne2many || k == KindMany2many
}

func (k Kind) IsNumeric() bool {
	return k == KindInteger || k == KindFloat || k == KindMonetary
}

func (k Kind) IsTextual() bool {
	return k == KindChar || k == KindText || k == KindHtml
}

func (fk FieldKind) String() string {
	if fk.Kind.IsRelational() && fk.Target != "" {
		return fmt.Sprintf("%s(%s)", fk.Kind, fk.Target)
	}
	return fk.Kind.String()
}

func (fk FieldKind) Equal(other FieldKind) bool {
	return fk.Kind == other.Kind &&
		fk.Target == other.Target &&
		fk.Inverse == other.Inverse &&
		fk.OptionsDynamic == other.OptionsDynamic &&
		slices.Equal(fk.Options, other.Options)
}

func (fk FieldKind) HasOption(key string) bool {
	return slices.Contains(fk.Options, key)
}

// Equivalent compares two declarations ignoring where they are declared
func (f *FieldSpec) Equivalent(other *FieldSpec) bool {
	return f.Name == other.Name &&
		f.Kind.Equal(other.Kind) &&
		f.Label == other.Label &&
		f.Required == other.Required &&
		f.Computed == other.Computed &&
		f.ComputeMethod == other.ComputeMethod &&
		f.Stored == other.Stored &&
		slices.Equal(f.Related, other.Related)
}

func (f *FieldSpec) IsRelated() bool {
	return len(f.Related) > 0
}

func (f *FieldSpec) RelatedPath() string {
	parts := make([]string, len(f.Related))
	for i, n := range f.Related {
		parts[i] = string(n)
	}
	return strings.Join(parts, PathSeparator)
}

// Clone returns a deep copy, slices are not shared
func (f *FieldSpec) Clone() *FieldSpec {
	c := *f
	c.Kind.Options = slices.Clone(f.Kind.Options)
	c.Related = slices.Clone(f.Related)
	c.SelectionAdd = slices.Clone(f.SelectionAdd)
	c.Unparsed = slices.Clone(f.Unparsed)
	return &c
}

// Clone returns a deep copy of the definition and its fields
func (d *ModelDefinition) Clone() *ModelDefinition {
	c := *d
	c.Parents = slices.Clone(d.Parents)
	c.Extensions = slices.Clone(d.Extensions)
	c.Fields = make(map[FieldName]*FieldSpec, len(d.Fields))
	for n, f := range d.Fields {
		c.Fields[n] = f.Clone()
	}
	return &c
}

func ParsePath(path string) []FieldName {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, PathSeparator)
	res := make([]FieldName, len(parts))
	for i, p := range parts {
		res[i] = FieldName(strings.TrimSpace(p))
	}
	return res
}

// TargetIdentity is the model a fragment contributes to: the primary identity, else the first inherited one
func (m *ModelFragment) TargetIdentity() ModelID {
	if m.Primary != "" {
		return m.Primary
	}
	if len(m.Inherits) > 0 {
		return m.Inherits[0]
	}
	return ""
}

// IsExtension reports whether the fragment extends an existing model rather than declaring a new one
func (m *ModelFragment) IsExtension() bool {
	return m.Primary == "" || slices.Contains(m.Inherits, m.Primary)
}

// Parents are the models the target inherits fields from: inherited identities other than the target
// and the delegation targets
func (m *ModelFragment) Parents() []ModelID {
	target := m.TargetIdentity()
	res := make([]ModelID, 0, len(m.Inherits)+len(m.Delegates))
	for _, p := range m.Inherits {
		if p != target && !slices.Contains(res, p) {
			res = append(res, p)
		}
	}
	delegates := make([]ModelID, 0, len(m.Delegates))
	for p := range m.Delegates {
		delegates = append(delegates, p)
	}
	slices.Sort(delegates)
	return append(res, delegates...)
}

func (l SourceLocation) String() string {
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return l.File
}

func (k RawValueKind) String() string {
	switch k {
	case ValueLiteral:
		return "literal"
	case ValueReference:
		return "reference"
	case ValueExpression:
		return "expression"
	}
	return "unparsed"
}
