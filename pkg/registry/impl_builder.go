/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package registry

import (
	"sort"
	"strings"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/schema"
)

// Add queues fragments. The order of Add calls does not affect the result
func (b *Builder) Add(fragments ...schema.ModelFragment) error {
	if b.frozen {
		return ErrFrozen
	}
	b.fragments = append(b.fragments, fragments...)
	return nil
}

// Build merges the queued fragments and freezes the builder
func (b *Builder) Build() (*Registry, []issues.Issue, error) {
	if b.frozen {
		return nil, nil, ErrFrozen
	}
	b.frozen = true

	c := &buildCtx{
		b:      b,
		models: map[schema.ModelID]*model{},
		done:   map[schema.ModelID]bool{},
		cycles: map[schema.ModelID]bool{},
	}
	c.seedHosts()
	for _, f := range canonicalOrder(b.fragments) {
		c.merge(f)
	}
	ids := maps.Keys(c.models)
	slices.Sort(ids)
	for _, id := range ids {
		c.resolve(id)
	}
	for _, id := range ids {
		c.checkModel(id)
	}

	if logger.IsVerbose() {
		logger.Verbose("registry frozen:", len(ids), "model(s) from", len(b.fragments), "fragment(s)")
	}
	b.fragments = nil
	return &Registry{models: c.models, ids: ids, hosts: b.hosts, prefixes: b.cfg.CustomPrefixes}, c.issues, nil
}

// canonicalOrder sorts fragments by load sequence, file, line and class name
func canonicalOrder(fragments []schema.ModelFragment) []schema.ModelFragment {
	res := slices.Clone(fragments)
	sort.SliceStable(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.Seq != b.Seq {
			return a.Seq < b.Seq
		}
		if a.Location.File != b.Location.File {
			return a.Location.File < b.Location.File
		}
		if a.Location.Line != b.Location.Line {
			return a.Location.Line < b.Location.Line
		}
		return a.ClassName < b.ClassName
	})
	return res
}

func (c *buildCtx) seedHosts() {
	for id, h := range c.b.hosts {
		def := &schema.ModelDefinition{
			Identity: id,
			Origin:   schema.OriginHost,
			Fields:   map[schema.FieldName]*schema.FieldSpec{},
		}
		for i := range h.Fields {
			def.Fields[h.Fields[i].Name] = h.Fields[i].Clone()
		}
		c.models[id] = &model{def: def, opaque: h.Permissiveness != Strict}
	}
}

func (c *buildCtx) merge(f schema.ModelFragment) {
	id := f.TargetIdentity()
	m := c.models[id]

	if !f.IsExtension() {
		switch {
		case m != nil && m.def.Origin == schema.OriginHost:
			c.issues = append(c.issues, issues.Error(issues.CategoryModelRedefinition, f.Location.File, f.Location.Line,
				"model %q is provided by the platform: model redefinition, use inheritance, not re-declaration", id))
		case m != nil && m.def.Origin == schema.OriginDeclared:
			c.issues = append(c.issues, issues.Warning(issues.CategoryDuplicateModel, f.Location.File, f.Location.Line,
				"model %q is already declared at %s", id, m.def.DeclaredAt))
		case m != nil:
			// declared after being extended
			m.def.Origin = schema.OriginDeclared
			m.def.DeclaredAt = f.Location
			m.opaque = false
		default:
			m = c.newModel(id, schema.OriginDeclared)
			m.def.DeclaredAt = f.Location
		}
	} else {
		if m == nil {
			m = c.newModel(id, schema.OriginExtended)
			m.opaque = true
		}
		m.def.Extensions = append(m.def.Extensions, f.Location)
	}

	for _, p := range f.Parents() {
		if p != id && !slices.Contains(m.def.Parents, p) {
			m.def.Parents = append(m.def.Parents, p)
		}
	}

	for i := range f.Fields {
		nf := &f.Fields[i]
		old, ok := m.def.Fields[nf.Name]
		if !ok {
			m.def.Fields[nf.Name] = nf.Clone()
			continue
		}
		restated := overlay(old, nf)
		if !restated.Equivalent(old) {
			c.issues = append(c.issues, issues.Warning(issues.CategoryFieldConflict, nf.DeclaredAt.File, nf.DeclaredAt.Line,
				"field %q of model %q redefined: %s at %s overrides %s at %s",
				nf.Name, id, describe(restated), nf.DeclaredAt, describe(old), old.DeclaredAt))
		}
		m.def.Fields[nf.Name] = restated
	}
}

func (c *buildCtx) newModel(id schema.ModelID, origin schema.Origin) *model {
	m := &model{def: &schema.ModelDefinition{
		Identity: id,
		Origin:   origin,
		Fields:   map[schema.FieldName]*schema.FieldSpec{},
	}}
	c.models[id] = m
	return m
}

// resolve computes effective fields, parents first. Cycles are reported once and broken
func (c *buildCtx) resolve(id schema.ModelID) *model {
	m, ok := c.models[id]
	if !ok {
		return nil
	}
	if c.done[id] {
		return m
	}
	if idx := slices.Index(c.stack, id); idx >= 0 {
		if !c.cycles[id] {
			c.cycles[id] = true
			c.issues = append(c.issues, issues.Warning(issues.CategoryInheritanceCycle, m.location().File, m.location().Line,
				"model %q inherits from itself: %s", id, cyclePath(append(slices.Clone(c.stack[idx:]), id))))
		}
		return nil
	}
	c.stack = append(c.stack, id)
	defer func() {
		c.stack = c.stack[:len(c.stack)-1]
		c.done[id] = true
	}()

	eff := map[schema.FieldName]*schema.FieldSpec{}
	for i := range c.b.cfg.MagicFields {
		mf := c.b.cfg.MagicFields[i]
		eff[mf.Name] = &mf
	}
	for _, p := range m.def.Parents {
		pm := c.resolve(p)
		if pm == nil {
			if _, known := c.models[p]; !known {
				m.opaque = true
			}
			continue
		}
		if pm.opaque {
			m.opaque = true
		}
		for name, f := range pm.effective {
			eff[name] = f
		}
	}
	for name, own := range m.def.Fields {
		f := own.Clone()
		if base, inherited := eff[name]; inherited {
			f = overlay(base, own)
		}
		partial := f.Kind.Kind == schema.KindSelection && len(f.Kind.Options) == 0 && !f.Kind.OptionsDynamic
		f = withSelectionAdd(f, f.SelectionAdd)
		if partial && len(f.SelectionAdd) > 0 && m.opaque {
			// base options are not visible
			f.Kind.OptionsDynamic = true
		}
		eff[name] = f
	}
	m.effective = eff
	return m
}

func (c *buildCtx) checkModel(id schema.ModelID) {
	m := c.models[id]
	if m.def.Origin == schema.OriginExtended {
		loc := m.def.Extensions[0]
		c.issues = append(c.issues, issues.Info(issues.CategoryOpaqueModel, loc.File, loc.Line,
			"model %q is extended but its declaration is not visible, its fields cannot be fully verified", id))
	}
	names := maps.Keys(m.def.Fields)
	slices.Sort(names)
	for _, name := range names {
		f := m.effective[name]
		if f == nil || f.Kind.Kind != schema.KindSelection || len(f.Kind.Options) > 0 || f.Kind.OptionsDynamic {
			continue
		}
		if m.opaque {
			// options may come from an invisible declaration
			f.Kind.OptionsDynamic = true
			continue
		}
		c.issues = append(c.issues, issues.Error(issues.CategoryEmptySelection, f.DeclaredAt.File, f.DeclaredAt.Line,
			"selection field %q of model %q has no options", name, id))
	}
}

// overlay restates old with the attributes given in nf. Attributes not given keep the old values
func overlay(old, nf *schema.FieldSpec) *schema.FieldSpec {
	res := nf.Clone()
	if res.Kind.Kind != old.Kind.Kind {
		return res
	}
	for _, o := range old.SelectionAdd {
		if !slices.Contains(res.SelectionAdd, o) {
			res.SelectionAdd = append(res.SelectionAdd, o)
		}
	}
	if res.Kind.Target == "" {
		res.Kind.Target = old.Kind.Target
	}
	if res.Kind.Inverse == "" {
		res.Kind.Inverse = old.Kind.Inverse
	}
	if len(res.Kind.Options) == 0 && !res.Kind.OptionsDynamic {
		res.Kind.Options = slices.Clone(old.Kind.Options)
		res.Kind.OptionsDynamic = old.Kind.OptionsDynamic
	}
	if res.Label == "" {
		res.Label = old.Label
	}
	if !res.Required {
		res.Required = old.Required
	}
	if !res.Computed && !res.IsRelated() {
		res.Computed = old.Computed
		res.ComputeMethod = old.ComputeMethod
		res.Related = slices.Clone(old.Related)
		if res.Computed || res.IsRelated() {
			res.Stored = old.Stored
		}
	}
	return res
}

func withSelectionAdd(f *schema.FieldSpec, add []string) *schema.FieldSpec {
	for _, o := range add {
		if !f.Kind.HasOption(o) {
			f.Kind.Options = append(f.Kind.Options, o)
		}
	}
	return f
}

func describe(f *schema.FieldSpec) string {
	return f.Kind.String()
}

func cyclePath(ids []schema.ModelID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, " -> ")
}

func (m *model) location() schema.SourceLocation {
	if m.def.DeclaredAt.File == "" && len(m.def.Extensions) > 0 {
		return m.def.Extensions[0]
	}
	return m.def.DeclaredAt
}
