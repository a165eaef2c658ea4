/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package related

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/registry"
	"github.com/voedger/modlint/pkg/schema"
)

// CheckModel checks the related fields declared for the model itself. Inherited fields are checked with their owner
func (c *Checker) CheckModel(id schema.ModelID) {
	for _, f := range c.reg.OwnFields(id) {
		if f.IsRelated() {
			c.checkField(id, f)
		}
	}
}

func (c *Checker) Issues() []issues.Issue {
	return c.issues
}

func (c *Checker) checkField(id schema.ModelID, f *schema.FieldSpec) {
	if cycle := c.findCycle(node{model: id, field: f.Name}); cycle != nil {
		c.add(issues.Warning(issues.CategoryRelatedCycle, f.DeclaredAt.File, f.DeclaredAt.Line,
			"related field %q of model %q is part of a cycle: %s", f.Name, id, cycleString(cycle)))
	}

	t, ok := c.traverse(id, f)
	if !ok {
		return
	}
	declared, resolved := f.Kind, t.terminal.Kind
	switch compatibility(declared, resolved) {
	case Mismatch:
		c.add(issues.Error(issues.CategoryRelatedMismatch, f.DeclaredAt.File, f.DeclaredAt.Line,
			"field %q of model %q is declared %s but its related path %q resolves to %s (%s.%s)",
			f.Name, id, declared, f.RelatedPath(), resolved, t.owner, t.terminal.Name))
	case Advisory:
		c.add(issues.Warning(issues.CategoryRelatedAdvisory, f.DeclaredAt.File, f.DeclaredAt.Line,
			"field %q of model %q is declared %s, related path %q resolves to %s: compatible, check the intent",
			f.Name, id, declared, f.RelatedPath(), resolved))
	case Widening:
		c.add(issues.Warning(issues.CategoryRelatedAdvisory, f.DeclaredAt.File, f.DeclaredAt.Line,
			"field %q of model %q is declared %s, related path %q resolves to %s: the value is widened",
			f.Name, id, declared, f.RelatedPath(), resolved))
	}
}

// traverse walks the related path. ok is false when the path is broken or cannot be verified, an issue is reported then
func (c *Checker) traverse(id schema.ModelID, f *schema.FieldSpec) (res traversal, ok bool) {
	cur := id
	path := f.RelatedPath()
	for i, seg := range f.Related {
		r := c.reg.Lookup(cur, seg)
		switch r.Status {
		case registry.UnknownModel:
			if r.Unverifiable {
				c.add(issues.Info(issues.CategoryRelatedUnverified, f.DeclaredAt.File, f.DeclaredAt.Line,
					"cannot verify related path %q of field %q: field %q of model %q is not in known schema", path, f.Name, seg, cur))
			} else {
				c.add(issues.Info(issues.CategoryRelatedUnverified, f.DeclaredAt.File, f.DeclaredAt.Line,
					"cannot verify related path %q of field %q: target model %q not in known schema", path, f.Name, cur))
			}
			return res, false
		case registry.UnknownField:
			c.add(issues.Error(issues.CategoryRelatedPath, f.DeclaredAt.File, f.DeclaredAt.Line,
				"related path %q of field %q: model %q has no field %q", path, f.Name, cur, seg))
			return res, false
		}
		if i == len(f.Related)-1 {
			return traversal{terminal: r.Field, owner: cur}, true
		}
		if !r.Field.Kind.Kind.IsRelational() {
			c.add(issues.Error(issues.CategoryRelatedPath, f.DeclaredAt.File, f.DeclaredAt.Line,
				"related path %q of field %q: %s.%s is %s, not a relation", path, f.Name, cur, seg, r.Field.Kind))
			return res, false
		}
		if r.Field.Kind.Target == "" {
			c.add(issues.Info(issues.CategoryRelatedUnverified, f.DeclaredAt.File, f.DeclaredAt.Line,
				"cannot verify related path %q of field %q: target of %s.%s is unknown", path, f.Name, cur, seg))
			return res, false
		}
		cur = r.Field.Kind.Target
	}
	return res, false
}

// findCycle runs a depth-first search over related fields and returns the path back to root, nil if root is not on a cycle
func (c *Checker) findCycle(root node) []node {
	visited := map[node]bool{}
	// recursion stack
	stack := []node{}
	var dfs func(n node) []node
	dfs = func(n node) []node {
		visited[n] = true
		stack = append(stack, n)
		defer func() {
			stack = stack[:len(stack)-1]
		}()
		for _, next := range c.relatedEdges(n) {
			if next == root {
				return append(slices.Clone(stack), root)
			}
			if visited[next] {
				// a cycle not passing through root is reported for its own fields
				continue
			}
			if cycle := dfs(next); cycle != nil {
				return cycle
			}
		}
		return nil
	}
	return dfs(root)
}

// relatedEdges returns the related fields met along the path of n, memoized
func (c *Checker) relatedEdges(n node) []node {
	if e, ok := c.edges[n]; ok {
		return e
	}
	res := []node{}
	r := c.reg.Lookup(n.model, n.field)
	if r.Status == registry.Found && r.Field.IsRelated() {
		cur := n.model
		for _, seg := range r.Field.Related {
			sr := c.reg.Lookup(cur, seg)
			if sr.Status != registry.Found {
				break
			}
			if sr.Field.IsRelated() {
				res = append(res, node{model: cur, field: seg})
			}
			if !sr.Field.Kind.Kind.IsRelational() || sr.Field.Kind.Target == "" {
				break
			}
			cur = sr.Field.Kind.Target
		}
	}
	c.edges[n] = res
	return res
}

func compatibility(declared, resolved schema.FieldKind) Verdict {
	d, r := declared.Kind, resolved.Kind
	switch {
	case d.IsRelational() || r.IsRelational():
		if d != r {
			return Mismatch
		}
		if declared.Target != "" && resolved.Target != "" && declared.Target != resolved.Target {
			return Mismatch
		}
		return Compatible
	case d == r:
		return Compatible
	case d.IsNumeric() && r.IsNumeric():
		return Compatible
	case (d == schema.KindChar && r == schema.KindSelection) || (d == schema.KindSelection && r == schema.KindChar):
		return Compatible
	case d == schema.KindChar && r.IsTextual():
		return Advisory
	case (d == schema.KindText && r == schema.KindHtml) || (d == schema.KindHtml && r == schema.KindText):
		return Advisory
	case d == schema.KindDatetime && r == schema.KindDate:
		return Widening
	}
	return Mismatch
}

func (c *Checker) add(i issues.Issue) {
	c.issues = append(c.issues, i)
}

func cycleString(cycle []node) string {
	parts := make([]string, len(cycle))
	for i, n := range cycle {
		parts[i] = fmt.Sprintf("%s.%s", n.model, n.field)
	}
	return strings.Join(parts, " -> ")
}

func (v Verdict) String() string {
	switch v {
	case Compatible:
		return "compatible"
	case Advisory:
		return "advisory"
	case Widening:
		return "widening"
	}
	return "mismatch"
}
