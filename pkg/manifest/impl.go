/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package manifest

import (
	"io/fs"
	"path"
	"strings"

	"github.com/agext/levenshtein"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"

	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/pysrc"
)

func parseImpl(fileName string, content string) (*Descriptor, error) {
	m, err := pysrc.ParseFile(fileName, content)
	if err != nil {
		return nil, err
	}
	for _, stmt := range m.Body {
		var expr *pysrc.Expr
		switch s := stmt.(type) {
		case *pysrc.ExprStmt:
			expr = s.Value
		case *pysrc.Assign:
			expr = s.Value
		}
		if expr == nil {
			continue
		}
		entries, ok := expr.DictEntries()
		if !ok {
			continue
		}
		line := stmt.Position().Line
		d := &Descriptor{FileName: fileName, Line: line}
		for _, e := range entries {
			if e.Key.Kind != pysrc.ValueString {
				continue
			}
			d.Entries = append(d.Entries, Entry{
				Key:     e.Key.Str,
				Value:   e.Value,
				Literal: e.Literal,
				Line:    line + e.Expr.Pos.Line - 1,
			})
		}
		return d, nil
	}
	return nil, errNoDescriptor(fileName)
}

func (c *checker) check() []issues.Issue {
	c.checkTypes()
	c.checkVersion()
	c.checkDepends()
	c.checkFiles(KeyData)
	c.checkFiles(KeyDemo)
	c.checkLicense()
	c.checkOrder()
	if v, ok := c.literal(KeyInstallable); ok && v.Kind == pysrc.ValueBool && !v.Bool {
		c.info(issues.CategoryManifest, c.line(KeyInstallable), "module is not installable")
	}
	return c.res
}

func (c *checker) checkTypes() {
	for _, key := range sortedKeys(c.cfg.Required) {
		if _, ok := c.d.Get(key); !ok {
			c.error(c.d.Line, "required key %q is missing", key)
		}
	}
	for _, key := range c.cfg.Recommended {
		if _, ok := c.d.Get(key); !ok {
			c.warning(c.d.Line, "recommended key %q is missing", key)
		}
	}
	for _, e := range c.d.Entries {
		t, known := c.cfg.Required[e.Key]
		if !known {
			t, known = c.cfg.KeyTypes[e.Key]
		}
		if !known {
			continue
		}
		if !e.Literal {
			c.info(issues.CategoryUnparsed, e.Line, "value of key %q is not a literal and is not checked", e.Key)
			continue
		}
		if !t.accepts(e.Value.Kind) {
			c.error(e.Line, "key %q must be %s, got %s", e.Key, t, e.Value.Kind)
		}
	}
}

func (c *checker) checkVersion() {
	v, ok := c.literal(KeyVersion)
	if !ok || v.Kind != pysrc.ValueString {
		return
	}
	line := c.line(KeyVersion)
	if !versionRegexp.MatchString(v.Str) {
		c.error(line, "version %q must begin with a numeric dotted sequence", v.Str)
		return
	}
	parts := strings.Split(versionRegexp.FindString(v.Str), ".")
	if len(parts) == fullVersionLength && !strings.HasPrefix(v.Str, c.cfg.TargetVersion+".") {
		c.warning(line, "version %q does not target series %s", v.Str, c.cfg.TargetVersion)
	}
}

func (c *checker) checkDepends() {
	v, ok := c.literal(KeyDepends)
	if !ok || v.Kind != pysrc.ValueList {
		return
	}
	line := c.line(KeyDepends)
	deps, ok := v.StringList()
	if !ok {
		c.error(line, "dependencies must be strings")
		return
	}
	if len(deps) == 0 {
		c.error(line, "dependency list is empty")
		return
	}
	seen := map[string]bool{}
	for _, dep := range deps {
		if seen[dep] {
			c.error(line, "dependency %q is listed more than once", dep)
			continue
		}
		seen[dep] = true
		if !dependencyRegexp.MatchString(dep) {
			c.error(line, "dependency %q is not a valid module name", dep)
		}
	}
	if c.cfg.Foundational != "" && !seen[c.cfg.Foundational] {
		c.warning(line, "foundational dependency %q is not listed", c.cfg.Foundational)
	}
}

func (c *checker) checkFiles(key string) {
	v, ok := c.literal(key)
	if !ok || v.Kind != pysrc.ValueList {
		return
	}
	line := c.line(key)
	seen := map[string]bool{}
	for _, it := range v.Items {
		if it.Kind != pysrc.ValueString {
			c.error(line, "%s entry must be a string, got %s", key, it.Kind)
			continue
		}
		name := it.Str
		if seen[name] {
			c.warning(line, "%s file %q is listed more than once", key, name)
			continue
		}
		seen[name] = true
		ext := strings.ToLower(path.Ext(name))
		if !slices.Contains(c.cfg.DataExtensions, ext) {
			c.error(line, "%s file %q has unsupported extension, expected one of %s", key, name, strings.Join(c.cfg.DataExtensions, " "))
			continue
		}
		clean := path.Clean(name)
		if !fs.ValidPath(clean) {
			c.error(line, "%s file %q is outside of the module", key, name)
			continue
		}
		if c.fsys == nil {
			continue
		}
		if st, err := fs.Stat(c.fsys, clean); err != nil || st.IsDir() {
			c.error(line, "%s file %q does not exist", key, name)
		}
	}
}

func (c *checker) checkLicense() {
	v, ok := c.literal(KeyLicense)
	if !ok || v.Kind != pysrc.ValueString {
		return
	}
	if slices.Contains(c.cfg.Licenses, v.Str) {
		return
	}
	if s := nearest(v.Str, c.cfg.Licenses); s != "" {
		c.warning(c.line(KeyLicense), "license %q is not recognized, did you mean %q?", v.Str, s)
		return
	}
	c.warning(c.line(KeyLicense), "license %q is not recognized", v.Str)
}

// checkOrder warns when security files are loaded after views
func (c *checker) checkOrder() {
	files := c.d.Strings(KeyData)
	firstView := -1
	for i, f := range files {
		if firstView < 0 && strings.HasPrefix(f, viewsDir) {
			firstView = i
		}
		if firstView >= 0 && i > firstView && isSecurity(f) {
			c.warning(c.line(KeyData), "security file %q is listed after view file %q", f, files[firstView])
			return
		}
	}
}

func isSecurity(f string) bool {
	return strings.HasPrefix(f, securityDir) || path.Base(f) == accessRightsFile
}

// nearest returns the closest allowed value by case-folded edit distance
func nearest(s string, allowed []string) string {
	fold := cases.Fold()
	target := fold.String(s)
	best, bestDist := "", -1
	for _, a := range allowed {
		d := levenshtein.Distance(target, fold.String(a), nil)
		if bestDist < 0 || d < bestDist {
			best, bestDist = a, d
		}
	}
	if bestDist > len(target) {
		return ""
	}
	return best
}

func (c *checker) literal(key string) (pysrc.Value, bool) {
	e, ok := c.d.Get(key)
	if !ok || !e.Literal {
		return pysrc.Value{}, false
	}
	return e.Value, true
}

func (c *checker) line(key string) int {
	if e, ok := c.d.Get(key); ok {
		return e.Line
	}
	return c.d.Line
}

func (c *checker) error(line int, msg string, args ...any) {
	c.res = append(c.res, issues.Error(issues.CategoryManifest, c.d.FileName, line, msg, args...))
}

func (c *checker) warning(line int, msg string, args ...any) {
	c.res = append(c.res, issues.Warning(issues.CategoryManifest, c.d.FileName, line, msg, args...))
}

func (c *checker) info(category string, line int, msg string, args ...any) {
	c.res = append(c.res, issues.Info(category, c.d.FileName, line, msg, args...))
}
