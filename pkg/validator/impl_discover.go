/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package validator

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/modlint/pkg/datafile"
	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/manifest"
)

// loadModule reads the manifest of the module directory. Manifest problems are reported as issues
func (r *run) loadModule(root string, report bool) *module {
	m := &module{name: filepath.Base(root), root: root}
	fsys := os.DirFS(root)
	name, err := manifest.Find(fsys)
	if err != nil {
		if report {
			r.reporter.Add(issues.Error(issues.CategoryManifest, "", 0, "module %s has no manifest: %v", m.name, err))
		}
		return m
	}
	m.manifest = name
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		if report {
			r.reporter.Add(issues.Error(issues.CategoryParse, name, 0, "%v", err).WithClass(issues.ClassParseError))
		}
		return m
	}
	d, err := manifest.Parse(name, string(content))
	if err != nil {
		if report {
			r.reporter.Add(parseIssue(name, err))
		}
		return m
	}
	m.descriptor = d
	return m
}

// resolveDependencies loads the dependency closure of the target found in the addons paths.
// Modules are numbered in load order, dependencies first
func (r *run) resolveDependencies() {
	visited := map[string]bool{r.target.name: true}
	var visit func(m *module, direct bool)
	visit = func(m *module, direct bool) {
		if m.descriptor != nil {
			for _, dep := range m.descriptor.Depends() {
				if visited[dep] {
					continue
				}
				visited[dep] = true
				root, ok := r.v.findAddon(dep)
				if !ok {
					if direct {
						line := m.descriptor.Line
						if e, ok := m.descriptor.Get(manifest.KeyDepends); ok {
							line = e.Line
						}
						r.reporter.Add(issues.Info(issues.CategoryUnknownModel, m.manifest, line,
							"dependency %q is not found in the addons paths, models it provides cannot be verified", dep))
					} else if logger.IsVerbose() {
						logger.Verbose("dependency", dep, "of", m.name, "not found")
					}
					continue
				}
				visit(r.loadModule(root, false), false)
			}
		}
		if m != r.target {
			m.seq = len(r.modules)
			r.modules = append(r.modules, m)
		}
	}
	visit(r.target, true)
	r.target.seq = len(r.modules)
	r.modules = append(r.modules, r.target)
}

func (v *Validator) findAddon(name string) (string, bool) {
	for _, p := range v.cfg.AddonsPaths {
		dir := filepath.Join(p, name)
		if _, err := manifest.Find(os.DirFS(dir)); err == nil {
			return dir, true
		}
	}
	return "", false
}

// sources returns python files of the module, slash separated and sorted
func (r *run) sources(m *module) ([]string, error) {
	return r.walk(m.root, func(rel string) bool {
		return strings.HasSuffix(rel, extPython) && !slices.Contains(manifest.FileNames, path.Base(rel))
	})
}

// dataFiles returns the data files of the target in load order.
// Without a manifest all data files of the module are taken in name order
func (r *run) dataFiles() ([]string, error) {
	if d := r.target.descriptor; d != nil {
		res := make([]string, 0)
		for _, f := range d.DataFiles() {
			if datafile.IsDataFile(f) {
				res = append(res, path.Clean(f))
			}
		}
		return res, nil
	}
	return r.walk(r.target.root, datafile.IsDataFile)
}

func (r *run) walk(root string, accept func(rel string) bool) ([]string, error) {
	res := make([]string, 0)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && (strings.HasPrefix(d.Name(), ".") || slices.Contains(r.v.cfg.ExcludeDirs, d.Name())) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if rel = filepath.ToSlash(rel); accept(rel) {
			res = append(res, rel)
		}
		return nil
	})
	sort.Strings(res)
	return res, err
}

// displayName is the file name used in issues: relative for the target, prefixed by the module name otherwise
func (r *run) displayName(m *module, rel string) string {
	if m == r.target {
		return rel
	}
	return m.name + "/" + rel
}
