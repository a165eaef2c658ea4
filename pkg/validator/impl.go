/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package validator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/slices"

	"github.com/voedger/modlint/pkg/datafile"
	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/manifest"
	"github.com/voedger/modlint/pkg/modelparser"
	"github.com/voedger/modlint/pkg/pysrc"
	"github.com/voedger/modlint/pkg/registry"
	"github.com/voedger/modlint/pkg/related"
)

func (v *Validator) validateImpl(ctx context.Context, moduleRoot string) (*Result, error) {
	root, err := filepath.Abs(moduleRoot)
	if err != nil {
		return nil, err
	}
	st, err := os.Stat(root)
	if err != nil {
		return nil, errModuleNotFound(root, err)
	}
	if !st.IsDir() {
		return nil, errModuleNotFound(root, errors.New("not a directory"))
	}

	r := &run{v: v, own: map[string]bool{}, reporter: issues.NewReporter()}
	r.target = r.loadModule(root, true)
	runID := uuid.NewString()
	if logger.IsVerbose() {
		logger.Verbose("run", runID, "module", r.target.name, "at", root)
	}

	manifestDone := make(chan struct{})
	go func() {
		defer close(manifestDone)
		defer func() {
			if cause := recover(); cause != nil {
				logger.Error("recovered from panic:", cause)
				r.reporter.Add(issues.Error(issues.CategoryManifest, r.target.manifest, 0, "manifest could not be checked: %v", cause))
			}
		}()
		if d := r.target.descriptor; d != nil {
			r.reporter.Add(manifest.Validate(d, os.DirFS(root), v.cfg.Manifest)...)
		}
	}()

	err = r.validate(ctx)
	<-manifestDone
	if err != nil {
		return nil, err
	}

	return &Result{
		RunID:      runID,
		Module:     r.target.name,
		Root:       root,
		Issues:     r.reporter.Issues(),
		Summary:    r.reporter.Summary(),
		ExitStatus: r.reporter.ExitStatus(),
	}, nil
}

func (r *run) validate(ctx context.Context) error {
	r.resolveDependencies()
	reg, data, err := r.buildPhase(ctx)
	if err != nil {
		return err
	}
	return r.checkPhase(ctx, reg, data)
}

// buildPhase parses sources and data files on the pool and merges fragments in the gathering goroutine.
// It returns the frozen registry and the parsed data files in load order
func (r *run) buildPhase(ctx context.Context) (*registry.Registry, []*datafile.File, error) {
	tasks := make([]phase1Task, 0)
	for _, m := range r.modules {
		files, err := r.sources(m)
		if err != nil && m == r.target {
			r.reporter.Add(issues.Error(issues.CategoryParse, "", 0, "listing sources of %s: %v", m.name, err).WithClass(issues.ClassParseError))
		}
		for _, f := range files {
			tasks = append(tasks, phase1Task{kind: taskSource, module: m, rel: f})
			if m == r.target {
				r.own[f] = true
			}
		}
	}
	dataFiles, err := r.dataFiles()
	if err != nil {
		r.reporter.Add(issues.Error(issues.CategoryParse, "", 0, "listing data files of %s: %v", r.target.name, err).WithClass(issues.ClassParseError))
	}
	for i, f := range dataFiles {
		tasks = append(tasks, phase1Task{kind: taskData, module: r.target, rel: f, seq: i})
		r.own[f] = true
	}
	r.own[r.target.manifest] = true

	builder := registry.NewBuilder(r.v.regCfg)
	data := make([]*datafile.File, len(dataFiles))
	var addErr error
	parsers := &pool[phase1Task, phase1Result]{
		workers:   r.v.cfg.Workers,
		run:       r.parse,
		recovered: r.parsePanicked,
	}
	parsers.collect = func(res phase1Result) {
		switch res.task.kind {
		case taskSource:
			for i := range res.fragments {
				res.fragments[i].Seq = res.task.module.seq
			}
			if err := builder.Add(res.fragments...); err != nil && addErr == nil {
				addErr = err
			}
		case taskData:
			data[res.task.seq] = res.data
		}
		r.reporter.Add(res.issues...)
	}
	if err = parsers.process(ctx, tasks); err != nil {
		return nil, nil, err
	}
	if addErr != nil {
		return nil, nil, addErr
	}

	reg, buildIssues, err := builder.Build()
	if err != nil {
		return nil, nil, err
	}
	r.reporter.Add(r.ownIssues(buildIssues)...)
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%s: %d source(s), %d data file(s), %d model(s)", r.target.name, len(tasks)-len(dataFiles), len(dataFiles), reg.Len()))
	}

	files := make([]*datafile.File, 0, len(data))
	for _, f := range data {
		if f != nil {
			files = append(files, f)
		}
	}
	return reg, files, nil
}

func (r *run) parse(t phase1Task) (phase1Result, error) {
	res := phase1Result{task: t}
	name := r.displayName(t.module, t.rel)
	path := filepath.Join(t.module.root, filepath.FromSlash(t.rel))
	content, err := os.ReadFile(path)
	if err != nil {
		if t.kind == taskData && errors.Is(err, fs.ErrNotExist) {
			// reported by the manifest validation
			return res, nil
		}
		res.issues = r.visible(t.module, []issues.Issue{
			issues.Error(issues.CategoryParse, name, 0, "%v", err).WithClass(issues.ClassParseError),
		})
		return res, nil
	}

	if t.kind == taskData {
		f, err := datafile.Parse(name, content)
		if err != nil {
			res.issues = []issues.Issue{parseIssue(name, err)}
			return res, nil
		}
		res.data = f
		return res, nil
	}

	unit := r.v.parseSource(path, name, content)
	res.fragments = slices.Clone(unit.fragments)
	res.issues = r.visible(t.module, unit.issues)
	return res, nil
}

// parseSource parses a python source through the cache
func (v *Validator) parseSource(path, name string, content []byte) *parsedUnit {
	var key cacheKey
	if v.cache != nil {
		key = cacheKey{path: path, name: name, hash: blake2b.Sum256(content)}
		if unit, ok := v.cache.Get(key); ok {
			return unit
		}
	}
	fragments, list := modelparser.ParseFile(name, string(content), v.cfg.ParserOptions())
	unit := &parsedUnit{fragments: fragments, issues: list}
	if v.cache != nil {
		v.cache.Add(key, unit)
	}
	return unit
}

// checkPhase runs over the frozen registry: related fields by chunks of models, data files one by one
func (r *run) checkPhase(ctx context.Context, reg *registry.Registry, files []*datafile.File) error {
	workers := r.v.cfg.Workers
	models := reg.Models()
	tasks := make([]phase2Task, 0)
	chunk := (len(models) + workers - 1) / workers
	for i := 0; i < len(models); i += chunk {
		tasks = append(tasks, phase2Task{models: models[i:min(i+chunk, len(models))]})
	}
	for _, f := range files {
		tasks = append(tasks, phase2Task{data: f})
	}
	if len(files) > 0 {
		tasks = append(tasks, phase2Task{refs: files})
	}

	dv := datafile.NewValidator(reg, r.v.cfg.DateFormats...)
	checkers := &pool[phase2Task, []issues.Issue]{
		workers:   workers,
		recovered: r.checkPanicked,
		collect: func(list []issues.Issue) {
			r.reporter.Add(list...)
		},
	}
	checkers.run = func(t phase2Task) ([]issues.Issue, error) {
		switch {
		case t.data != nil:
			return append(dv.Validate(t.data), r.v.engine.Evaluate(t.data.Records)...), nil
		case t.refs != nil:
			return datafile.ValidateReferences(t.refs, r.target.name), nil
		}
		c := related.NewChecker(reg)
		for _, id := range t.models {
			c.CheckModel(id)
		}
		return r.ownIssues(c.Issues()), nil
	}
	return checkers.process(ctx, tasks)
}

// parsePanicked isolates a file whose parsing crashed
func (r *run) parsePanicked(t phase1Task, cause any) phase1Result {
	name := r.displayName(t.module, t.rel)
	return phase1Result{task: t, issues: r.visible(t.module, []issues.Issue{
		issues.Error(issues.CategoryParse, name, 0, "file could not be parsed: %v", cause).WithClass(issues.ClassParseError),
	})}
}

func (r *run) checkPanicked(t phase2Task, cause any) []issues.Issue {
	switch {
	case t.data != nil:
		return []issues.Issue{issues.Error(issues.CategoryParse, t.data.Name, 0,
			"records could not be validated: %v", cause).WithClass(issues.ClassParseError)}
	case t.refs != nil:
		return []issues.Issue{issues.Error(issues.CategoryRecordReference, "", 0,
			"record references could not be checked: %v", cause)}
	}
	return []issues.Issue{issues.Error(issues.CategoryRelatedPath, "", 0,
		"related fields of %s could not be checked: %v", strings.Join(t.modelNames(), ", "), cause)}
}

// visible keeps the issues of the target module. Only parse failures of dependencies are shown, as Info
func (r *run) visible(m *module, list []issues.Issue) []issues.Issue {
	if m == r.target {
		return list
	}
	res := make([]issues.Issue, 0)
	for _, i := range list {
		if i.Class == issues.ClassParseError {
			res = append(res, i.Downgrade())
		}
	}
	return res
}

func (r *run) ownIssues(list []issues.Issue) []issues.Issue {
	res := make([]issues.Issue, 0, len(list))
	for _, i := range list {
		if i.File == "" || r.own[i.File] {
			res = append(res, i)
		}
	}
	return res
}

func parseIssue(name string, err error) issues.Issue {
	line := 0
	var se *pysrc.SyntaxError
	var me *datafile.MalformedError
	switch {
	case errors.As(err, &se):
		line, err = se.Line, errors.New(se.Msg)
	case errors.As(err, &me):
		line, err = me.Line, errors.New(me.Msg)
	}
	return issues.Error(issues.CategoryParse, name, line, "%v", err).WithClass(issues.ClassParseError)
}
