/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package validator

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/voedger/modlint/pkg/config"
	"github.com/voedger/modlint/pkg/constraints"
	"github.com/voedger/modlint/pkg/datafile"
	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/manifest"
	"github.com/voedger/modlint/pkg/registry"
	"github.com/voedger/modlint/pkg/schema"
	"github.com/voedger/modlint/pkg/timeu"
)

type Option func(v *Validator)

// Validator validates module directories. Safe for concurrent use, parsed sources are shared between runs
type Validator struct {
	cfg    config.Config
	regCfg registry.Config
	clock  timeu.ITime
	engine *constraints.Engine
	cache  *lru.Cache[cacheKey, *parsedUnit]
}

// Result of one module validation
type Result struct {
	RunID  string
	Module string
	// absolute module directory
	Root       string
	Issues     []issues.Issue
	Summary    issues.Summary
	ExitStatus int
}

type module struct {
	name       string
	root       string
	seq        int
	manifest   string
	descriptor *manifest.Descriptor
}

type cacheKey struct {
	path string
	// file name in issues
	name string
	hash [blake2b.Size256]byte
}

type parsedUnit struct {
	fragments []schema.ModelFragment
	issues    []issues.Issue
}

// run is the state of one Validate call
type run struct {
	v       *Validator
	target  *module
	modules []*module
	// target module files, only their issues are reported
	own      map[string]bool
	reporter *issues.Reporter
}

type taskKind int

type phase1Task struct {
	kind   taskKind
	module *module
	// slash separated, relative to the module root
	rel string
	seq int
}

type phase1Result struct {
	task      phase1Task
	fragments []schema.ModelFragment
	data      *datafile.File
	issues    []issues.Issue
}

type phase2Task struct {
	models []schema.ModelID
	data   *datafile.File
	refs   []*datafile.File
}

func (t phase2Task) modelNames() []string {
	res := make([]string, len(t.models))
	for i, id := range t.models {
		res[i] = string(id)
	}
	return res
}
