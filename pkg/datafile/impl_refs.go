/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package datafile

import (
	"strings"

	"github.com/voedger/modlint/pkg/issues"
)

type definedAt struct {
	file string
	seq  int
	line int
}

// validateRefsImpl expects files in load order
func validateRefsImpl(files []*File, module string) []issues.Issue {
	res := make([]issues.Issue, 0)
	defs := map[string]definedAt{}
	for seq, f := range files {
		for _, d := range f.Defines {
			id, own := localID(d.ID, module)
			if !own {
				continue
			}
			if prev, ok := defs[id]; ok {
				res = append(res, issues.Warning(issues.CategoryDuplicateRecord, f.Name, d.Line,
					"record %q is already defined at %s:%d", id, prev.file, prev.line))
				continue
			}
			defs[id] = definedAt{file: f.Name, seq: seq, line: d.Line}
		}
	}

	for seq, f := range files {
		for _, ref := range f.Refs {
			id, own := localID(ref.ID, module)
			if !own {
				continue
			}
			d, ok := defs[id]
			switch {
			case !ok:
				res = append(res, issues.Error(issues.CategoryRecordReference, f.Name, ref.Line,
					"record %q referenced by field %q is not defined in module %q", ref.ID, ref.Field, module))
			case d.seq > seq || (d.seq == seq && d.line > ref.Line):
				res = append(res, issues.Warning(issues.CategoryForwardReference, f.Name, ref.Line,
					"record %q is referenced before it is loaded at %s:%d", ref.ID, d.file, d.line))
			}
		}
	}
	return res
}

// localID strips the own module prefix; ids of other modules are not local
func localID(id, module string) (string, bool) {
	prefix, rest, found := strings.Cut(id, ".")
	if !found {
		return id, true
	}
	if prefix == module {
		return rest, true
	}
	return id, false
}
