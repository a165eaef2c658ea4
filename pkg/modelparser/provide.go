/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package modelparser

import (
	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/pysrc"
	"github.com/voedger/modlint/pkg/schema"
)

func DefaultOptions() Options {
	return Options{FieldPrefixes: []string{DefaultFieldPrefix}}
}

// ParseFile extracts model fragments from a python source unit.
// A syntax failure yields a single ParseError issue and no fragments
func ParseFile(fileName string, content string, opts Options) ([]schema.ModelFragment, []issues.Issue) {
	m, err := pysrc.ParseFile(fileName, content)
	if err != nil {
		return nil, []issues.Issue{parseErrorIssue(fileName, err)}
	}
	return ParseModule(m, opts)
}

// ParseModule extracts model fragments from an already parsed source unit
func ParseModule(m *pysrc.Module, opts Options) ([]schema.ModelFragment, []issues.Issue) {
	return parseModuleImpl(m, opts)
}
