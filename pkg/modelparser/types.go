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

type Options struct {
	// FieldPrefixes are the qualifiers of field constructors, e.g. "fields" for `fields.Char(...)`.
	// An empty prefix accepts bare constructor names
	FieldPrefixes []string
	// Seq is stamped on every fragment
	Seq int
}

type parseCtx struct {
	opts      Options
	fileName  string
	consts    map[string]*pysrc.Expr
	fragments []schema.ModelFragment
	issues    []issues.Issue
}

type fieldCall struct {
	ctor   string
	kind   schema.Kind
	kwargs map[string]*pysrc.Expr
}
