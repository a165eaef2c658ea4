/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package related

import (
	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/registry"
	"github.com/voedger/modlint/pkg/schema"
)

func NewChecker(reg *registry.Registry) *Checker {
	return &Checker{
		reg:   reg,
		edges: map[node][]node{},
	}
}

// Check checks the related fields of all models
func Check(reg *registry.Registry) []issues.Issue {
	c := NewChecker(reg)
	for _, id := range reg.Models() {
		c.CheckModel(id)
	}
	return c.Issues()
}

// Compatibility tells whether a field declared as `declared` may be related to a field of kind `resolved`
func Compatibility(declared, resolved schema.FieldKind) Verdict {
	return compatibility(declared, resolved)
}
