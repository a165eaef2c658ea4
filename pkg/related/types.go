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

type Verdict int

type node struct {
	model schema.ModelID
	field schema.FieldName
}

// Checker checks related fields against a frozen registry. Not safe for concurrent use, create one per worker
type Checker struct {
	reg *registry.Registry
	// related fields reached by the path of a related field
	edges  map[node][]node
	issues []issues.Issue
}

type traversal struct {
	terminal *schema.FieldSpec
	owner    schema.ModelID
}
