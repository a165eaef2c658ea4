/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package registry

import (
	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/schema"
)

// Permissiveness tells how absent fields of a host model are treated
type Permissiveness int

// HostModel is a model provided by the platform (the foundational allow-list)
type HostModel struct {
	ID             schema.ModelID
	Permissiveness Permissiveness
	// known fields, may be empty
	Fields []schema.FieldSpec
}

type Config struct {
	Hosts       []HostModel
	MagicFields []schema.FieldSpec
	// CustomPrefixes mark fields that are never provided by the platform, e.g. "x_"
	CustomPrefixes []string
}

// Builder merges model fragments. Not safe for concurrent use: feed it from a single goroutine
type Builder struct {
	cfg       Config
	hosts     map[schema.ModelID]*HostModel
	fragments []schema.ModelFragment
	frozen    bool
}

// Registry is the frozen result of Builder.Build. Read-only, safe for concurrent use
type Registry struct {
	models   map[schema.ModelID]*model
	ids      []schema.ModelID
	hosts    map[schema.ModelID]*HostModel
	prefixes []string
}

type model struct {
	def *schema.ModelDefinition
	// effective fields: magic, inherited and own
	effective map[schema.FieldName]*schema.FieldSpec
	// some fields may exist that are not visible: extended-only model, permissive host or such an ancestor
	opaque bool
}

type LookupStatus int

type LookupResult struct {
	Status LookupStatus
	// Found only, a copy
	Field *schema.FieldSpec
	// UnknownModel only: the model is known but the field cannot be verified
	Unverifiable bool
}

type buildCtx struct {
	b      *Builder
	models map[schema.ModelID]*model
	issues []issues.Issue
	stack  []schema.ModelID
	done   map[schema.ModelID]bool
	cycles map[schema.ModelID]bool
}
