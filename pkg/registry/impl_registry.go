/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package registry

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/modlint/pkg/schema"
)

// Lookup resolves a field of a model honoring inheritance.
// UnknownModel is also returned when the model is known but the field cannot be verified, see LookupResult.Unverifiable
func (r *Registry) Lookup(id schema.ModelID, name schema.FieldName) LookupResult {
	m, ok := r.models[id]
	if !ok {
		return LookupResult{Status: UnknownModel}
	}
	if f, ok := m.effective[name]; ok {
		return LookupResult{Status: Found, Field: f.Clone()}
	}
	if r.mayExist(m, name) {
		return LookupResult{Status: UnknownModel, Unverifiable: true}
	}
	return LookupResult{Status: UnknownField}
}

func (r *Registry) mayExist(m *model, name schema.FieldName) bool {
	if !m.opaque {
		return false
	}
	if r.hasCustomPrefix(name) && r.onlyHostOpaque(m) {
		return false
	}
	return true
}

// onlyHostOpaque is true when all the invisible fields of m can only come from Unprefixed host models
func (r *Registry) onlyHostOpaque(m *model) bool {
	visited := map[schema.ModelID]bool{}
	var walk func(id schema.ModelID) bool
	walk = func(id schema.ModelID) bool {
		if visited[id] {
			return true
		}
		visited[id] = true
		mm, ok := r.models[id]
		if !ok {
			return false
		}
		if !mm.opaque {
			return true
		}
		switch mm.def.Origin {
		case schema.OriginExtended:
			return false
		case schema.OriginHost:
			if h := r.hosts[id]; h == nil || h.Permissiveness != Unprefixed {
				return false
			}
		}
		for _, p := range mm.def.Parents {
			if !walk(p) {
				return false
			}
		}
		return true
	}
	return walk(m.def.Identity)
}

func (r *Registry) hasCustomPrefix(name schema.FieldName) bool {
	for _, p := range r.prefixes {
		if strings.HasPrefix(string(name), p) {
			return true
		}
	}
	return false
}

// Model returns a copy of the merged definition
func (r *Registry) Model(id schema.ModelID) (*schema.ModelDefinition, bool) {
	m, ok := r.models[id]
	if !ok {
		return nil, false
	}
	return m.def.Clone(), true
}

func (r *Registry) Has(id schema.ModelID) bool {
	_, ok := r.models[id]
	return ok
}

// Models returns model identities in ascending order
func (r *Registry) Models() []schema.ModelID {
	return slices.Clone(r.ids)
}

func (r *Registry) Len() int {
	return len(r.ids)
}

// IsOpaque reports whether the model may have fields that are not visible
func (r *Registry) IsOpaque(id schema.ModelID) bool {
	m, ok := r.models[id]
	return ok && m.opaque
}

// EffectiveFields returns the effective field names of a model in ascending order
func (r *Registry) EffectiveFields(id schema.ModelID) []schema.FieldName {
	m, ok := r.models[id]
	if !ok {
		return nil
	}
	res := maps.Keys(m.effective)
	slices.Sort(res)
	return res
}

// OwnFields returns copies of the fields declared for the model itself (not inherited) in ascending order
func (r *Registry) OwnFields(id schema.ModelID) []*schema.FieldSpec {
	m, ok := r.models[id]
	if !ok {
		return nil
	}
	names := maps.Keys(m.def.Fields)
	slices.Sort(names)
	res := make([]*schema.FieldSpec, 0, len(names))
	for _, n := range names {
		res = append(res, m.effective[n].Clone())
	}
	return res
}

func (s LookupStatus) String() string {
	switch s {
	case Found:
		return "Found"
	case UnknownModel:
		return "UnknownModel"
	}
	return "UnknownField"
}
