/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package registry

import "github.com/voedger/modlint/pkg/schema"

func NewBuilder(cfg Config) *Builder {
	b := &Builder{
		cfg:   cfg,
		hosts: map[schema.ModelID]*HostModel{},
	}
	if b.cfg.CustomPrefixes == nil {
		b.cfg.CustomPrefixes = []string{DefaultCustomPrefix}
	}
	for i := range cfg.Hosts {
		h := cfg.Hosts[i]
		b.hosts[h.ID] = &h
	}
	return b
}

// DefaultMagicFields are present on every model
func DefaultMagicFields() []schema.FieldSpec {
	return []schema.FieldSpec{
		{Name: "id", Kind: schema.FieldKind{Kind: schema.KindInteger}, Stored: true},
		{Name: "display_name", Kind: schema.FieldKind{Kind: schema.KindChar}, Computed: true},
		{Name: "create_uid", Kind: schema.FieldKind{Kind: schema.KindMany2one, Target: "res.users"}, Stored: true},
		{Name: "create_date", Kind: schema.FieldKind{Kind: schema.KindDatetime}, Stored: true},
		{Name: "write_uid", Kind: schema.FieldKind{Kind: schema.KindMany2one, Target: "res.users"}, Stored: true},
		{Name: "write_date", Kind: schema.FieldKind{Kind: schema.KindDatetime}, Stored: true},
	}
}
