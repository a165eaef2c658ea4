/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package manifest

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/modlint/pkg/pysrc"
)

// Get returns the last entry with the key
func (d *Descriptor) Get(key string) (Entry, bool) {
	for i := len(d.Entries) - 1; i >= 0; i-- {
		if d.Entries[i].Key == key {
			return d.Entries[i], true
		}
	}
	return Entry{}, false
}

// Strings returns the string items of a literal list, nil otherwise
func (d *Descriptor) Strings(key string) []string {
	e, ok := d.Get(key)
	if !ok || !e.Literal || e.Value.Kind != pysrc.ValueList {
		return nil
	}
	res := make([]string, 0, len(e.Value.Items))
	for _, it := range e.Value.Items {
		if it.Kind == pysrc.ValueString {
			res = append(res, it.Str)
		}
	}
	return res
}

func (d *Descriptor) Name() string {
	if e, ok := d.Get(KeyName); ok && e.Literal && e.Value.Kind == pysrc.ValueString {
		return e.Value.Str
	}
	return ""
}

func (d *Descriptor) Depends() []string {
	return d.Strings(KeyDepends)
}

// DataFiles returns data then demo files in load order
func (d *Descriptor) DataFiles() []string {
	return append(d.Strings(KeyData), d.Strings(KeyDemo)...)
}

func (t KeyType) accepts(k pysrc.ValueKind) bool {
	for _, alt := range strings.Split(string(t), "|") {
		if strings.TrimSpace(alt) == k.String() {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]KeyType) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
