/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package manifest

import (
	"io/fs"

	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/pysrc"
)

// Descriptor is a parsed module manifest
type Descriptor struct {
	FileName string
	Line     int
	// in source order
	Entries []Entry
}

type Entry struct {
	Key   string
	Value pysrc.Value
	// false when the value is not a python literal, Value is then empty
	Literal bool
	Line    int
}

// KeyType is a python type name, alternatives are separated by "|", e.g. "bool|list"
type KeyType string

type Config struct {
	Required       map[string]KeyType `yaml:"required" toml:"required" validate:"required"`
	Recommended    []string           `yaml:"recommended" toml:"recommended"`
	KeyTypes       map[string]KeyType `yaml:"key_types" toml:"key_types"`
	Licenses       []string           `yaml:"licenses" toml:"licenses" validate:"required,min=1"`
	TargetVersion  string             `yaml:"target_version" toml:"target_version" validate:"required"`
	Foundational   string             `yaml:"foundational" toml:"foundational"`
	DataExtensions []string           `yaml:"data_extensions" toml:"data_extensions" validate:"required,min=1"`
}

type checker struct {
	d    *Descriptor
	cfg  *Config
	fsys fs.FS
	res  []issues.Issue
}
