/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package config

import (
	"github.com/voedger/modlint/pkg/constraints"
	"github.com/voedger/modlint/pkg/manifest"
)

type Config struct {
	// size of the worker pool of both phases
	Workers int `yaml:"workers" toml:"workers" validate:"min=1,max=1024"`
	// directories searched for the modules the validated module depends on
	AddonsPaths []string `yaml:"addons_paths" toml:"addons_paths" validate:"dive,required"`
	// directory names skipped during discovery
	ExcludeDirs []string `yaml:"exclude_dirs" toml:"exclude_dirs"`
	// names that field constructors are called on, e.g. `fields` in fields.Char()
	FieldPrefixes []string `yaml:"field_prefixes" toml:"field_prefixes" validate:"required,min=1,dive,required"`
	// fields with these prefixes are never provided by host models
	CustomPrefixes []string `yaml:"custom_prefixes" toml:"custom_prefixes" validate:"dive,required"`
	DateFormats    []string `yaml:"date_formats" toml:"date_formats" validate:"required,min=1,dive,required"`
	// parsed source units kept between modules of one invocation
	CacheSize int                `yaml:"cache_size" toml:"cache_size" validate:"min=0"`
	Hosts     []HostModel        `yaml:"hosts" toml:"hosts" validate:"dive"`
	Manifest  manifest.Config    `yaml:"manifest" toml:"manifest"`
	Rules     []constraints.Rule `yaml:"rules" toml:"rules" validate:"dive"`
}

type HostModel struct {
	ID             string      `yaml:"id" toml:"id" validate:"required"`
	Permissiveness string      `yaml:"permissiveness" toml:"permissiveness" validate:"omitempty,oneof=permissive any unprefixed strict"`
	Fields         []HostField `yaml:"fields" toml:"fields" validate:"dive"`
}

type HostField struct {
	Name    string   `yaml:"name" toml:"name" validate:"required"`
	Kind    string   `yaml:"kind" toml:"kind" validate:"required"`
	Target  string   `yaml:"target,omitempty" toml:"target,omitempty"`
	Options []string `yaml:"options,omitempty" toml:"options,omitempty"`
}
