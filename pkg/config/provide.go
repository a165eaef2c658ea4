/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package config

import (
	"runtime"

	"github.com/voedger/modlint/pkg/datafile"
	"github.com/voedger/modlint/pkg/manifest"
	"github.com/voedger/modlint/pkg/modelparser"
	"github.com/voedger/modlint/pkg/registry"
)

// Default returns a complete configuration
func Default() Config {
	workers := runtime.NumCPU()
	if workers > DefaultWorkers {
		workers = DefaultWorkers
	}
	return Config{
		Workers:        workers,
		ExcludeDirs:    append([]string(nil), defaultExcludeDirs...),
		FieldPrefixes:  []string{modelparser.DefaultFieldPrefix},
		CustomPrefixes: []string{registry.DefaultCustomPrefix},
		DateFormats:    append([]string(nil), datafile.DefaultDateFormats...),
		CacheSize:      DefaultCacheSize,
		Hosts:          DefaultHosts(),
		Manifest:       manifest.DefaultConfig(),
	}
}

// Load reads a YAML or TOML file over Default()
func Load(path string) (Config, error) {
	return loadImpl(path)
}

// Validate checks the struct constraints and the values that must parse
func Validate(cfg Config) error {
	return validateImpl(cfg)
}
