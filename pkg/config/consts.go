/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package config

const (
	DefaultWorkers   = 8
	DefaultCacheSize = 4096
)

const (
	extYAML = ".yaml"
	extYML  = ".yml"
	extTOML = ".toml"
)

var defaultExcludeDirs = []string{".git", "__pycache__", "node_modules", "static", "tests", "migrations"}
