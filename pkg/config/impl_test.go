/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/modlint/pkg/constraints"
	"github.com/voedger/modlint/pkg/registry"
	"github.com/voedger/modlint/pkg/schema"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	require := require.New(t)

	cfg := Default()
	require.NoError(Validate(cfg))
	require.GreaterOrEqual(cfg.Workers, 1)

	rc, err := cfg.RegistryConfig()
	require.NoError(err)
	require.Len(rc.Hosts, len(cfg.Hosts))
	require.Equal(schema.ModelID("res.partner"), rc.Hosts[0].ID)
	require.Equal(registry.Unprefixed, rc.Hosts[0].Permissiveness)

	require.Equal(constraints.DefaultRules(), cfg.ConstraintRules())
	require.Equal([]string{"fields"}, cfg.ParserOptions().FieldPrefixes)
}

func TestLoadYAML(t *testing.T) {
	require := require.New(t)

	path := writeFile(t, "modlint.yaml", `
workers: 3
addons_paths: [/opt/odoo/addons]
hosts:
  - id: res.partner
    permissiveness: strict
    fields:
      - {name: name, kind: Char}
      - {name: country_id, kind: Many2one, target: res.country}
rules:
  - name: lease_ordered
    models: "fleet.*"
    fields: [lease_start, lease_end]
    check: ordered
manifest:
  target_version: "16.0"
`)
	cfg, err := Load(path)
	require.NoError(err)
	require.NoError(Validate(cfg))

	require.Equal(3, cfg.Workers)
	require.Equal([]string{"/opt/odoo/addons"}, cfg.AddonsPaths)
	require.Len(cfg.Hosts, 1)
	require.Equal("16.0", cfg.Manifest.TargetVersion)
	require.NotEmpty(cfg.Manifest.Licenses, "defaults are kept")
	require.NotEmpty(cfg.FieldPrefixes)

	rules := cfg.ConstraintRules()
	require.Len(rules, len(constraints.DefaultRules())+1)
	require.Equal("lease_ordered", rules[len(rules)-1].Name)

	rc, err := cfg.RegistryConfig()
	require.NoError(err)
	require.Equal(registry.Strict, rc.Hosts[0].Permissiveness)
	require.Equal(schema.ModelID("res.country"), rc.Hosts[0].Fields[1].Kind.Target)
}

func TestLoadTOML(t *testing.T) {
	require := require.New(t)

	path := writeFile(t, "modlint.toml", `
workers = 2
exclude_dirs = ["tests"]

[[rules]]
name = "qty_positive"
models = "stock.*"
field = "*_qty"
check = "positive"
`)
	cfg, err := Load(path)
	require.NoError(err)
	require.NoError(Validate(cfg))
	require.Equal(2, cfg.Workers)
	require.Equal([]string{"tests"}, cfg.ExcludeDirs)
	require.Equal(constraints.CheckPositive, cfg.Rules[0].Check)

	_, err = Load(writeFile(t, "bad.toml", "unknown_key = 1\n"))
	require.ErrorIs(err, ErrInvalidConfig)
}

func TestLoadErrors(t *testing.T) {
	require := require.New(t)

	_, err := Load(writeFile(t, "modlint.json", "{}"))
	require.ErrorIs(err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "bad.yaml", "no_such_key: 1\n"))
	require.Error(err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(cfg *Config){
		"workers":        func(cfg *Config) { cfg.Workers = 0 },
		"field prefixes": func(cfg *Config) { cfg.FieldPrefixes = nil },
		"permissiveness": func(cfg *Config) { cfg.Hosts[0].Permissiveness = "lenient" },
		"kind":           func(cfg *Config) { cfg.Hosts[0].Fields[0].Kind = "Varchar" },
		"target":         func(cfg *Config) { cfg.Hosts[0].Fields = []HostField{{Name: "x", Kind: "Many2one"}} },
		"rule check": func(cfg *Config) {
			cfg.Rules = []constraints.Rule{{Name: "r", Models: "*", Field: "a", Check: "odd"}}
		},
		"rule pair": func(cfg *Config) {
			cfg.Rules = []constraints.Rule{{Name: "r", Models: "*", Fields: []string{"a"}, Check: constraints.CheckOrdered}}
		},
		"licenses": func(cfg *Config) { cfg.Manifest.Licenses = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.ErrorIs(t, Validate(cfg), ErrInvalidConfig)
		})
	}
}
