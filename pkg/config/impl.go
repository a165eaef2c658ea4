/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/voedger/modlint/pkg/constraints"
	"github.com/voedger/modlint/pkg/modelparser"
	"github.com/voedger/modlint/pkg/registry"
	"github.com/voedger/modlint/pkg/schema"
	"github.com/voedger/modlint/pkg/timeu"
)

var validate = validator.New()

func loadImpl(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case extYAML, extYML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	case extTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, errInvalid("%s: unknown keys %v", path, undecoded)
		}
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return cfg, nil
}

func validateImpl(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errInvalid("%v", err)
	}
	errs := make([]error, 0)
	if _, err := cfg.RegistryConfig(); err != nil {
		errs = append(errs, err)
	}
	if _, err := constraints.NewEngine(timeu.NewITime(), cfg.ConstraintRules()...); err != nil {
		errs = append(errs, errInvalid("%v", err))
	}
	return errors.Join(errs...)
}

// RegistryConfig converts the host models
func (c *Config) RegistryConfig() (registry.Config, error) {
	res := registry.Config{
		MagicFields:    registry.DefaultMagicFields(),
		CustomPrefixes: c.CustomPrefixes,
	}
	errs := make([]error, 0)
	for _, h := range c.Hosts {
		p, err := registry.ParsePermissiveness(h.Permissiveness)
		if err != nil {
			errs = append(errs, errInvalid("host %s: %v", h.ID, err))
		}
		hm := registry.HostModel{ID: schema.ModelID(h.ID), Permissiveness: p}
		for _, f := range h.Fields {
			kind, ok := schema.ParseKind(f.Kind)
			if !ok {
				errs = append(errs, errInvalid("host %s: field %s: unknown kind %q", h.ID, f.Name, f.Kind))
				continue
			}
			if kind.IsRelational() && f.Target == "" {
				errs = append(errs, errInvalid("host %s: field %s: %s needs a target", h.ID, f.Name, kind))
				continue
			}
			hm.Fields = append(hm.Fields, schema.FieldSpec{
				Name:   schema.FieldName(f.Name),
				Kind:   schema.FieldKind{Kind: kind, Options: f.Options, Target: schema.ModelID(f.Target)},
				Stored: true,
			})
		}
		res.Hosts = append(res.Hosts, hm)
	}
	return res, errors.Join(errs...)
}

func (c *Config) ParserOptions() modelparser.Options {
	return modelparser.Options{FieldPrefixes: c.FieldPrefixes}
}

// ConstraintRules returns the built-in rules followed by the configured ones
func (c *Config) ConstraintRules() []constraints.Rule {
	return append(constraints.DefaultRules(), c.Rules...)
}
