/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package validator

import (
	"context"
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/voedger/modlint/pkg/config"
	"github.com/voedger/modlint/pkg/constraints"
	"github.com/voedger/modlint/pkg/timeu"
)

func WithClock(clock timeu.ITime) Option {
	return func(v *Validator) {
		v.clock = clock
	}
}

func New(cfg config.Config, opts ...Option) (*Validator, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	v := &Validator{cfg: cfg, clock: timeu.NewITime()}
	for _, opt := range opts {
		opt(v)
	}
	var err error
	if v.regCfg, err = cfg.RegistryConfig(); err != nil {
		return nil, err
	}
	if v.engine, err = constraints.NewEngine(v.clock, cfg.ConstraintRules()...); err != nil {
		return nil, err
	}
	if cfg.CacheSize > 0 {
		if v.cache, err = lru.New[cacheKey, *parsedUnit](cfg.CacheSize); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Validate runs all the checks over one module directory.
// Findings are in the Result, the error is for a missing module root or a cancelled context
func (v *Validator) Validate(ctx context.Context, moduleRoot string) (*Result, error) {
	return v.validateImpl(ctx, moduleRoot)
}

// ValidateAll validates modules one after another sharing the parsed sources cache
func (v *Validator) ValidateAll(ctx context.Context, moduleRoots ...string) ([]*Result, error) {
	res := make([]*Result, 0, len(moduleRoots))
	errs := make([]error, 0)
	for _, root := range moduleRoots {
		r, err := v.Validate(ctx, root)
		if err != nil {
			if ctx.Err() != nil {
				return res, err
			}
			errs = append(errs, err)
			continue
		}
		res = append(res, r)
	}
	return res, errors.Join(errs...)
}
