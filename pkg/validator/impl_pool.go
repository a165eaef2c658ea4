/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package validator

import (
	"context"
	"fmt"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/sync/errgroup"
)

// pool runs the tasks of one phase on at most workers goroutines.
// Results are collected by a single goroutine, so collect may own mutable state without locks
type pool[IN any, OUT any] struct {
	workers int
	run     func(IN) (OUT, error)
	// recovered turns a panic of run into the result of that task, nil re-raises it as an error
	recovered func(task IN, cause any) OUT
	collect   func(OUT)
}

// process returns the first error of run or the ctx error. Tasks not started by then are skipped
func (p *pool[IN, OUT]) process(ctx context.Context, tasks []IN) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.workers, 1))

	results := make(chan OUT, max(p.workers, 1))
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for out := range results {
			p.collect(out)
		}
	}()

	for _, task := range tasks {
		if gctx.Err() != nil {
			break
		}
		task := task
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			out, err := p.runTask(task)
			if err != nil {
				return err
			}
			results <- out
			return nil
		})
	}

	err := g.Wait()
	close(results)
	<-collected
	if err == nil {
		err = ctx.Err()
	}
	return err
}

func (p *pool[IN, OUT]) runTask(task IN) (out OUT, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		logger.Error("recovered from panic:", r)
		if p.recovered == nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanic, r)
			return
		}
		out, err = p.recovered(task, r), nil
	}()
	return p.run(task)
}
