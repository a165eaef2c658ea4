/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package validator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func newIntPool(workers int, run func(int) (int, error), collect func(int)) *pool[int, int] {
	return &pool[int, int]{workers: workers, run: run, collect: collect}
}

func TestPool(t *testing.T) {
	require := require.New(t)

	t.Run("basic", func(t *testing.T) {
		got := []int{}
		p := newIntPool(3, func(v int) (int, error) { return v * 2, nil }, func(v int) { got = append(got, v) })
		require.NoError(p.process(context.Background(), []int{1, 2, 3, 4, 5}))
		sort.Ints(got)
		require.Equal([]int{2, 4, 6, 8, 10}, got)
	})

	t.Run("no tasks", func(t *testing.T) {
		called := false
		p := newIntPool(0, func(v int) (int, error) { return v, nil }, func(int) { called = true })
		require.NoError(p.process(context.Background(), nil))
		require.False(called)
	})

	t.Run("run error", func(t *testing.T) {
		boom := errors.New("boom")
		var collected int32
		p := newIntPool(2, func(v int) (int, error) {
			if v == 3 {
				return 0, boom
			}
			return v, nil
		}, func(int) { atomic.AddInt32(&collected, 1) })
		require.ErrorIs(p.process(context.Background(), []int{1, 2, 3, 4, 5}), boom)
		require.Less(atomic.LoadInt32(&collected), int32(5))
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := newIntPool(1, func(v int) (int, error) { return v, nil }, func(int) {})
		require.ErrorIs(p.process(ctx, []int{1, 2, 3}), context.Canceled)
	})

	t.Run("panic is isolated to its task", func(t *testing.T) {
		got := []string{}
		p := &pool[int, string]{
			workers: 2,
			run: func(v int) (string, error) {
				if v == 2 {
					panic("broken input")
				}
				return fmt.Sprint(v), nil
			},
			recovered: func(v int, cause any) string { return fmt.Sprintf("%d: %v", v, cause) },
			collect:   func(s string) { got = append(got, s) },
		}
		require.NoError(p.process(context.Background(), []int{1, 2, 3}))
		sort.Strings(got)
		require.Equal([]string{"1", "2: broken input", "3"}, got)
	})

	t.Run("panic without recovery is an error", func(t *testing.T) {
		p := newIntPool(2, func(v int) (int, error) {
			if v == 2 {
				panic("broken input")
			}
			return v, nil
		}, func(int) {})
		require.ErrorIs(p.process(context.Background(), []int{1, 2, 3}), ErrTaskPanic)
	})
}
