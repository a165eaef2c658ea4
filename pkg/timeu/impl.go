/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package timeu

import (
	"sync"
	"time"
)

type realTime struct{}

type mockedTime struct {
	sync.RWMutex
	now time.Time
}

func (t *realTime) Now() time.Time {
	return time.Now()
}

func (t *mockedTime) Now() time.Time {
	t.RLock()
	defer t.RUnlock()
	return t.now
}

func (t *mockedTime) Add(d time.Duration) {
	t.Lock()
	defer t.Unlock()
	t.now = t.now.Add(d)
}

func (t *mockedTime) Set(now time.Time) {
	t.Lock()
	defer t.Unlock()
	t.now = now
}
