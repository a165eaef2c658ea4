/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package timeu

import "time"

func NewITime() ITime {
	return &realTime{}
}

func NewMockTime(now time.Time) IMockTime {
	return &mockedTime{now: now}
}
