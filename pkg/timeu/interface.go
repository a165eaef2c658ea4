/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package timeu

import "time"

type ITime interface {
	Now() time.Time
}

type IMockTime interface {
	ITime
	Add(d time.Duration)
	Set(t time.Time)
}
