/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package related

const (
	Compatible Verdict = iota
	// compatible, worth a look
	Advisory
	// a date widened to a datetime
	Widening
	Mismatch
)
