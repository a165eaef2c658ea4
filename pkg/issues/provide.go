/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package issues

func NewReporter() *Reporter {
	return &Reporter{}
}
