/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package validator

const (
	taskSource taskKind = iota
	taskData
)

const extPython = ".py"
