/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package datafile

import (
	"errors"
	"fmt"
)

var ErrMalformed = errors.New("malformed data file")

var ErrUnsupportedFile = errors.New("unsupported data file")

func malformed(fileName string, line int, msg string, args ...any) error {
	return &MalformedError{File: fileName, Line: line, Msg: fmt.Sprintf(msg, args...)}
}

type MalformedError struct {
	File string
	Line int
	Msg  string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, ErrMalformed, e.Msg)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}
