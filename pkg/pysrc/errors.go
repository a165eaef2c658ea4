/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package pysrc

import (
	"errors"
	"fmt"
)

var ErrSyntax = errors.New("syntax error")

var ErrNotLiteral = errors.New("not a literal")

type SyntaxError struct {
	File string
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, ErrSyntax, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func syntaxErr(file string, line int, msg string, args ...any) error {
	return &SyntaxError{File: file, Line: line, Msg: fmt.Sprintf(msg, args...)}
}
