/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package main

import "errors"

// ErrIssuesFound is returned when at least one module has Error issues
var ErrIssuesFound = errors.New("validation errors found")
