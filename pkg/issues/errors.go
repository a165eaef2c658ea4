/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package issues

import "errors"

var ErrUnknownSeverity = errors.New("unknown severity")

var ErrUnknownFormat = errors.New("unknown report format")
