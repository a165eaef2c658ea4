/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package config

import (
	"errors"
	"fmt"
)

var ErrUnsupportedFormat = errors.New("unsupported config file format")

var ErrInvalidConfig = errors.New("invalid config")

func errInvalid(msg string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(msg, args...))
}
