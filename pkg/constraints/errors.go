/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package constraints

import (
	"errors"
	"fmt"
)

var ErrInvalidRule = errors.New("invalid constraint rule")

func errInvalidRule(name string, msg string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidRule, name, fmt.Sprintf(msg, args...))
}
