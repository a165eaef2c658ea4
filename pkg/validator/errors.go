/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package validator

import (
	"errors"
	"fmt"
)

var ErrModuleNotFound = errors.New("module directory not found")

var ErrTaskPanic = errors.New("validation task panicked")

func errModuleNotFound(root string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrModuleNotFound, root, cause)
}
