/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package manifest

import (
	"errors"
	"fmt"
)

var ErrNoDescriptor = errors.New("manifest does not contain a dict literal")

var ErrNotFound = errors.New("manifest not found")

func errNoDescriptor(fileName string) error {
	return fmt.Errorf("%s: %w", fileName, ErrNoDescriptor)
}
