/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package registry

import (
	"errors"
	"fmt"
	"strings"
)

var ErrFrozen = errors.New("registry is frozen")

var ErrUnknownPermissiveness = errors.New("unknown permissiveness")

func ParsePermissiveness(s string) (Permissiveness, error) {
	switch strings.ToLower(s) {
	case "", "permissive", "any":
		return Permissive, nil
	case "unprefixed":
		return Unprefixed, nil
	case "strict":
		return Strict, nil
	}
	return Permissive, fmt.Errorf("%w: %q", ErrUnknownPermissiveness, s)
}
