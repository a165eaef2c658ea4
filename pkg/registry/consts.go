/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package registry

const (
	// Permissive: any absent field may exist
	Permissive Permissiveness = iota
	// Unprefixed: absent fields with a custom prefix are unknown, others may exist
	Unprefixed
	// Strict: the known fields are exhaustive
	Strict
)

const (
	Found LookupStatus = iota
	UnknownModel
	UnknownField
)

const DefaultCustomPrefix = "x_"
