/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package datafile

import (
	"github.com/voedger/modlint/pkg/registry"
	"github.com/voedger/modlint/pkg/schema"
)

// File is a parsed data file
type File struct {
	Name    string
	Records []schema.DataRecord
	// record identities defined by the file, in document order
	Defines []Definition
	// record references made by the file, in document order
	Refs []Ref
}

type Definition struct {
	ID   string
	Line int
}

type Ref struct {
	ID    string
	Line  int
	Field schema.FieldName
}

type Validator struct {
	reg     *registry.Registry
	formats []string
}

type xmlParser struct {
	fileName string
	data     []byte
	lines    []int
	file     *File
}
