/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package datafile

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/registry"
)

func ParseXML(fileName string, r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseXMLImpl(fileName, data)
}

func ParseCSV(fileName string, r io.Reader) (*File, error) {
	return parseCSVImpl(fileName, r)
}

// Parse chooses the format by the file name extension
func Parse(fileName string, content []byte) (*File, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ExtXML:
		return parseXMLImpl(fileName, content)
	case ExtCSV:
		return parseCSVImpl(fileName, bytes.NewReader(content))
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, fileName)
}

func IsDataFile(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	return ext == ExtXML || ext == ExtCSV
}

// NewValidator returns the validator over a frozen registry. Empty dateFormats means DefaultDateFormats
func NewValidator(reg *registry.Registry, dateFormats ...string) *Validator {
	if len(dateFormats) == 0 {
		dateFormats = DefaultDateFormats
	}
	return &Validator{reg: reg, formats: dateFormats}
}

// ValidateReferences checks record references across the files of one module, files given in load order
func ValidateReferences(files []*File, module string) []issues.Issue {
	return validateRefsImpl(files, module)
}
