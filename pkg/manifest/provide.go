/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package manifest

import (
	"fmt"
	"io/fs"

	"github.com/voedger/modlint/pkg/issues"
)

// Parse reads the manifest dict. A python syntax error is returned as is
func Parse(fileName string, content string) (*Descriptor, error) {
	return parseImpl(fileName, content)
}

// Find returns the manifest file name of the module directory fsys
func Find(fsys fs.FS) (string, error) {
	for _, name := range FileNames {
		if st, err := fs.Stat(fsys, name); err == nil && !st.IsDir() {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: none of %v", ErrNotFound, FileNames)
}

// Validate checks the descriptor. Data file paths are resolved in moduleFS
func Validate(d *Descriptor, moduleFS fs.FS, cfg Config) []issues.Issue {
	c := &checker{d: d, cfg: &cfg, fsys: moduleFS}
	return c.check()
}

func DefaultConfig() Config {
	return Config{
		Required: map[string]KeyType{
			KeyName:    TypeStr,
			KeyVersion: TypeStr,
			KeyDepends: TypeList,
			KeyLicense: TypeStr,
		},
		Recommended: []string{"summary", "author", "website", "category", KeyData},
		KeyTypes: map[string]KeyType{
			"summary":               TypeStr,
			"description":           TypeStr,
			"author":                TypeStr,
			"maintainer":            TypeStr,
			"website":               TypeStr,
			"category":              TypeStr,
			KeyData:                 TypeList,
			KeyDemo:                 TypeList,
			"assets":                TypeDict,
			"external_dependencies": TypeDict,
			KeyInstallable:          TypeBool,
			"application":           TypeBool,
			"auto_install":          "bool|list",
			"sequence":              TypeInt,
			"images":                TypeList,
			"price":                 "int|float",
			"currency":              TypeStr,
			"pre_init_hook":         TypeStr,
			"post_init_hook":        TypeStr,
			"uninstall_hook":        TypeStr,
		},
		Licenses: []string{
			"GPL-2",
			"GPL-2 or any later version",
			"GPL-3",
			"GPL-3 or any later version",
			"AGPL-3",
			"LGPL-3",
			"Other OSI approved licence",
			"OEEL-1",
			"OPL-1",
			"Other proprietary",
		},
		TargetVersion:  DefaultTargetVersion,
		Foundational:   DefaultFoundational,
		DataExtensions: []string{".xml", ".csv", ".sql"},
	}
}
