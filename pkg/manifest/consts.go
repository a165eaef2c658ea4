/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package manifest

import "regexp"

// manifest file names, current first
var FileNames = []string{"__manifest__.py", "__openerp__.py"}

const (
	KeyName        = "name"
	KeyVersion     = "version"
	KeyDepends     = "depends"
	KeyLicense     = "license"
	KeyData        = "data"
	KeyDemo        = "demo"
	KeyInstallable = "installable"
)

const (
	TypeStr  KeyType = "str"
	TypeList KeyType = "list"
	TypeBool KeyType = "bool"
	TypeDict KeyType = "dict"
	TypeInt  KeyType = "int"
)

const (
	DefaultTargetVersion = "17.0"
	DefaultFoundational  = "base"
)

var (
	versionRegexp    = regexp.MustCompile(`^\d+(\.\d+)*`)
	dependencyRegexp = regexp.MustCompile(`^[a-z0-9][a-z0-9_]*$`)
)

const (
	securityDir       = "security/"
	accessRightsFile  = "ir.model.access.csv"
	viewsDir          = "views/"
	fullVersionLength = 5
)
