/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package main

type checkParams struct {
	ConfigFile    string
	AddonsPaths   []string
	Workers       int
	TargetVersion string
	Format        string
	MinSeverity   string
}
