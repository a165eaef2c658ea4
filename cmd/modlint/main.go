/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		if !errors.Is(err, ErrIssuesFound) {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"modlint",
		"static validator for ORM addon modules",
		args,
		ver,
		newCheckCmd(),
	)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
