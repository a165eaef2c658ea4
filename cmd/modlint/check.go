/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/modlint/pkg/config"
	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/validator"
)

func newCheckCmd() *cobra.Command {
	params := checkParams{}
	cmd := &cobra.Command{
		Use:   "check <module dir>...",
		Short: "validate addon modules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return check(cmd, params, args)
		},
	}
	cmd.SilenceErrors = true
	cmd.Flags().StringVarP(&params.ConfigFile, "config", "c", "", "YAML or TOML configuration file")
	cmd.Flags().StringArrayVar(&params.AddonsPaths, "addons-path", nil, "directory with dependency modules, may be repeated")
	cmd.Flags().IntVar(&params.Workers, "workers", 0, "number of parallel workers, 0 keeps the configured value")
	cmd.Flags().StringVar(&params.TargetVersion, "target-version", "", "release series module versions must target")
	cmd.Flags().StringVar(&params.Format, "format", issues.FormatText, "report format: text or json")
	cmd.Flags().StringVar(&params.MinSeverity, "min-severity", "info", "lowest severity to print: info, warning or error")
	return cmd
}

func check(cmd *cobra.Command, params checkParams, moduleDirs []string) error {
	cfg, err := loadConfig(params)
	if err != nil {
		return err
	}
	if params.Format != issues.FormatText && params.Format != issues.FormatJSON {
		return fmt.Errorf("%w: %s", issues.ErrUnknownFormat, params.Format)
	}
	minSeverity, err := issues.ParseSeverity(params.MinSeverity)
	if err != nil {
		return err
	}
	v, err := validator.New(cfg)
	if err != nil {
		return err
	}

	results, err := v.ValidateAll(cmd.Context(), moduleDirs...)
	if err != nil && len(results) == 0 {
		return err
	}

	failed := false
	reports := make([]issues.Report, 0, len(results))
	for _, res := range results {
		if res.ExitStatus != issues.ExitOK {
			failed = true
		}
		reports = append(reports, issues.Report{
			RunID:   res.RunID,
			Module:  res.Module,
			Issues:  issues.Filter(res.Issues, minSeverity),
			Summary: res.Summary,
		})
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("%s: %d issue(s), exit status %d", res.Module, res.Summary.Total, res.ExitStatus))
		}
	}
	if werr := issues.WriteReport(cmd.OutOrStdout(), params.Format, reports...); werr != nil {
		return werr
	}
	if err != nil {
		return err
	}
	if failed {
		return ErrIssuesFound
	}
	return nil
}

func loadConfig(params checkParams) (cfg config.Config, err error) {
	cfg = config.Default()
	if params.ConfigFile != "" {
		if cfg, err = config.Load(params.ConfigFile); err != nil {
			return cfg, err
		}
	}
	cfg.AddonsPaths = append(cfg.AddonsPaths, params.AddonsPaths...)
	if params.Workers > 0 {
		cfg.Workers = params.Workers
	}
	if params.TargetVersion != "" {
		cfg.Manifest.TargetVersion = params.TargetVersion
	}
	return cfg, nil
}
