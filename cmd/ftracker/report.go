package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Yandex-Practicum/go-ftracker/internal/app"
	"github.com/Yandex-Practicum/go-ftracker/internal/config"
)

type ReportOptions struct {
	PackagesFile string
	KeepGoing    bool
}

func DefaultReportOptions(cfg *config.Config) *ReportOptions {
	return &ReportOptions{
		PackagesFile: cfg.PackagesFile,
	}
}

func NewCmdReport(cfg *config.Config) *cobra.Command {
	o := DefaultReportOptions(cfg)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print one report line per package of tracker readings.",
		Long: "Print one report line per package of tracker readings.\n" +
			"Packages are read from a YAML or JSON file; without a file the reference scenario is used.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ReportOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.PackagesFile, "file", "f", o.PackagesFile, "Path to YAML or JSON file with packages.")
	fs.BoolVarP(&o.KeepGoing, "keep-going", "k", o.KeepGoing, "Report the remaining packages after a failed one.")
}

func (o *ReportOptions) Validate(args []string) error {
	return nil
}

func (o *ReportOptions) Run(_ context.Context, out io.Writer) error {
	packages := app.DefaultPackages()
	if o.PackagesFile != "" {
		var err error
		if packages, err = app.LoadPackages(o.PackagesFile); err != nil {
			return err
		}
	}
	zap.S().Debugw("reporting packages", "count", len(packages), "file", o.PackagesFile)

	if err := app.Process(out, packages, app.Options{KeepGoing: o.KeepGoing}); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
