package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/MondayImport/internal/analysis"
	"github.com/JonMunkholm/MondayImport/internal/core"
)

type analyzeOptions struct {
	exportDir string
	boards    []string
	format    string
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print a structural report of every board export",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), a, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.exportDir, "export-dir", "", "Monday.com export directory (default: $MONDAY_EXPORT_DIR)")
	cmd.Flags().StringSliceVar(&opts.boards, "board", nil, "Only analyze these board keys")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Report format: text, json or yaml")
	return cmd
}

func runAnalyze(ctx context.Context, a *app, opts analyzeOptions, out io.Writer) error {
	exportDir := a.cfg.Paths.ExportDir
	if opts.exportDir != "" {
		exportDir = opts.exportDir
	}

	format, err := analysis.ParseFormat(opts.format)
	if err != nil {
		return withCode(exitUsage, err)
	}

	boards, err := selectBoards(opts.boards, core.Analyzable())
	if err != nil {
		return err
	}

	analyzer := analysis.NewAnalyzer(exportDir, boards, analysis.Options{
		SampleThreshold: a.cfg.Analysis.SampleThreshold,
		SampleLimit:     a.cfg.Analysis.SampleLimit,
		PreviewRows:     a.cfg.Analysis.PreviewRows,
	})

	report, err := analyzer.Run(ctx)
	if err != nil {
		return err
	}
	if err := analysis.Write(out, report, format); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
