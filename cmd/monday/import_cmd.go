package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/MondayImport/internal/core"
)

type importOptions struct {
	exportDir string
	output    string
	boards    []string
	strict    bool
	apply     bool
	verify    bool
}

func newImportCmd(a *app) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Write a SQL seed script from the board exports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), a, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.exportDir, "export-dir", "", "Monday.com export directory (default: $MONDAY_EXPORT_DIR)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "SQL file to write (default: $MONDAY_OUTPUT_PATH)")
	cmd.Flags().StringSliceVar(&opts.boards, "board", nil, "Only import these board keys")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit non-zero when any board fails to import")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "Apply the script to DATABASE_URL after writing it")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Count seeded table rows after --apply")
	return cmd
}

func runImport(ctx context.Context, a *app, opts importOptions, out io.Writer) error {
	exportDir := a.cfg.Paths.ExportDir
	if opts.exportDir != "" {
		exportDir = opts.exportDir
	}
	output := a.cfg.Paths.OutputPath
	if opts.output != "" {
		output = opts.output
	}
	if opts.verify && !opts.apply {
		return withCode(exitUsage, errors.New("--verify requires --apply"))
	}
	if opts.apply {
		if err := a.cfg.RequireDatabase(); err != nil {
			return withCode(exitConfig, err)
		}
	}

	boards, err := selectBoards(opts.boards, core.Importable())
	if err != nil {
		return err
	}

	result, err := core.NewImporter(exportDir, boards).WriteFile(ctx, output)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "SQL migration file created: %s\n", result.OutputPath)
	fmt.Fprintf(out, "Total SQL statements: %d\n", result.Statements)
	for _, b := range result.Failed() {
		fmt.Fprintf(out, "Skipped %s: %v\n", b.Label, b.Err)
	}

	if opts.strict && len(result.Failed()) > 0 {
		return withCode(exitPartial, fmt.Errorf("%d of %d boards failed to import", len(result.Failed()), len(result.Boards)))
	}

	if opts.apply {
		return applyScript(ctx, a, output, opts.verify, out)
	}
	return nil
}
