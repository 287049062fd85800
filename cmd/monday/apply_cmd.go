package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/MondayImport/internal/database"
)

type applyOptions struct {
	file   string
	verify bool
}

func newApplyCmd(a *app) *cobra.Command {
	var opts applyOptions

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run a seed script against DATABASE_URL in one transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.RequireDatabase(); err != nil {
				return withCode(exitConfig, err)
			}
			file := a.cfg.Paths.OutputPath
			if opts.file != "" {
				file = opts.file
			}
			return applyScript(cmd.Context(), a, file, opts.verify, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "SQL file to apply (default: $MONDAY_OUTPUT_PATH)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Count seeded table rows after applying")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	var tables []string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Count rows in the seeded tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.RequireDatabase(); err != nil {
				return withCode(exitConfig, err)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Database.ApplyTimeout)
			defer cancel()

			pool, err := database.Connect(ctx, a.cfg.Database)
			if err != nil {
				return withCode(exitDB, err)
			}
			defer pool.Close()

			return verifyTables(ctx, pool, tables, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringSliceVar(&tables, "table", database.SeedTables, "Tables to count")
	return cmd
}

func applyScript(ctx context.Context, a *app, file string, verify bool, out io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Database.ApplyTimeout)
	defer cancel()

	pool, err := database.Connect(ctx, a.cfg.Database)
	if err != nil {
		return withCode(exitDB, err)
	}
	defer pool.Close()

	res, err := database.ApplyFile(ctx, pool, file)
	if err != nil {
		return withCode(exitDB, err)
	}
	fmt.Fprintf(out, "Applied %s (%d bytes) in %s\n", res.Source, res.Bytes, res.Duration.Round(time.Millisecond))

	if verify {
		return verifyTables(ctx, pool, database.SeedTables, out)
	}
	return nil
}

func verifyTables(ctx context.Context, db database.DBTX, tables []string, out io.Writer) error {
	counts, err := database.Verify(ctx, db, tables)
	if err != nil {
		return withCode(exitDB, err)
	}

	failed := 0
	for _, tc := range counts {
		if tc.Err != nil {
			failed++
			fmt.Fprintf(out, "  %-20s error: %v\n", tc.Table, tc.Err)
			continue
		}
		fmt.Fprintf(out, "  %-20s %d rows\n", tc.Table, tc.Rows)
	}

	if failed > 0 {
		return withCode(exitDB, fmt.Errorf("%d of %d tables failed verification", failed, len(counts)))
	}
	return nil
}
