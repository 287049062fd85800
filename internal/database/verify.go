package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JonMunkholm/MondayImport/internal/logging"
)

// SeedTables are the tables the seed script writes to, in load order.
var SeedTables = []string{
	"users",
	"organizations",
	"contacts",
	"product_options",
	"production_jobs",
	"production_stages",
	"addresses",
	"leads",
	"quotes",
	"orders",
}

// TableCount is the row count of one table. Err is set when the table
// could not be counted, usually because it does not exist.
type TableCount struct {
	Table string
	Rows  int64
	Err   error
}

// Verify counts the rows of each table. A failing table does not stop the
// others; only context cancellation returns an error.
func Verify(ctx context.Context, db DBTX, tables []string) ([]TableCount, error) {
	logger := logging.FromContext(ctx)

	counts := make([]TableCount, 0, len(tables))
	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return counts, fmt.Errorf("verify cancelled: %w", err)
		}

		tc := TableCount{Table: table}
		query := "SELECT count(*) FROM " + pgx.Identifier{table}.Sanitize()
		if err := db.QueryRow(ctx, query).Scan(&tc.Rows); err != nil {
			tc.Err = fmt.Errorf("count %s: %w", table, err)
			logger.Warn("table check failed", "table", table, "error", err)
		} else {
			logger.Debug("table checked", "table", table, "rows", tc.Rows)
		}
		counts = append(counts, tc)
	}
	return counts, nil
}
