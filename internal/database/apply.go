package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/JonMunkholm/MondayImport/internal/logging"
)

// ErrEmptyScript is returned when there is nothing to execute.
var ErrEmptyScript = errors.New("seed script is empty")

// ApplyResult describes a committed apply run.
type ApplyResult struct {
	Source   string
	Bytes    int
	Command  string // tag of the last statement executed
	Duration time.Duration
}

// Apply executes script inside a single transaction. Any failing statement
// rolls back the whole script.
//
// The script is sent as one simple-protocol Exec, so it may hold many
// statements but no bind parameters.
func Apply(ctx context.Context, db TxBeginner, script string) (ApplyResult, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	result := ApplyResult{Bytes: len(script)}
	if strings.TrimSpace(script) == "" {
		return result, ErrEmptyScript
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // No-op if already committed

	tag, err := tx.Exec(ctx, script)
	if err != nil {
		return result, fmt.Errorf("execute seed script: %w", err)
	}
	result.Command = tag.String()

	if err := tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("failed to commit transaction: %w", err)
	}

	result.Duration = time.Since(start)
	logger.Info("seed script applied", "bytes", result.Bytes, "command", result.Command, "duration", result.Duration)
	return result, nil
}

// ApplyFile reads the script at path and applies it.
func ApplyFile(ctx context.Context, db TxBeginner, path string) (ApplyResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ApplyResult{Source: path}, fmt.Errorf("read seed script: %w", err)
	}

	result, err := Apply(ctx, db, string(data))
	result.Source = path
	if err != nil {
		return result, fmt.Errorf("apply %s: %w", path, err)
	}
	return result, nil
}
