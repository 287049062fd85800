package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JonMunkholm/MondayImport/internal/logging"
	"github.com/JonMunkholm/MondayImport/internal/sheet"
	"github.com/google/uuid"
)

// BoardResult is the outcome of importing one board.
type BoardResult struct {
	Key        string
	Label      string
	Statements int
	Err        error // non-nil if the board was replaced by an error comment
}

// ImportResult contains the final result of an import run.
type ImportResult struct {
	OutputPath string
	Boards     []BoardResult
	Statements int // INSERT statements in the script
	Units      int // statements and comments after the header
	Duration   time.Duration
}

// Failed returns the boards that could not be imported.
func (r ImportResult) Failed() []BoardResult {
	var out []BoardResult
	for _, b := range r.Boards {
		if b.Err != nil {
			out = append(out, b)
		}
	}
	return out
}

// Importer turns board exports into a seed script.
type Importer struct {
	ExportDir string
	Boards    []BoardDefinition

	// Optional hooks, defaulted by NewImporter.
	Now   func() time.Time
	NewID func() uuid.UUID
	Load  func(path string) (*sheet.Table, error)
}

// NewImporter returns an Importer for the given boards. Pass Importable()
// to use every registered board.
func NewImporter(exportDir string, boards []BoardDefinition) *Importer {
	return &Importer{
		ExportDir: exportDir,
		Boards:    boards,
		Now:       time.Now,
		NewID:     uuid.New,
		Load:      sheet.Load,
	}
}

// Build imports every board in order. A board that fails is replaced by an
// error comment; Build only returns an error when ctx is done.
func (im *Importer) Build(ctx context.Context) (*Script, ImportResult, error) {
	start := time.Now()
	logger := logging.FromContext(ctx)

	script := &Script{Header: []string{
		"Monday.com Data Import",
		"Generated: " + im.Now().Format(time.RFC3339),
		"This migration imports data from Monday.com export",
	}}
	result := ImportResult{}

	for _, def := range im.Boards {
		if err := ctx.Err(); err != nil {
			return nil, result, fmt.Errorf("import cancelled: %w", err)
		}

		units, br := im.importBoard(def)
		script.Append(units...)
		result.Boards = append(result.Boards, br)
		result.Statements += br.Statements

		if br.Err != nil {
			logger.Warn("board import failed", "board", def.Key, "error", br.Err)
		} else {
			logger.Info("board imported", "board", def.Key, "statements", br.Statements)
		}
	}

	result.Units = len(script.Units)
	result.Duration = time.Since(start)
	return script, result, nil
}

func (im *Importer) importBoard(def BoardDefinition) ([]Unit, BoardResult) {
	br := BoardResult{Key: def.Key, Label: def.Label}

	e := NewEmitter()
	if im.NewID != nil {
		e.NewID = im.NewID
	}

	if err := im.runBoard(def, e); err != nil {
		br.Err = err
		msg := fmt.Sprintf("Error importing %s: %v", strings.ToLower(def.Label), err)
		return []Unit{Comment(msg)}, br
	}

	br.Statements = e.Statements()
	return append([]Unit{Comment(def.Section)}, e.Units()...), br
}

func (im *Importer) runBoard(def BoardDefinition, e *Emitter) error {
	if def.Static != nil {
		def.Static(e)
		return nil
	}
	if def.Import == nil {
		return fmt.Errorf("board %s has no importer", def.Key)
	}

	load := im.Load
	if load == nil {
		load = sheet.Load
	}
	t, err := load(filepath.Join(im.ExportDir, def.File))
	if err != nil {
		return err
	}
	return def.Import(t, e)
}

// WriteFile builds the script and writes it to path, creating parent
// directories. The file is closed before WriteFile returns.
func (im *Importer) WriteFile(ctx context.Context, path string) (result ImportResult, err error) {
	script, result, err := im.Build(ctx)
	if err != nil {
		return result, err
	}
	result.OutputPath = path

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return result, fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return result, fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()

	if _, err := script.WriteTo(f); err != nil {
		return result, fmt.Errorf("write output file: %w", err)
	}

	logging.FromContext(ctx).Info("seed script written",
		"path", path,
		"statements", result.Statements,
		"failed_boards", len(result.Failed()),
	)
	return result, nil
}
