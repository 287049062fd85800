// Package analysis summarizes the structure of board exports: column
// fill rates, inferred kinds, key candidates and the status workflows the
// import relies on. It only reads; nothing here touches the seed script.
package analysis

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/JonMunkholm/MondayImport/internal/core"
	"github.com/JonMunkholm/MondayImport/internal/logging"
	"github.com/JonMunkholm/MondayImport/internal/sheet"
)

// Kind is the inferred type of a column's values.
type Kind string

const (
	KindEmpty   Kind = "empty"
	KindInteger Kind = "integer"
	KindDecimal Kind = "decimal"
	KindDate    Kind = "date"
	KindBool    Kind = "bool"
	KindText    Kind = "text"
	KindMixed   Kind = "mixed"
)

// StatusColumn holds the workflow stage of a row on boards that have one.
const StatusColumn = "Status"

// Options tunes how much detail the report carries.
type Options struct {
	SampleThreshold int // samples are listed when distinct < threshold
	SampleLimit     int
	PreviewRows     int
}

// DefaultOptions returns the thresholds used by the command line.
func DefaultOptions() Options {
	return Options{SampleThreshold: 20, SampleLimit: 5, PreviewRows: 3}
}

// ColumnStats describes one column of a sheet.
type ColumnStats struct {
	Name     string   `json:"name" yaml:"name"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	NonNull  int      `json:"non_null" yaml:"non_null"`
	Total    int      `json:"total" yaml:"total"`
	Distinct int      `json:"distinct" yaml:"distinct"`
	Samples  []string `json:"samples,omitempty" yaml:"samples,omitempty"` // in order of first appearance
}

// SheetReport is the summary of one board export. Err is set when the
// export could not be read; the other fields are then zero and Error holds
// the message for encoded reports.
type SheetReport struct {
	Key         string        `json:"key" yaml:"key"`
	Label       string        `json:"label" yaml:"label"`
	Path        string        `json:"path" yaml:"path"`
	Rows        int           `json:"rows" yaml:"rows"`
	Columns     []ColumnStats `json:"columns,omitempty" yaml:"columns,omitempty"`
	Preview     [][]string    `json:"preview,omitempty" yaml:"preview,omitempty"`
	PrimaryKey  string        `json:"primary_key,omitempty" yaml:"primary_key,omitempty"`
	ForeignKeys []string      `json:"foreign_keys,omitempty" yaml:"foreign_keys,omitempty"`
	Error       string        `json:"error,omitempty" yaml:"error,omitempty"`
	Err         error         `json:"-" yaml:"-"`
}

// Workflow is the set of distinct status values found on a board.
type Workflow struct {
	Name   string   `json:"name" yaml:"name"`
	Board  string   `json:"board" yaml:"board"`
	Stages []string `json:"stages" yaml:"stages"`
}

// Entity is one line of the relationships summary.
type Entity struct {
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
}

// Report is the result of analyzing every board.
type Report struct {
	Sheets    []SheetReport `json:"sheets" yaml:"sheets"`
	Entities  []Entity      `json:"entities" yaml:"entities"`
	Workflows []Workflow    `json:"workflows" yaml:"workflows"`
}

// Failed returns the reports of sheets that could not be read.
func (r *Report) Failed() []SheetReport {
	var out []SheetReport
	for _, s := range r.Sheets {
		if s.Err != nil {
			out = append(out, s)
		}
	}
	return out
}

// Analyzer builds a Report from the exports under ExportDir.
type Analyzer struct {
	ExportDir string
	Boards    []core.BoardDefinition
	Options   Options

	// Load reads one export. Defaults to sheet.Load.
	Load func(path string) (*sheet.Table, error)
}

// NewAnalyzer returns an analyzer over the analyzable boards.
func NewAnalyzer(exportDir string, boards []core.BoardDefinition, opts Options) *Analyzer {
	return &Analyzer{ExportDir: exportDir, Boards: boards, Options: opts}
}

// Run analyzes each board in order. A board that fails to load is
// recorded in its SheetReport and does not stop the run.
func (a *Analyzer) Run(ctx context.Context) (*Report, error) {
	logger := logging.FromContext(ctx)
	load := a.Load
	if load == nil {
		load = sheet.Load
	}

	report := &Report{}
	for _, def := range a.Boards {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("analysis cancelled: %w", err)
		}
		if !def.Analyzable() {
			continue
		}

		if def.Description != "" {
			report.Entities = append(report.Entities, Entity{Label: def.Label, Description: def.Description})
		}

		sr := SheetReport{Key: def.Key, Label: def.Label, Path: filepath.Join(a.ExportDir, def.File)}
		t, err := load(sr.Path)
		if err != nil {
			sr.Err, sr.Error = err, err.Error()
			logger.Warn("board analysis failed", "board", def.Key, "error", err)
			report.Sheets = append(report.Sheets, sr)
			continue
		}

		rep := AnalyzeTable(t, a.Options)
		rep.Key, rep.Label, rep.Path = sr.Key, sr.Label, sr.Path
		report.Sheets = append(report.Sheets, rep)
		logger.Info("board analyzed", "board", def.Key, "rows", rep.Rows, "columns", len(rep.Columns))

		if def.Workflow != "" {
			if stages := DistinctValues(t, StatusColumn); len(stages) > 0 {
				report.Workflows = append(report.Workflows, Workflow{Name: def.Workflow, Board: def.Key, Stages: stages})
			}
		}
	}
	return report, nil
}

// AnalyzeTable summarizes a loaded table.
func AnalyzeTable(t *sheet.Table, opts Options) SheetReport {
	names := t.ColumnNames()
	rep := SheetReport{
		Path:    t.Path,
		Rows:    len(t.Rows),
		Columns: make([]ColumnStats, len(names)),
	}

	for i, name := range names {
		rep.Columns[i] = columnStats(t, i, name, opts)
	}
	rep.PrimaryKey = PrimaryKey(names)
	rep.ForeignKeys = ForeignKeys(names)

	n := min(opts.PreviewRows, len(t.Rows))
	for _, r := range t.Rows[:max(n, 0)] {
		cells := make([]string, len(names))
		for i := range cells {
			cells[i] = r.Text(i)
		}
		rep.Preview = append(rep.Preview, cells)
	}
	return rep
}

func columnStats(t *sheet.Table, col int, name string, opts Options) ColumnStats {
	cs := ColumnStats{Name: name, Total: len(t.Rows)}

	seen := make(map[string]struct{})
	var values []string
	for _, r := range t.Rows {
		v, ok := r.Cell(col)
		if !ok {
			continue
		}
		cs.NonNull++
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	cs.Distinct = len(values)
	cs.Kind = inferKind(values)

	if cs.NonNull > 0 && cs.Distinct < opts.SampleThreshold {
		cs.Samples = values[:min(opts.SampleLimit, len(values))]
	}
	return cs
}

var integerRegex = regexp.MustCompile(`^[+-]?\d+$`)

// kindOf classifies a single non-empty value. Integers win over booleans so
// that 0/1 flags read as numbers.
func kindOf(v string) Kind {
	switch {
	case integerRegex.MatchString(v):
		return KindInteger
	case isDecimal(v):
		return KindDecimal
	case core.ToPgDate(v).Valid:
		return KindDate
	case core.ToPgBool(v).Valid:
		return KindBool
	default:
		return KindText
	}
}

func isDecimal(v string) bool {
	_, ok := core.ParseDecimal(v)
	return ok
}

func inferKind(values []string) Kind {
	if len(values) == 0 {
		return KindEmpty
	}
	kind := kindOf(values[0])
	for _, v := range values[1:] {
		k := kindOf(v)
		switch {
		case k == kind:
		case isNumeric(k) && isNumeric(kind):
			kind = KindDecimal
		default:
			return KindMixed
		}
	}
	return kind
}

func isNumeric(k Kind) bool {
	return k == KindInteger || k == KindDecimal
}

// PrimaryKey picks "Item ID" over "ID". Returns "" when neither exists.
func PrimaryKey(columns []string) string {
	for _, want := range []string{"Item ID", "ID"} {
		for _, c := range columns {
			if c == want {
				return c
			}
		}
	}
	return ""
}

// ForeignKeys lists columns that look like references to another board.
func ForeignKeys(columns []string) []string {
	var out []string
	for _, c := range columns {
		lower := strings.ToLower(c)
		if strings.Contains(c, "ID") || strings.Contains(lower, "link") || strings.Contains(lower, "ref") {
			out = append(out, c)
		}
	}
	return out
}

// DistinctValues returns the distinct non-empty values of the named column
// in order of first appearance. Returns nil when the column is missing.
func DistinctValues(t *sheet.Table, column string) []string {
	idx := -1
	for i, name := range t.ColumnNames() {
		if name == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, r := range t.Rows {
		v, ok := r.Cell(idx)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
