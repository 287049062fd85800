// Package sheettest writes small workbooks for tests.
package sheettest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Styled is a cell value written with a number format. NumFmt is a
// built-in format ID; CustomNumFmt, when set, takes precedence.
type Styled struct {
	Value        any
	NumFmt       int
	CustomNumFmt string
}

// WriteWorkbook saves rows into the first sheet of a new workbook at
// dir/name, creating parent directories, and returns the full path.
// A nil cell leaves the cell blank. A Styled cell is written with its
// number format.
func WriteWorkbook(t testing.TB, dir, name string, rows [][]any) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			styled, ok := v.(Styled)
			if ok {
				v = styled.Value
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set %s: %v", cell, err)
			}
			if ok {
				setNumFmt(t, f, sheet, cell, styled)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save %s: %v", path, err)
	}
	return path
}

func setNumFmt(t testing.TB, f *excelize.File, sheet, cell string, s Styled) {
	t.Helper()

	style := &excelize.Style{NumFmt: s.NumFmt}
	if s.CustomNumFmt != "" {
		style.CustomNumFmt = &s.CustomNumFmt
	}
	id, err := f.NewStyle(style)
	if err != nil {
		t.Fatalf("style %s: %v", cell, err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, id); err != nil {
		t.Fatalf("style %s: %v", cell, err)
	}
}
