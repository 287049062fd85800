// Package sheet reads spreadsheet exports into positional, in-memory tables.
//
// The first row of the first worksheet is treated as the header. Every row
// after it is a data row, indexed from zero, and that index is what board
// layouts use for skip offsets and generated codes.
//
// Cells are read as the text Excel displays, except date cells, which are
// read from their serial value and rendered as ISO dates.
package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// ErrNoSheets is returned when a workbook contains no worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// Row is one data row. Cells are positional and carry no type.
type Row struct {
	Index int      // 0-based position after the header row
	Cells []string // cleaned cell values; may be shorter than the header
}

// Cell returns the value at column i. ok is false when the column is
// missing or the cell is blank, so callers can tell "absent" apart from a
// real value.
func (r Row) Cell(i int) (string, bool) {
	if i < 0 || i >= len(r.Cells) {
		return "", false
	}
	v := r.Cells[i]
	if v == "" {
		return "", false
	}
	return v, true
}

// Text returns the value at column i, or "" when absent.
func (r Row) Text(i int) string {
	v, _ := r.Cell(i)
	return v
}

// Has reports whether column i holds a value.
func (r Row) Has(i int) bool {
	_, ok := r.Cell(i)
	return ok
}

// Table is a loaded worksheet.
type Table struct {
	Path   string
	Sheet  string
	Header []string
	Rows   []Row
}

// Width returns the number of columns, taking the widest of the header and
// any data row.
func (t *Table) Width() int {
	w := len(t.Header)
	for _, r := range t.Rows {
		if len(r.Cells) > w {
			w = len(r.Cells)
		}
	}
	return w
}

// ColumnNames returns one name per column. Blank or missing header cells are
// named "Unnamed: <i>".
func (t *Table) ColumnNames() []string {
	names := make([]string, t.Width())
	for i := range names {
		if i < len(t.Header) && t.Header[i] != "" {
			names[i] = t.Header[i]
			continue
		}
		names[i] = "Unnamed: " + strconv.Itoa(i)
	}
	return names
}

// Load opens the workbook at path and reads its first worksheet.
// The file is closed before Load returns.
func Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	t, err := readFirstSheet(f)
	if err != nil {
		return nil, fmt.Errorf("read workbook %s: %w", path, err)
	}
	t.Path = path
	return t, nil
}

func readFirstSheet(f *excelize.File) (*Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	name := sheets[0]

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("rows of sheet %q: %w", name, err)
	}
	raw, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("raw rows of sheet %q: %w", name, err)
	}

	t := &Table{Sheet: name}
	if len(rows) == 0 {
		return t, nil
	}

	dates := newDateReader(f, name)
	for r := range rows {
		if r < len(raw) {
			rows[r] = dates.resolve(r, rows[r], raw[r])
		}
	}

	t.Header = cleanRow(rows[0])
	t.Rows = make([]Row, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		t.Rows = append(t.Rows, Row{Index: i, Cells: cleanRow(cells)})
	}
	return t, nil
}

func cleanRow(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = CleanCell(c)
	}
	return out
}

// CleanCell trims whitespace and normalizes the value to Unicode NFC, so
// composed and decomposed forms of the same label compare equal.
func CleanCell(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(s, "\ufeff"))
	return norm.NFC.String(s)
}
