package sheet

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// builtinDateFormats are the built-in number format IDs that render a
// calendar date. Time-only formats (18-21, 45-47) are left out.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true,
	32: true, 33: true, 34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true,
	55: true, 56: true, 57: true, 58: true,
}

// dateReader rewrites cells holding Excel date serials as ISO dates, so the
// value a board sees does not depend on the number format the cell was
// displayed with.
type dateReader struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]bool // style ID -> renders a date
}

func newDateReader(f *excelize.File, sheet string) *dateReader {
	d := &dateReader{f: f, sheet: sheet, styles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

// resolve replaces the formatted text of date cells in row with the ISO
// form of their raw serial. row is the 0-based worksheet row.
func (d *dateReader) resolve(row int, formatted, raw []string) []string {
	for c := range formatted {
		if c >= len(raw) || raw[c] == formatted[c] {
			continue
		}
		if v, ok := d.cell(row, c, raw[c]); ok {
			formatted[c] = v
		}
	}
	return formatted
}

func (d *dateReader) cell(row, col int, raw string) (string, bool) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", false
	}
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", false
	}
	styleID, err := d.f.GetCellStyle(d.sheet, name)
	if err != nil || !d.isDateStyle(styleID) {
		return "", false
	}

	t, err := excelize.ExcelDateToTime(serial, d.date1904)
	if err != nil {
		return "", false
	}
	if h, m, s := t.Clock(); h == 0 && m == 0 && s == 0 {
		return t.Format(dateLayout), true
	}
	return t.Format(dateTimeLayout), true
}

func (d *dateReader) isDateStyle(id int) bool {
	if v, ok := d.styles[id]; ok {
		return v
	}
	style, err := d.f.GetStyle(id)
	isDate := err == nil && style != nil && isDateFormat(style)
	d.styles[id] = isDate
	return isDate
}

func isDateFormat(s *excelize.Style) bool {
	if s.CustomNumFmt != nil {
		return isDateCode(*s.CustomNumFmt)
	}
	return builtinDateFormats[s.NumFmt]
}

// isDateCode reports whether a custom format code has a day or year token
// outside quoted literals, escapes and bracketed sections.
func isDateCode(code string) bool {
	var quoted, bracket, escaped bool
	for _, r := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case quoted:
			quoted = r != '"'
		case bracket:
			bracket = r != ']'
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = true
		case r == '[':
			bracket = true
		case r == 'd' || r == 'y':
			return true
		}
	}
	return false
}
