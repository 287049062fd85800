package boards

import (
	"testing"

	"github.com/JonMunkholm/MondayImport/internal/core"
	"github.com/JonMunkholm/MondayImport/internal/sheet"
	"github.com/google/uuid"
)

// seqEmitter returns an Emitter whose ids are 00000000-..-000000000001,
// ..02 and so on, so tests can predict parent references.
func seqEmitter() *core.Emitter {
	var n byte
	return &core.Emitter{NewID: func() uuid.UUID {
		n++
		var id uuid.UUID
		id[15] = n
		return id
	}}
}

func seqID(n byte) uuid.UUID {
	var id uuid.UUID
	id[15] = n
	return id
}

// table builds a sheet with the given header; rows are indexed in order.
func table(header []string, rows ...[]string) *sheet.Table {
	t := &sheet.Table{Sheet: "Sheet1", Header: header}
	for i, cells := range rows {
		t.Rows = append(t.Rows, sheet.Row{Index: i, Cells: cells})
	}
	return t
}

func statements(t *testing.T, e *core.Emitter) []core.Statement {
	t.Helper()
	var out []core.Statement
	for _, u := range e.Units() {
		s, ok := u.(core.Statement)
		if !ok {
			t.Fatalf("unexpected unit %T", u)
		}
		out = append(out, s)
	}
	return out
}

// value returns the value of column col in s.
func value(t *testing.T, s core.Statement, col string) any {
	t.Helper()
	for i, c := range s.Columns {
		if c == col {
			return s.Values[i]
		}
	}
	t.Fatalf("column %s not in %s", col, s.Table)
	return nil
}
