package analysis

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/MondayImport/internal/core"
	"github.com/JonMunkholm/MondayImport/internal/sheet"
	"github.com/JonMunkholm/MondayImport/internal/sheet/sheettest"
)

func table(header []string, rows ...[]string) *sheet.Table {
	t := &sheet.Table{Header: header}
	for i, cells := range rows {
		t.Rows = append(t.Rows, sheet.Row{Index: i, Cells: cells})
	}
	return t
}

func TestInferKind(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   Kind
	}{
		{"empty", nil, KindEmpty},
		{"integers", []string{"1", "22", "-3"}, KindInteger},
		{"integer and decimal", []string{"1", "2.5"}, KindDecimal},
		{"currency", []string{"£25", "$1,200.00"}, KindDecimal},
		{"dates", []string{"2025-09-01", "2025-10-12"}, KindDate},
		{"bools", []string{"yes", "no"}, KindBool},
		{"text", []string{"Halter", "Saddle"}, KindText},
		{"mixed", []string{"Halter", "12"}, KindMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferKind(tt.values))
		})
	}
}

func TestPrimaryKey(t *testing.T) {
	assert.Equal(t, "Item ID", PrimaryKey([]string{"ID", "Name", "Item ID"}))
	assert.Equal(t, "ID", PrimaryKey([]string{"Name", "ID"}))
	assert.Equal(t, "", PrimaryKey([]string{"Name", "Item id"}))
}

func TestForeignKeys(t *testing.T) {
	got := ForeignKeys([]string{"Name", "Item ID", "Supplier Link", "Reference", "Status", "id"})
	assert.Equal(t, []string{"Item ID", "Supplier Link", "Reference"}, got)
}

func TestAnalyzeTable(t *testing.T) {
	tbl := table(
		[]string{"Name", "Status", "", "Item ID"},
		[]string{"Webb", "Done", "", "1"},
		[]string{"Kath", "Done", "", "2"},
		[]string{"Pro", "Stuck"},
		[]string{"Aeos", "", "", "4"},
	)

	rep := AnalyzeTable(tbl, DefaultOptions())

	assert.Equal(t, 4, rep.Rows)
	require.Len(t, rep.Columns, 4)
	assert.Equal(t, "Item ID", rep.PrimaryKey)
	assert.Equal(t, []string{"Item ID"}, rep.ForeignKeys)

	status := rep.Columns[1]
	assert.Equal(t, "Status", status.Name)
	assert.Equal(t, 3, status.NonNull)
	assert.Equal(t, 4, status.Total)
	assert.Equal(t, 2, status.Distinct)
	assert.Equal(t, KindText, status.Kind)
	assert.Equal(t, []string{"Done", "Stuck"}, status.Samples)

	unnamed := rep.Columns[2]
	assert.Equal(t, "Unnamed: 2", unnamed.Name)
	assert.Equal(t, KindEmpty, unnamed.Kind)
	assert.Empty(t, unnamed.Samples)

	assert.Equal(t, KindInteger, rep.Columns[3].Kind)

	require.Len(t, rep.Preview, 3)
	assert.Equal(t, []string{"Pro", "Stuck", "", ""}, rep.Preview[2])
}

func TestAnalyzeTable_SampleLimits(t *testing.T) {
	var rows [][]string
	for _, v := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		rows = append(rows, []string{v})
	}
	tbl := table([]string{"Letter"}, rows...)

	rep := AnalyzeTable(tbl, Options{SampleThreshold: 20, SampleLimit: 5})
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, rep.Columns[0].Samples)
	assert.Empty(t, rep.Preview)

	rep = AnalyzeTable(tbl, Options{SampleThreshold: 7, SampleLimit: 5})
	assert.Empty(t, rep.Columns[0].Samples, "distinct count at the threshold lists no samples")
}

func TestDistinctValues(t *testing.T) {
	tbl := table([]string{"Name", "Status"},
		[]string{"a", "Working on it"},
		[]string{"b", "Done"},
		[]string{"c", "Working on it"},
		[]string{"d"},
	)
	assert.Equal(t, []string{"Working on it", "Done"}, DistinctValues(tbl, "Status"))
	assert.Nil(t, DistinctValues(tbl, "Owner"))
}

func testBoards() []core.BoardDefinition {
	return []core.BoardDefinition{
		{Key: "jobs", Label: "Workshop Jobs", File: "boards/jobs.xlsx", Description: "Production tracking with stages", Workflow: "Production Stages"},
		{Key: "accounts", Label: "Workshop Accounts", File: "boards/accounts.xlsx", Description: "Customer/deal information", Workflow: "Sales Pipeline Stages"},
		{Key: "sample", Label: "Sample", Static: func(*core.Emitter) {}},
	}
}

func TestAnalyzer_Run(t *testing.T) {
	dir := t.TempDir()
	sheettest.WriteWorkbook(t, dir, "boards/jobs.xlsx", [][]any{
		{"Name", "Status", "Item ID"},
		{"Webb", "Working on it", 5001},
		{"Kath", "Done", 5002},
	})

	a := NewAnalyzer(dir, testBoards(), DefaultOptions())
	rep, err := a.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, rep.Sheets, 2, "static boards are not analyzed")
	jobs := rep.Sheets[0]
	require.NoError(t, jobs.Err)
	assert.Equal(t, "jobs", jobs.Key)
	assert.Equal(t, 2, jobs.Rows)
	assert.Equal(t, KindInteger, jobs.Columns[2].Kind)

	accounts := rep.Sheets[1]
	assert.Error(t, accounts.Err)
	assert.Len(t, rep.Failed(), 1)

	assert.Len(t, rep.Entities, 2, "entities are listed even when the export is missing")
	require.Len(t, rep.Workflows, 1)
	assert.Equal(t, Workflow{Name: "Production Stages", Board: "jobs", Stages: []string{"Working on it", "Done"}}, rep.Workflows[0])
}

func TestAnalyzer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewAnalyzer(t.TempDir(), testBoards(), DefaultOptions())
	_, err := a.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRender(t *testing.T) {
	rep := &Report{
		Sheets: []SheetReport{
			analyzedAs(table(
				[]string{"Name", "Status", "Item ID"},
				[]string{"Webb", "Done", "1"},
			), "Workshop Jobs"),
			{Label: "Workshop Accounts", Err: errors.New("no such file")},
		},
		Entities:  []Entity{{Label: "Workshop Jobs", Description: "Production tracking with stages"}},
		Workflows: []Workflow{{Name: "Production Stages", Stages: []string{"Done"}}},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "JTH Monday.com Data Analysis Report\n"))
	assert.Contains(t, out, "Analyzing: Workshop Jobs\n")
	assert.Contains(t, out, "Total Rows: 1\nTotal Columns: 3\n")
	assert.Contains(t, out, "  - Status\n    Type: text, Non-null: 1/1, Unique: 1\n    Sample values: ['Done']\n")
	assert.Contains(t, out, "First 1 rows preview:")
	assert.Contains(t, out, "Primary Key: Item ID")
	assert.Contains(t, out, "Potential Foreign Keys: ['Item ID']")
	assert.Contains(t, out, "Error analyzing Workshop Accounts: no such file\n")
	assert.Contains(t, out, "SCHEMA RELATIONSHIPS SUMMARY")
	assert.Contains(t, out, "1. Workshop Jobs - Production tracking with stages\n")
	assert.Contains(t, out, "  Production Stages: ['Done']\n")

	assert.Less(t, strings.Index(out, "Workshop Accounts"), strings.Index(out, "SCHEMA RELATIONSHIPS SUMMARY"))
}

// analyzedAs is AnalyzeTable with the display label filled in.
func analyzedAs(t *sheet.Table, label string) SheetReport {
	rep := AnalyzeTable(t, DefaultOptions())
	rep.Label = label
	return rep
}
