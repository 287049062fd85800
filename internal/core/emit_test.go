package core

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLiteral(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "nil", input: nil, want: "NULL"},
		{name: "string", input: "business", want: "'business'"},
		{name: "string with quote", input: "O'Brien", want: "'O''Brien'"},
		{name: "string with two quotes", input: "it's Sam's", want: "'it''s Sam''s'"},
		{name: "empty string stays empty", input: "", want: "''"},
		{name: "valid text", input: pgtype.Text{String: "Rope's end", Valid: true}, want: "'Rope''s end'"},
		{name: "absent text", input: pgtype.Text{}, want: "NULL"},
		{name: "valid date", input: pgtype.Date{Time: time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC), Valid: true}, want: "'2025-08-21'"},
		{name: "absent date", input: pgtype.Date{}, want: "NULL"},
		{name: "valid bool", input: pgtype.Bool{Bool: true, Valid: true}, want: "true"},
		{name: "absent bool", input: pgtype.Bool{}, want: "NULL"},
		{name: "pg uuid", input: pgtype.UUID{Bytes: id, Valid: true}, want: "'11111111-2222-3333-4444-555555555555'"},
		{name: "absent pg uuid", input: pgtype.UUID{}, want: "NULL"},
		{name: "uuid", input: id, want: "'11111111-2222-3333-4444-555555555555'"},
		{name: "decimal", input: decimal.RequireFromString("25.50"), want: "25.5"},
		{name: "zero decimal", input: decimal.Zero, want: "0"},
		{name: "jsonb", input: JSONB(`{"login":"o'neil"}`), want: `'{"login":"o''neil"}'::jsonb`},
		{name: "nil jsonb", input: JSONB(nil), want: "NULL"},
		{name: "raw", input: Raw("now()"), want: "now()"},
		{name: "bool", input: true, want: "true"},
		{name: "int", input: 42, want: "42"},
		{name: "int64", input: int64(-7), want: "-7"},
		{name: "float", input: 2.5, want: "2.5"},
		{name: "unknown type", input: struct{}{}, want: "NULL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Literal(tt.input))
		})
	}
}

func TestStatement_SQL(t *testing.T) {
	s := Statement{
		Table:   "production_stages",
		Columns: []string{"stage_name", "stage_order", "notes"},
		Values:  []any{ToPgText("Paint"), 7, ToPgText("")},
	}
	assert.Equal(t,
		"INSERT INTO production_stages (stage_name, stage_order, notes)\nVALUES ('Paint', 7, NULL);",
		s.SQL())
}

func TestStatement_SQLWithConflictClause(t *testing.T) {
	s := User{
		Email:      ToPgText("sam@example.com"),
		FullName:   ToPgText("Sam"),
		Role:       RoleAdmin,
		Department: "Operations",
		IsActive:   true,
	}.Statement()

	assert.Equal(t,
		"INSERT INTO users (email, full_name, role, department, is_active)\n"+
			"VALUES ('sam@example.com', 'Sam', 'admin', 'Operations', true)\n"+
			"ON CONFLICT (email) DO UPDATE\n"+
			"SET full_name = EXCLUDED.full_name, role = EXCLUDED.role;",
		s.SQL())
}

func TestOrganization_MetadataJSON(t *testing.T) {
	login := "jth"
	org := Organization{
		ID:       uuid.Nil,
		Name:     ToPgText("Acme"),
		Type:     OrgBusiness,
		Metadata: OrgMetadata{Login: &login},
	}
	sql := org.Statement().SQL()
	assert.Contains(t, sql, `'{"customer_number":null,"login":"jth"}'::jsonb`)
	assert.Contains(t, sql, "'Acme', 'business', NULL,")
}

func TestComment_FlattensNewlines(t *testing.T) {
	c := Comment("Error importing jobs: line one\nline two")
	assert.Equal(t, "-- Error importing jobs: line one line two", c.SQL())
}

func TestEmitter(t *testing.T) {
	n := 0
	e := &Emitter{NewID: func() uuid.UUID {
		n++
		return uuid.UUID{byte(n)}
	}}

	assert.Equal(t, uuid.UUID{1}, e.ID())
	assert.Equal(t, uuid.UUID{2}, e.ID())

	e.Emit(Statement{Table: "t", Columns: []string{"a"}, Values: []any{1}})
	e.Comment("note")
	e.Raw("INSERT INTO a VALUES (1);\n-- c\nINSERT INTO b\nSELECT 1;")

	assert.Len(t, e.Units(), 3)
	assert.Equal(t, 3, e.Statements())
}

func TestNewEmitter_RandomIDs(t *testing.T) {
	e := NewEmitter()
	a, b := e.ID(), e.ID()
	assert.NotEqual(t, a, b)
	assert.Equal(t, uuid.Version(4), a.Version())
}
