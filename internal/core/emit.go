package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Unit is one piece of the generated script.
type Unit interface {
	SQL() string
}

// Statement is a single INSERT.
type Statement struct {
	Table   string
	Columns []string
	Values  []any
	// OnConflict is appended verbatim after the VALUES list.
	OnConflict string
}

// SQL renders the statement, terminated by a semicolon.
func (s Statement) SQL() string {
	vals := make([]string, len(s.Values))
	for i, v := range s.Values {
		vals[i] = Literal(v)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s)\nVALUES (%s)",
		s.Table, strings.Join(s.Columns, ", "), strings.Join(vals, ", "))
	if s.OnConflict != "" {
		b.WriteString("\n")
		b.WriteString(s.OnConflict)
	}
	b.WriteString(";")
	return b.String()
}

// Comment is a "--" line. Embedded newlines are flattened so the comment
// cannot swallow the following statement.
type Comment string

// SQL renders the comment.
func (c Comment) SQL() string {
	text := strings.Join(strings.Fields(string(c)), " ")
	return "-- " + text
}

// Raw is SQL emitted verbatim.
type Raw string

// SQL returns r unchanged.
func (r Raw) SQL() string {
	return strings.TrimSpace(string(r))
}

// Literal renders v as a SQL literal.
//
// Text is single-quoted with embedded quotes doubled; numbers and booleans
// are unquoted; invalid pgtype values and nil render as NULL. Types the
// emitter does not know also render as NULL.
func Literal(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return QuoteString(x)
	case pgtype.Text:
		if !x.Valid {
			return "NULL"
		}
		return QuoteString(x.String)
	case pgtype.Date:
		if !x.Valid {
			return "NULL"
		}
		return QuoteString(x.Time.Format("2006-01-02"))
	case pgtype.Bool:
		if !x.Valid {
			return "NULL"
		}
		return strconv.FormatBool(x.Bool)
	case pgtype.UUID:
		if !x.Valid {
			return "NULL"
		}
		return QuoteString(uuid.UUID(x.Bytes).String())
	case uuid.UUID:
		return QuoteString(x.String())
	case decimal.Decimal:
		return x.String()
	case JSONB:
		if x == nil {
			return "NULL"
		}
		return QuoteString(string(x)) + "::jsonb"
	case Raw:
		return string(x)
	case time.Time:
		return QuoteString(x.Format(time.RFC3339))
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return "NULL"
	}
}

// QuoteString single-quotes s, doubling embedded single quotes.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Emitter collects the units of one board in emission order.
type Emitter struct {
	// NewID generates entity ids. Defaults to uuid.New.
	NewID func() uuid.UUID

	units      []Unit
	statements int
}

// NewEmitter returns an Emitter that generates random v4 ids.
func NewEmitter() *Emitter {
	return &Emitter{NewID: uuid.New}
}

// ID returns a fresh entity id.
func (e *Emitter) ID() uuid.UUID {
	if e.NewID == nil {
		return uuid.New()
	}
	return e.NewID()
}

// Emit appends a statement.
func (e *Emitter) Emit(s Statement) {
	e.units = append(e.units, s)
	e.statements++
}

// Comment appends a comment line.
func (e *Emitter) Comment(text string) {
	e.units = append(e.units, Comment(text))
}

// Raw appends verbatim SQL. Every line ending in a semicolon counts as a
// statement.
func (e *Emitter) Raw(sql string) {
	e.units = append(e.units, Raw(sql))
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasSuffix(strings.TrimSpace(line), ";") {
			e.statements++
		}
	}
}

// Units returns the collected units.
func (e *Emitter) Units() []Unit {
	return e.units
}

// Statements returns the number of statements emitted.
func (e *Emitter) Statements() int {
	return e.statements
}
