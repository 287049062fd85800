package core

// convert.go provides conversions from spreadsheet cells to typed values.
//
// These functions handle the messy reality of board exports:
//   - Multiple date formats (UK, US, ISO, etc.)
//   - Currency symbols, thousand separators and "ex"/"incl" qualifiers in prices
//   - Various boolean representations (yes/no, true/false, 1/0)
//
// The ToPg* functions return pgtype values with Valid=false for empty or
// invalid input, which the emitter renders as NULL.

import (
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// numericRegex validates that a string is a valid numeric format after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// priceQualifierRegex matches the words that annotate prices on the products
// board ("£25 ex", "£30 incl VAT", "£25 excl VAT"). A qualifier may follow
// the number directly ("£12ex") but never matches inside a longer word.
var priceQualifierRegex = regexp.MustCompile(`(?i)(\d|\b)(excl|incl|ex|vat)\b\.?`)

// TwoDigitYearPivot defines how 2-digit years are interpreted.
// Years that would result in dates more than this many years in the future
// are assumed to be in the previous century.
var TwoDigitYearPivot = 20

// Date layouts split by year format for proper 2-digit year handling.
// Slash and dot dates are day-first (the boards are UK). Dash dates with a
// 2-digit year are month-first, which is how excelize renders the default
// date number format.
var (
	twoDigitYearLayouts = []string{
		"02/01/06", "2/1/06", "01-02-06", "1-2-06", "02.01.06",
	}
	fourDigitYearLayouts = []string{
		"2006-01-02", "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006/01/02",
		"02/01/2006", "2/1/2006", "02.01.2006",
		"Jan 2, 2006", "2 Jan 2006", "2 January 2006",
		"20060102",
	}
)

// ToPgText converts a string to pgtype.Text.
// Returns invalid if the string is empty or only whitespace.
func ToPgText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ToPgDate converts a string to pgtype.Date.
// Supports multiple date formats and handles 2-digit years with pivot.
func ToPgDate(s string) pgtype.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Date{Valid: false}
	}

	// Try 4-digit year layouts first (unambiguous)
	for _, layout := range fourDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return pgtype.Date{Time: t, Valid: true}
		}
	}

	// Try 2-digit year layouts with pivot year adjustment
	pivotYear := time.Now().Year() + TwoDigitYearPivot

	for _, layout := range twoDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return pgtype.Date{Time: t, Valid: true}
		}
	}

	return pgtype.Date{Valid: false}
}

// ToPgBool converts a string to pgtype.Bool.
// Accepts various representations: true/false, yes/no, t/f, y/n, 1/0.
func ToPgBool(s string) pgtype.Bool {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return pgtype.Bool{Valid: false}
	}

	switch s {
	case "true", "t", "yes", "y", "1":
		return pgtype.Bool{Bool: true, Valid: true}
	case "false", "f", "no", "n", "0":
		return pgtype.Bool{Bool: false, Valid: true}
	default:
		return pgtype.Bool{Valid: false}
	}
}

// ParseDecimal converts a string to a decimal.
// Handles currency symbols, thousands separators, and accounting format
// (parentheses for negative). ok is false for empty or invalid input.
func ParseDecimal(s string) (d decimal.Decimal, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	// Detect negative accounting format "(123.45)"
	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	// Remove common currency symbols and thousands separators
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "\u20ac", "") // Euro
	s = strings.ReplaceAll(s, "\u00a3", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParsePrice normalizes a price cell such as "£25 ex" or "£1,200 incl VAT".
// Anything that does not parse after stripping yields zero.
func ParsePrice(s string) decimal.Decimal {
	s = priceQualifierRegex.ReplaceAllString(s, "${1}")
	d, ok := ParseDecimal(s)
	if !ok {
		return decimal.Zero
	}
	return d
}

// ParseQuantity parses a quantity cell, returning 1 for empty or
// unparsable input.
func ParseQuantity(s string) decimal.Decimal {
	d, ok := ParseDecimal(s)
	if !ok {
		return decimal.NewFromInt(1)
	}
	return d
}
