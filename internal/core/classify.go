package core

import (
	"slices"

	"github.com/JonMunkholm/MondayImport/internal/sheet"
)

// RowKind is the outcome of classifying one data row.
type RowKind int

const (
	RowSkip   RowKind = iota // before the board's header offset
	RowEntity                // starts a new top-level entity
	RowDetail                // belongs to the current entity
	RowIgnore                // nothing to emit
)

func (k RowKind) String() string {
	switch k {
	case RowSkip:
		return "skip"
	case RowEntity:
		return "entity"
	case RowDetail:
		return "detail"
	case RowIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}

// RowRule describes how rows of one board kind are classified.
type RowRule struct {
	// Offset is the number of leading data rows that are always skipped.
	Offset int

	// EntityColumn must hold a value for a row to start an entity.
	EntityColumn int

	// HeaderLabels are values of EntityColumn that mark a repeated header
	// row rather than an entity.
	HeaderLabels []string

	// RequiredColumns must also hold values for a row to start an entity.
	RequiredColumns []int

	// DetailColumn, when >= 0, marks a detail row if it holds a value and a
	// parent entity exists. Use -1 for boards without detail rows.
	DetailColumn int
}

// Classify decides what row is. haveParent reports whether an entity has
// already been started in this pass.
func (r RowRule) Classify(row sheet.Row, haveParent bool) RowKind {
	if row.Index < r.Offset {
		return RowSkip
	}

	if r.isEntity(row) {
		return RowEntity
	}

	if r.DetailColumn >= 0 && row.Has(r.DetailColumn) && haveParent {
		return RowDetail
	}

	return RowIgnore
}

func (r RowRule) isEntity(row sheet.Row) bool {
	v, ok := row.Cell(r.EntityColumn)
	if !ok || slices.Contains(r.HeaderLabels, v) {
		return false
	}
	for _, c := range r.RequiredColumns {
		if !row.Has(c) {
			return false
		}
	}
	return true
}
