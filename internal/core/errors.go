package core

import (
	"errors"
	"fmt"

	"github.com/JonMunkholm/MondayImport/internal/sheet"
)

// ErrUnexpectedLayout is returned when a board export does not have the
// columns its layout reads.
var ErrUnexpectedLayout = errors.New("unexpected board layout")

// RequireColumns returns ErrUnexpectedLayout when t has fewer than n columns.
// An empty sheet has no layout to check and passes.
func RequireColumns(t *sheet.Table, n int) error {
	if len(t.Rows) == 0 {
		return nil
	}
	if w := t.Width(); w < n {
		return fmt.Errorf("%w: %s has %d columns, need %d", ErrUnexpectedLayout, t.Sheet, w, n)
	}
	return nil
}
