// Package boards registers all Monday.com board definitions with the core
// registry. Import this package to ensure all boards are registered.
//
// Each board file declares a layout: the named columns of that export and
// the RowRule that classifies its rows. Column positions live only in the
// layout, so a change to an export's column order is a one-line edit.
package boards

// Import and report order.
const (
	orderTeam = (iota + 1) * 10
	orderAccounts
	orderProducts
	orderJobs
	orderJobUpdates
	orderAssets
	orderSamplePipeline
)
