// Package core provides the business logic for turning Monday.com board
// exports into a SQL seed script.
//
// This package holds all domain logic independent of the CLI. It can be
// used by commands or tests without modification.
//
// # Architecture
//
// Every board goes through the same steps:
//
//   - Loader: [sheet.Load] reads the first worksheet into positional rows.
//   - Classifier: a [RowRule] decides whether a row is skipped, starts a new
//     entity, is a detail of the current entity, or is ignored.
//   - Mapper: board layouts read named fields out of a row and translate
//     Monday.com labels through the vocabulary tables ([JobStatusLabels],
//     [StageStatusLabels], [RoleLabels]).
//   - Emitter: an [Emitter] assigns ids and collects one [Statement] per
//     entity and per relationship, in source row order.
//
// # Board Registry
//
// Boards are registered at init time using [Register]. Each
// [BoardDefinition] carries the export file it reads and the function that
// emits its statements:
//
//	core.Register(BoardDefinition{
//	    Key:    "workshop_jobs",
//	    Label:  "Workshop Jobs",
//	    File:   "boards/2108506393_Workshop Jobs.xlsx",
//	    Order:  40,
//	    Import: importWorkshopJobs,
//	})
//
// # Error Handling
//
// A board that cannot be read or does not have the expected layout is
// replaced by a single comment line in the script and the remaining boards
// are still imported. Unparsable prices become zero.
//
// # Idempotence
//
// Ids are random, so running the import twice produces two full sets of
// rows. Only users are upserted on their email address.
package core
