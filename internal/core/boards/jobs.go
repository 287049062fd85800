package boards

import (
	"fmt"

	"github.com/JonMunkholm/MondayImport/internal/core"
	"github.com/JonMunkholm/MondayImport/internal/sheet"
	"github.com/google/uuid"
)

func init() {
	core.Register(core.BoardDefinition{
		Key:    "workshop_jobs",
		Label:  "Workshop Jobs",
		File:   "boards/2108506393_Workshop Jobs.xlsx",
		Order:  orderJobs,
		Import: importWorkshopJobs,

		Description: "Production tracking with stages",
		Workflow:    "Production Stages",
	})
}

// jobsLayout is the column layout of the Workshop Jobs export. Main rows
// carry the Item ID in the last column; subitem rows leave it blank and put
// the stage name in the second column.
var jobsLayout = struct {
	Name, Subitem, Assignee, Status, PaintDate, CompletionDate, ItemID int
	Columns                                                            int
	Rule                                                               core.RowRule
}{
	Name:           0,
	Subitem:        1,
	Assignee:       2,
	Status:         3,
	PaintDate:      4,
	CompletionDate: 5,
	ItemID:         8,
	Columns:        9,
	Rule: core.RowRule{
		Offset:       3,
		EntityColumn: 8,
		DetailColumn: 1,
	},
}

// jobCursor is the job that subsequent stage rows attach to.
type jobCursor struct {
	id  uuid.UUID
	set bool
}

func importWorkshopJobs(t *sheet.Table, e *core.Emitter) error {
	if err := core.RequireColumns(t, jobsLayout.Columns); err != nil {
		return err
	}

	var cur jobCursor
	for _, row := range t.Rows {
		cur = emitJobRow(row, cur, e)
	}
	return nil
}

// emitJobRow classifies row, emits what it produces and returns the
// updated cursor.
func emitJobRow(row sheet.Row, cur jobCursor, e *core.Emitter) jobCursor {
	switch jobsLayout.Rule.Classify(row, cur.set) {
	case core.RowEntity:
		job := mapJob(row, e.ID())
		e.Emit(job.Statement())
		return jobCursor{id: job.ID, set: true}
	case core.RowDetail:
		stage := mapStage(row, cur.id, e.ID())
		e.Emit(stage.Statement())
	}
	return cur
}

func mapJob(row sheet.Row, id uuid.UUID) core.ProductionJob {
	name := row.Text(jobsLayout.Name)
	if name == "" {
		name = fmt.Sprintf("Job %d", row.Index)
	}

	return core.ProductionJob{
		ID:         id,
		JobNumber:  fmt.Sprintf("JOB-%04d", row.Index),
		Status:     core.MapJobStatus(row.Text(jobsLayout.Status)),
		Notes:      core.ToPgText(name),
		TargetDate: core.ToPgDate(row.Text(jobsLayout.PaintDate)),
	}
}

func mapStage(row sheet.Row, jobID, id uuid.UUID) core.ProductionStage {
	return core.ProductionStage{
		ID:         id,
		JobID:      jobID,
		StageName:  core.ToPgText(row.Text(jobsLayout.Subitem)),
		StageOrder: row.Index,
		Status:     core.MapStageStatus(row.Text(jobsLayout.Status)),
		Notes:      core.ToPgText(row.Text(jobsLayout.Assignee)),
	}
}
