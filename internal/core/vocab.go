package core

// Monday.com status and role labels are free text on the board. The tables
// below are the only labels the importer understands; anything else falls
// back to the kind's default.

// JobStatus is the production_jobs.status enum.
type JobStatus string

const (
	JobScheduled  JobStatus = "scheduled"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobBlocked    JobStatus = "blocked"
)

// StageStatus is the production_stages.status enum.
type StageStatus string

const (
	StagePending    StageStatus = "pending"
	StageInProgress StageStatus = "in_progress"
	StageCompleted  StageStatus = "completed"
)

// Role is the users.role enum.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleWorkshop Role = "workshop"
)

// Defaults used when a label is missing or unknown.
const (
	DefaultJobStatus   = JobScheduled
	DefaultStageStatus = StagePending
	DefaultRole        = RoleWorkshop
)

// JobStatusLabels maps main-row status labels to job statuses.
var JobStatusLabels = map[string]JobStatus{
	"Working on it": JobInProgress,
	"Done":          JobCompleted,
	"Stuck":         JobBlocked,
}

// StageStatusLabels maps subitem status labels to stage statuses.
// "v" is the tick some boards use for a finished subitem.
var StageStatusLabels = map[string]StageStatus{
	"Working on it": StageInProgress,
	"Done":          StageCompleted,
	"v":             StageCompleted,
}

// RoleLabels maps team member user types to roles.
var RoleLabels = map[string]Role{
	"Admin":   RoleAdmin,
	"Manager": RoleManager,
}

// MapJobStatus returns the job status for label.
func MapJobStatus(label string) JobStatus {
	if s, ok := JobStatusLabels[label]; ok {
		return s
	}
	return DefaultJobStatus
}

// MapStageStatus returns the stage status for label.
func MapStageStatus(label string) StageStatus {
	if s, ok := StageStatusLabels[label]; ok {
		return s
	}
	return DefaultStageStatus
}

// MapRole returns the role for a user type label.
func MapRole(label string) Role {
	if r, ok := RoleLabels[label]; ok {
		return r
	}
	return DefaultRole
}
