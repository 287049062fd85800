package core

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// OrgType is the organizations.type enum.
type OrgType string

const (
	OrgBusiness   OrgType = "business"
	OrgIndividual OrgType = "individual"
)

// OrgMetadata is stored in organizations.metadata.
type OrgMetadata struct {
	CustomerNumber *string `json:"customer_number"`
	Login          *string `json:"login"`
}

// Organization is a supplier or customer account.
type Organization struct {
	ID       uuid.UUID
	Name     pgtype.Text
	Type     OrgType
	Website  pgtype.Text
	Metadata OrgMetadata
}

// Contact is a person attached to an Organization.
type Contact struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	FirstName      pgtype.Text
	LastName       string
	Email          pgtype.Text
	Role           string
}

// ProductOption is an orderable part or accessory.
type ProductOption struct {
	ID              uuid.UUID
	Code            string
	Name            pgtype.Text
	Category        string
	UnitPrice       decimal.Decimal
	SupplierLink    pgtype.Text
	QuantityPerUnit decimal.Decimal
}

// ProductionJob is a build tracked on the workshop board.
type ProductionJob struct {
	ID         uuid.UUID
	JobNumber  string
	Status     JobStatus
	Notes      pgtype.Text
	TargetDate pgtype.Date
}

// ProductionStage is one step of a ProductionJob.
type ProductionStage struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	StageName pgtype.Text
	// StageOrder is the data row index of the stage row, not a 1..N
	// sequence within the job.
	StageOrder int
	Status     StageStatus
	Notes      pgtype.Text
}

// User is a team member. Email is the natural key.
type User struct {
	Email      pgtype.Text
	FullName   pgtype.Text
	Role       Role
	Department string
	IsActive   bool
}

// Statement returns the insert for o.
func (o Organization) Statement() Statement {
	return Statement{
		Table:   "organizations",
		Columns: []string{"id", "name", "type", "website", "metadata"},
		Values:  []any{o.ID, o.Name, string(o.Type), o.Website, NewJSONB(o.Metadata)},
	}
}

// Statement returns the insert for c.
func (c Contact) Statement() Statement {
	return Statement{
		Table:   "contacts",
		Columns: []string{"id", "organization_id", "first_name", "last_name", "email", "role"},
		Values:  []any{c.ID, c.OrganizationID, c.FirstName, c.LastName, c.Email, c.Role},
	}
}

// Statement returns the insert for p.
func (p ProductOption) Statement() Statement {
	return Statement{
		Table:   "product_options",
		Columns: []string{"id", "code", "name", "category", "unit_price", "supplier_link", "quantity_per_unit"},
		Values:  []any{p.ID, p.Code, p.Name, p.Category, p.UnitPrice, p.SupplierLink, p.QuantityPerUnit},
	}
}

// Statement returns the insert for j.
func (j ProductionJob) Statement() Statement {
	return Statement{
		Table:   "production_jobs",
		Columns: []string{"id", "job_number", "status", "notes", "target_date"},
		Values:  []any{j.ID, j.JobNumber, string(j.Status), j.Notes, j.TargetDate},
	}
}

// Statement returns the insert for s.
func (s ProductionStage) Statement() Statement {
	return Statement{
		Table:   "production_stages",
		Columns: []string{"id", "job_id", "stage_name", "stage_order", "status", "notes"},
		Values:  []any{s.ID, s.JobID, s.StageName, s.StageOrder, string(s.Status), s.Notes},
	}
}

// Statement returns the upsert for u.
func (u User) Statement() Statement {
	return Statement{
		Table:      "users",
		Columns:    []string{"email", "full_name", "role", "department", "is_active"},
		Values:     []any{u.Email, u.FullName, string(u.Role), u.Department, u.IsActive},
		OnConflict: "ON CONFLICT (email) DO UPDATE\nSET full_name = EXCLUDED.full_name, role = EXCLUDED.role",
	}
}

// JSONB is a JSON document rendered as a jsonb literal. A nil JSONB renders
// as NULL.
type JSONB []byte

// NewJSONB marshals v. Values that cannot be marshalled yield a nil JSONB.
func NewJSONB(v any) JSONB {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return JSONB(b)
}
