package boards

import (
	"github.com/JonMunkholm/MondayImport/internal/core"
	"github.com/JonMunkholm/MondayImport/internal/sheet"
)

func init() {
	core.Register(core.BoardDefinition{
		Key:     "workshop_accounts",
		Label:   "Workshop Accounts",
		Section: "Import Workshop Accounts (Suppliers)",
		File:    "boards/2108524720_Workshop accounts.xlsx",
		Order:   orderAccounts,
		Import:  importWorkshopAccounts,

		Description: "Customer/deal information",
		Workflow:    "Sales Pipeline Stages",
	})
}

// accountsLayout is the column layout of the Workshop accounts export.
// Column 3 holds the supplier portal password and is never read.
var accountsLayout = struct {
	Name, Link, Login, CustomerNumber, RepName, RepEmail int
	Columns                                              int
	Rule                                                 core.RowRule
}{
	Name:           0,
	Link:           1,
	Login:          2,
	CustomerNumber: 4,
	RepName:        5,
	RepEmail:       6,
	Columns:        7,
	Rule: core.RowRule{
		Offset:       2,
		EntityColumn: 0,
		HeaderLabels: []string{"Group Title", "Name"},
		DetailColumn: -1,
	},
}

const supplierContactRole = "Sales Representative"

func importWorkshopAccounts(t *sheet.Table, e *core.Emitter) error {
	if err := core.RequireColumns(t, accountsLayout.Columns); err != nil {
		return err
	}

	for _, row := range t.Rows {
		if accountsLayout.Rule.Classify(row, false) != core.RowEntity {
			continue
		}

		org := mapSupplier(row, e)
		e.Emit(org.Statement())

		if contact, ok := mapSupplierContact(row, org, e); ok {
			e.Emit(contact.Statement())
		}
	}
	return nil
}

func mapSupplier(row sheet.Row, e *core.Emitter) core.Organization {
	return core.Organization{
		ID:      e.ID(),
		Name:    core.ToPgText(row.Text(accountsLayout.Name)),
		Type:    core.OrgBusiness,
		Website: core.ToPgText(row.Text(accountsLayout.Link)),
		Metadata: core.OrgMetadata{
			CustomerNumber: optional(row, accountsLayout.CustomerNumber),
			Login:          optional(row, accountsLayout.Login),
		},
	}
}

// mapSupplierContact returns the sales rep of org when both name and email
// are present.
func mapSupplierContact(row sheet.Row, org core.Organization, e *core.Emitter) (core.Contact, bool) {
	name, okName := row.Cell(accountsLayout.RepName)
	email, okEmail := row.Cell(accountsLayout.RepEmail)
	if !okName || !okEmail {
		return core.Contact{}, false
	}

	return core.Contact{
		ID:             e.ID(),
		OrganizationID: org.ID,
		FirstName:      core.ToPgText(name),
		LastName:       "",
		Email:          core.ToPgText(email),
		Role:           supplierContactRole,
	}, true
}

func optional(row sheet.Row, col int) *string {
	v, ok := row.Cell(col)
	if !ok {
		return nil
	}
	return &v
}
