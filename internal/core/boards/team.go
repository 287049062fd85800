package boards

import (
	"github.com/JonMunkholm/MondayImport/internal/core"
	"github.com/JonMunkholm/MondayImport/internal/sheet"
)

func init() {
	core.Register(core.BoardDefinition{
		Key:     "team_members",
		Label:   "Team Members",
		Section: "Import Additional Team Members",
		File:    "team/Jthltd_team_members.xlsx",
		Order:   orderTeam,
		Import:  importTeamMembers,

		Description: "User management",
	})
}

var teamLayout = struct {
	Name, Email, UserType int
	Columns               int
	Rule                  core.RowRule
}{
	Name:     0,
	Email:    1,
	UserType: 11,
	Columns:  12,
	Rule: core.RowRule{
		Offset:          1,
		EntityColumn:    0,
		RequiredColumns: []int{1},
		DetailColumn:    -1,
	},
}

const teamDepartment = "Operations"

func importTeamMembers(t *sheet.Table, e *core.Emitter) error {
	if err := core.RequireColumns(t, teamLayout.Columns); err != nil {
		return err
	}

	for _, row := range t.Rows {
		if teamLayout.Rule.Classify(row, false) != core.RowEntity {
			continue
		}
		e.Emit(mapUser(row).Statement())
	}
	return nil
}

func mapUser(row sheet.Row) core.User {
	return core.User{
		Email:      core.ToPgText(row.Text(teamLayout.Email)),
		FullName:   core.ToPgText(row.Text(teamLayout.Name)),
		Role:       core.MapRole(row.Text(teamLayout.UserType)),
		Department: teamDepartment,
		IsActive:   true,
	}
}
