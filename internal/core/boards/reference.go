package boards

import "github.com/JonMunkholm/MondayImport/internal/core"

// Exports that are analyzed but not imported.
func init() {
	core.Register(core.BoardDefinition{
		Key:   "workshop_job_updates",
		Label: "Workshop Jobs Updates",
		File:  "updates/2108506393_Workshop Jobs_updates.xlsx",
		Order: orderJobUpdates,

		Description: "Activity logs and comments",
	})
	core.Register(core.BoardDefinition{
		Key:   "pro45_specifications",
		Label: "Pro 4.5 Specifications",
		File:  "assets/144859542_pro-45-kath-web-aug-2025-updated.xlsx",
		Order: orderAssets,

		Description: "Detailed model specs",
	})
}
