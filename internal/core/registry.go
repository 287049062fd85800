package core

import (
	"fmt"
	"sort"
	"sync"

	"github.com/JonMunkholm/MondayImport/internal/sheet"
)

// ImportFunc emits the statements for one loaded board.
type ImportFunc func(t *sheet.Table, e *Emitter) error

// StaticFunc emits statements that do not come from an export file.
type StaticFunc func(e *Emitter)

// BoardDefinition contains everything needed to analyze or import a board.
type BoardDefinition struct {
	Key     string // Unique identifier: "workshop_jobs"
	Label   string // Display name: "Workshop Jobs"
	Section string // Script section comment: "Import Workshop Jobs"
	// File is the export path relative to the export directory. Empty for
	// static boards.
	File  string
	Order int // Import and report order, ascending

	// Description is shown in the analysis summary.
	Description string
	// Workflow names the stages held in the board's Status column, e.g.
	// "Production Stages". Empty when the status is not a workflow.
	Workflow string

	// Import is nil for boards that are only analyzed.
	Import ImportFunc
	// Static emits statements without reading a file.
	Static StaticFunc
}

// Importable reports whether the board contributes to the seed script.
func (b BoardDefinition) Importable() bool {
	return b.Import != nil || b.Static != nil
}

// Analyzable reports whether the board has an export file to analyze.
func (b BoardDefinition) Analyzable() bool {
	return b.File != ""
}

var (
	registry   = make(map[string]BoardDefinition)
	registryMu sync.RWMutex
)

// Register adds a board definition to the registry.
// Panics if a board with the same key is already registered.
func Register(def BoardDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Key]; exists {
		panic(fmt.Sprintf("board already registered: %s", def.Key))
	}
	if def.Section == "" {
		def.Section = "Import " + def.Label
	}

	registry[def.Key] = def
}

// Get returns a board definition by key.
// Returns false if not found.
func Get(key string) (BoardDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// All returns all registered board definitions sorted by Order, then Key.
func All() []BoardDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]BoardDefinition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].Key < result[j].Key
	})

	return result
}

// Importable returns the boards that contribute to the seed script, in order.
func Importable() []BoardDefinition {
	var result []BoardDefinition
	for _, def := range All() {
		if def.Importable() {
			result = append(result, def)
		}
	}
	return result
}

// Analyzable returns the boards that have an export file, in order.
func Analyzable() []BoardDefinition {
	var result []BoardDefinition
	for _, def := range All() {
		if def.Analyzable() {
			result = append(result, def)
		}
	}
	return result
}

// BoardCount returns the number of registered boards.
func BoardCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered boards.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]BoardDefinition)
}
