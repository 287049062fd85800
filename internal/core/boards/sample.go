package boards

import (
	_ "embed"

	"github.com/JonMunkholm/MondayImport/internal/core"
)

// samplePipelineSQL seeds one customer through lead, quote and order so
// the sales screens have data. Ids are fixed, so these rows conflict on a
// second run.
//
//go:embed sample_pipeline.sql
var samplePipelineSQL string

func init() {
	core.Register(core.BoardDefinition{
		Key:     "sample_pipeline",
		Label:   "Sample Pipeline",
		Section: "Create sample sales pipeline data",
		Order:   orderSamplePipeline,
		Static:  emitSamplePipeline,
	})
}

func emitSamplePipeline(e *core.Emitter) {
	e.Raw(samplePipelineSQL)
}
