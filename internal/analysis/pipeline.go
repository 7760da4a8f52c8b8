// Package analysis implements the data-quality analysis core: column
// profiling, coercion-ratio type inference, schema-violation detection,
// baseline drift comparison, and decision-table recommendations,
// composed by a fixed sequential pipeline.
package analysis

import (
	"guardrails/domain/dataset"
	"guardrails/domain/report"
)

// pipelineState threads the immutable inputs and the accumulating
// report through the stages
type pipelineState struct {
	Dataset  *dataset.Dataset
	Baseline *dataset.Dataset
	Report   report.Report
}

// stage is a pure transformation over the pipeline state. Each stage
// reads only the original datasets plus report sections already filled
// in, and writes its own section exactly once.
type stage struct {
	name string
	run  func(pipelineState) pipelineState
}

// stages execute strictly in order. No branching, no retries, no
// conditional routing.
var stages = []stage{
	{name: "profile", run: profileStage},
	{name: "schema", run: schemaStage},
	{name: "drift", run: driftStage},
	{name: "recommend", run: recommendStage},
}

// Analyze runs the full pipeline over a dataset and an optional
// baseline, producing the composed report. It is a pure function:
// calling it twice on the same inputs yields identical reports.
func Analyze(ds *dataset.Dataset, baseline *dataset.Dataset) report.Report {
	state := pipelineState{Dataset: ds, Baseline: baseline}
	for _, s := range stages {
		state = s.run(state)
	}
	return state.Report
}

func profileStage(state pipelineState) pipelineState {
	state.Report.Profile = ProfileDataset(state.Dataset)
	return state
}

func schemaStage(state pipelineState) pipelineState {
	inferred := InferSchema(state.Dataset)
	state.Report.Schema = report.SchemaReport{
		Inferred:   inferred,
		Violations: DetectViolations(state.Dataset, inferred),
	}
	return state
}

func driftStage(state pipelineState) pipelineState {
	if state.Baseline != nil {
		state.Report.Drift = DetectDrift(state.Dataset, state.Baseline)
	}
	return state
}

func recommendStage(state pipelineState) pipelineState {
	state.Report.Recommendations = RecommendFixes(state.Report.Profile, state.Report.Schema)
	state.Report.Summary = SummarizeReport(&state.Report)
	return state
}
