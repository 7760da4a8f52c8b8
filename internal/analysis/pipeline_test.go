package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardrails/domain/dataset"
	"guardrails/domain/report"
)

// buildMixedDataset mirrors a CSV upload with a mostly-numeric column
// containing one bad value and a missing cell, plus a token column that
// falls just short of the boolean threshold.
func buildMixedDataset() *dataset.Dataset {
	age := dataset.Column{Name: "age", Values: []dataset.Value{
		dataset.NewNumericValue(25),
		dataset.NewNumericValue(30),
		dataset.NewStringValue("bad"),
		dataset.NewNumericValue(40),
		dataset.NewMissingValue(),
	}}
	flag := dataset.Column{Name: "flag", Values: []dataset.Value{
		dataset.NewStringValue("yes"),
		dataset.NewStringValue("no"),
		dataset.NewStringValue("yes"),
		dataset.NewStringValue("maybe"),
		dataset.NewStringValue("yes"),
	}}
	return dataset.NewDataset([]dataset.Column{age, flag})
}

func TestAnalyze_EndToEnd(t *testing.T) {
	result := Analyze(buildMixedDataset(), nil)

	require.Len(t, result.Profile.Columns, 2)
	ageProfile := result.Profile.Columns[0]
	assert.Equal(t, "age", ageProfile.Name)
	assert.Equal(t, 1, ageProfile.MissingCount)
	assert.InDelta(t, 0.2, ageProfile.MissingPercent, 1e-9)

	// The bad value drags age's numeric ratio to 0.75, under the 0.9
	// threshold, so both columns classify as string with no violations.
	assert.Equal(t, report.TypeString, result.Schema.Inferred["age"])
	assert.Equal(t, report.TypeString, result.Schema.Inferred["flag"])
	assert.Equal(t, 0, result.TotalViolations())

	var missingRec *report.Recommendation
	for i := range result.Recommendations {
		if result.Recommendations[i].Column == "age" && result.Recommendations[i].Issue == report.IssueMissingValues {
			missingRec = &result.Recommendations[i]
		}
	}
	require.NotNil(t, missingRec, "expected a missing_values recommendation for age")
	assert.Equal(t, report.SeverityHigh, missingRec.Severity)

	assert.Nil(t, result.Drift)
	assert.Contains(t, result.Summary, "Rows: 5, Columns: 2.")
}

func TestAnalyze_Idempotent(t *testing.T) {
	ds := buildMixedDataset()
	baseline := buildMixedDataset()

	first := Analyze(ds, baseline)
	second := Analyze(ds, baseline)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	ds := buildMixedDataset()
	before, err := json.Marshal(ds)
	require.NoError(t, err)

	_ = Analyze(ds, nil)

	after, err := json.Marshal(ds)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAnalyze_WithBaselineDrift(t *testing.T) {
	current := dataset.NewDataset([]dataset.Column{
		{Name: "score", Values: []dataset.Value{
			dataset.NewNumericValue(12),
			dataset.NewNumericValue(14),
		}},
	})
	baseline := dataset.NewDataset([]dataset.Column{
		{Name: "score", Values: []dataset.Value{
			dataset.NewNumericValue(10),
			dataset.NewNumericValue(10),
		}},
	})

	result := Analyze(current, baseline)
	require.NotNil(t, result.Drift)
	record, ok := result.Drift.Numeric["score"]
	require.True(t, ok)
	require.NotNil(t, record.MeanDelta)
	assert.InDelta(t, 3.0, *record.MeanDelta, 1e-9)
	assert.Contains(t, result.Summary, "Baseline drift comparison included.")
}

func TestAnalyze_EmptyDataset(t *testing.T) {
	result := Analyze(dataset.NewDataset(nil), nil)
	assert.Equal(t, 0, result.Profile.RowCount)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, "Rows: 0, Columns: 0. Schema violations: 0. Recommendations: 0.", result.Summary)
}
