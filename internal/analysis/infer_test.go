package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"guardrails/domain/dataset"
	"guardrails/domain/report"
)

func booleanColumn(name string, values ...bool) dataset.Column {
	col := dataset.Column{Name: name}
	for _, v := range values {
		col.Values = append(col.Values, dataset.NewBooleanValue(v))
	}
	return col
}

func TestInferColumnType_SourceBoolean(t *testing.T) {
	col := booleanColumn("active", true, false, true)
	colType, _ := InferColumnType(&col)
	assert.Equal(t, report.TypeBoolean, colType)
}

func TestInferColumnType_SourceNumeric(t *testing.T) {
	col := numericColumn("age", 25, 30, 40)
	colType, _ := InferColumnType(&col)
	assert.Equal(t, report.TypeNumeric, colType)
}

func TestInferColumnType_NumericWithMissingHoles(t *testing.T) {
	col := withMissing(numericColumn("age", 25, 30), 1)
	colType, _ := InferColumnType(&col)
	assert.Equal(t, report.TypeNumeric, colType)
}

func TestInferColumnType_AllMissing(t *testing.T) {
	// An entirely missing column defaults to string; guardrail-safe
	// behavior pinned deliberately.
	col := withMissing(dataset.Column{Name: "empty"}, 3)
	colType, _ := InferColumnType(&col)
	assert.Equal(t, report.TypeString, colType)
}

func TestInferColumnType_DatetimeRatio(t *testing.T) {
	col := stringColumn("when",
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07", "2024-01-08",
		"2024-01-09", "not a date")

	colType, diag := InferColumnType(&col)
	assert.Equal(t, report.TypeDatetime, colType)
	assert.InDelta(t, 0.9, diag.DatetimeRatio, 1e-9)
}

func TestInferColumnType_NumericRatio(t *testing.T) {
	col := stringColumn("mixed",
		"1", "2", "3", "4", "5", "6", "7", "8", "9", "oops")

	colType, diag := InferColumnType(&col)
	assert.Equal(t, report.TypeNumeric, colType)
	assert.InDelta(t, 0.9, diag.NumericRatio, 1e-9)
}

func TestInferColumnType_BooleanTokenFallthrough(t *testing.T) {
	// boolean_ratio = 0.8 < 0.9, so the column falls through to string
	col := stringColumn("flag", "yes", "no", "yes", "maybe", "yes")

	colType, diag := InferColumnType(&col)
	assert.Equal(t, report.TypeString, colType)
	assert.InDelta(t, 0.8, diag.BooleanRatio, 1e-9)
}

func TestInferColumnType_BooleanTokens(t *testing.T) {
	col := stringColumn("flag", "yes", "no", "YES", "No", "true")

	colType, diag := InferColumnType(&col)
	assert.Equal(t, report.TypeBoolean, colType)
	assert.InDelta(t, 1.0, diag.BooleanRatio, 1e-9)
}

func TestInferColumnType_AlwaysOneOfFourLabels(t *testing.T) {
	valid := map[report.ColumnType]bool{
		report.TypeNumeric:  true,
		report.TypeBoolean:  true,
		report.TypeDatetime: true,
		report.TypeString:   true,
	}

	columns := []dataset.Column{
		numericColumn("n", 1, 2),
		booleanColumn("b", true),
		stringColumn("s", "a", "b"),
		stringColumn("d", "2024-06-01"),
		withMissing(dataset.Column{Name: "m"}, 2),
		{Name: "zero"},
	}
	for i := range columns {
		colType, _ := InferColumnType(&columns[i])
		assert.True(t, valid[colType], "column %s produced label %s", columns[i].Name, colType)
	}
}

func TestInferSchema_KeyedByColumnName(t *testing.T) {
	ds := dataset.NewDataset([]dataset.Column{
		numericColumn("age", 1, 2),
		stringColumn("name", "ada", "lin"),
	})

	inferred := InferSchema(ds)
	assert.Equal(t, report.TypeNumeric, inferred["age"])
	assert.Equal(t, report.TypeString, inferred["name"])
	assert.Len(t, inferred, 2)
}
