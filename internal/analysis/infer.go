package analysis

import (
	"guardrails/domain/dataset"
	"guardrails/domain/report"
)

// Ratio thresholds for coercion-based type inference. Fixed heuristics,
// not tunable at runtime.
const (
	datetimeRatioThreshold = 0.9
	numericRatioThreshold  = 0.9
	booleanRatioThreshold  = 0.9
)

// TypeDiagnostics carries the coercion ratios behind an inference
// decision, for observability
type TypeDiagnostics struct {
	NumericRatio  float64 `json:"numeric_ratio"`
	DatetimeRatio float64 `json:"datetime_ratio"`
	BooleanRatio  float64 `json:"boolean_ratio"`
}

// InferColumnType classifies a column into a coarse semantic type.
// Decision order: source-level boolean, source-level numeric, empty
// column, then coercion ratios against the fixed thresholds. A column
// with no non-missing values defaults to string as the guardrail-safe
// label.
func InferColumnType(col *dataset.Column) (report.ColumnType, TypeDiagnostics) {
	diag := TypeDiagnostics{}

	if col.AllBoolean() {
		return report.TypeBoolean, diag
	}
	if col.NumericTyped() {
		return report.TypeNumeric, diag
	}

	nonMissing := col.NonMissing()
	if len(nonMissing) == 0 {
		return report.TypeString, diag
	}

	numericHits, datetimeHits, booleanHits := 0, 0, 0
	for _, v := range nonMissing {
		s := v.String()
		if v.IsNumeric() {
			numericHits++
		} else if _, ok := dataset.ParseNumeric(s); ok {
			numericHits++
		}
		if v.IsTimestamp() {
			datetimeHits++
		} else if _, ok := dataset.ParseTimestamp(s); ok {
			datetimeHits++
		}
		if dataset.IsBooleanToken(s) {
			booleanHits++
		}
	}

	total := float64(len(nonMissing))
	diag.NumericRatio = float64(numericHits) / total
	diag.DatetimeRatio = float64(datetimeHits) / total
	diag.BooleanRatio = float64(booleanHits) / total

	switch {
	case diag.DatetimeRatio >= datetimeRatioThreshold:
		return report.TypeDatetime, diag
	case diag.NumericRatio >= numericRatioThreshold:
		return report.TypeNumeric, diag
	case diag.BooleanRatio >= booleanRatioThreshold:
		return report.TypeBoolean, diag
	}
	return report.TypeString, diag
}

// InferSchema infers a type for every column, keyed by column name
func InferSchema(ds *dataset.Dataset) map[string]report.ColumnType {
	inferred := make(map[string]report.ColumnType, len(ds.Columns))
	for i := range ds.Columns {
		col := &ds.Columns[i]
		colType, _ := InferColumnType(col)
		inferred[col.Name] = colType
	}
	return inferred
}
