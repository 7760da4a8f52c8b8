package analysis

import (
	"guardrails/domain/dataset"
	"guardrails/domain/report"
)

// DetectViolations counts, per column, the non-missing values that fail
// to coerce to the column's inferred type. String columns never violate.
// Pure function of dataset + schema; columns are independent.
func DetectViolations(ds *dataset.Dataset, inferred map[string]report.ColumnType) map[string]report.Violation {
	violations := make(map[string]report.Violation, len(ds.Columns))
	for i := range ds.Columns {
		col := &ds.Columns[i]
		colType, ok := inferred[col.Name]
		if !ok {
			colType = report.TypeString
		}
		violations[col.Name] = countViolations(col, colType)
	}
	return violations
}

func countViolations(col *dataset.Column, colType report.ColumnType) report.Violation {
	invalid := 0
	if colType != report.TypeString {
		for _, v := range col.Values {
			if v.IsMissing {
				continue
			}
			if !coerces(v, colType) {
				invalid++
			}
		}
	}

	denom := len(col.Values)
	if denom < 1 {
		denom = 1
	}
	return report.Violation{
		InvalidCount:   invalid,
		InvalidPercent: float64(invalid) / float64(denom),
	}
}

// coerces reports whether a single value passes the parse rule for the
// given type
func coerces(v dataset.Value, colType report.ColumnType) bool {
	switch colType {
	case report.TypeNumeric:
		if v.IsNumeric() {
			return true
		}
		_, ok := dataset.ParseNumeric(v.String())
		return ok
	case report.TypeDatetime:
		if v.IsTimestamp() {
			return true
		}
		_, ok := dataset.ParseTimestamp(v.String())
		return ok
	case report.TypeBoolean:
		if v.IsBoolean() {
			return true
		}
		return dataset.IsBooleanToken(v.String())
	}
	return true
}
