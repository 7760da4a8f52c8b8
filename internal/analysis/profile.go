package analysis

import (
	"github.com/montanaflynn/stats"

	"guardrails/domain/dataset"
	"guardrails/domain/report"
)

// maxSampleValues caps the distinct sample values kept per column
const maxSampleValues = 5

// iqrMultiplier is the fixed IQR fence multiplier for outlier detection
const iqrMultiplier = 1.5

// ProfileDataset computes per-column descriptive statistics for the
// dataset. Every ratio degrades to zero on empty input rather than
// dividing by zero.
func ProfileDataset(ds *dataset.Dataset) report.ProfileReport {
	profile := report.ProfileReport{
		RowCount:    ds.RowCount(),
		ColumnCount: ds.ColumnCount(),
		Columns:     make([]report.ColumnProfile, 0, ds.ColumnCount()),
	}

	for i := range ds.Columns {
		profile.Columns = append(profile.Columns, profileColumn(&ds.Columns[i]))
	}
	return profile
}

func profileColumn(col *dataset.Column) report.ColumnProfile {
	rowCount := len(col.Values)
	missing := 0
	seen := make(map[string]bool)
	samples := make([]interface{}, 0, maxSampleValues)

	for _, v := range col.Values {
		if v.IsMissing {
			missing++
			continue
		}
		key := v.String()
		if !seen[key] {
			seen[key] = true
			if len(samples) < maxSampleValues {
				samples = append(samples, v.Native())
			}
		}
	}

	denom := rowCount
	if denom < 1 {
		denom = 1
	}

	cp := report.ColumnProfile{
		Name:           col.Name,
		DType:          col.DTypeLabel(),
		MissingCount:   missing,
		MissingPercent: float64(missing) / float64(denom),
		UniqueCount:    len(seen),
		SampleValues:   samples,
		NumericSummary: map[string]*float64{},
	}

	if col.NumericTyped() {
		values := col.NumericValues()
		cp.NumericSummary = numericSummary(values)
		cp.OutlierCount = iqrOutliers(values)
	}
	return cp
}

// numericSummary computes min/max/mean/std over non-missing values.
// Std is the population standard deviation.
func numericSummary(values []float64) map[string]*float64 {
	summary := map[string]*float64{
		"min":  nil,
		"max":  nil,
		"mean": nil,
		"std":  nil,
	}
	if len(values) == 0 {
		return summary
	}

	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	mean, _ := stats.Mean(values)
	std, _ := stats.StandardDeviation(values)

	summary["min"] = &min
	summary["max"] = &max
	summary["mean"] = &mean
	summary["std"] = &std
	return summary
}

// iqrOutliers counts values outside [Q1 - 1.5*IQR, Q3 + 1.5*IQR].
// A zero or undefined IQR yields zero outliers.
func iqrOutliers(values []float64) int {
	if len(values) == 0 {
		return 0
	}

	q1, err := stats.Percentile(values, 25)
	if err != nil {
		return 0
	}
	q3, err := stats.Percentile(values, 75)
	if err != nil {
		return 0
	}

	iqr := q3 - q1
	if iqr == 0 {
		return 0
	}

	lower := q1 - iqrMultiplier*iqr
	upper := q3 + iqrMultiplier*iqr
	count := 0
	for _, v := range values {
		if v < lower || v > upper {
			count++
		}
	}
	return count
}
