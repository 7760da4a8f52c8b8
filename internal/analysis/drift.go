package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"guardrails/domain/dataset"
	"guardrails/domain/report"
)

// DetectDrift compares the current dataset against a baseline over their
// shared columns, preserving the current dataset's column order. A column
// lands in exactly one of the numeric/categorical maps. An empty
// intersection is advisory, not an error.
func DetectDrift(current, baseline *dataset.Dataset) *report.DriftReport {
	drift := &report.DriftReport{
		Numeric:     map[string]report.NumericDrift{},
		Categorical: map[string]report.CategoricalDrift{},
		Notes:       []string{},
	}

	shared := 0
	for i := range current.Columns {
		cur := &current.Columns[i]
		base := baseline.ColumnByName(cur.Name)
		if base == nil {
			continue
		}
		shared++

		if cur.NumericTyped() && base.NumericTyped() {
			drift.Numeric[cur.Name] = numericDrift(cur, base)
		} else {
			drift.Categorical[cur.Name] = categoricalDrift(cur, base)
		}
	}

	if shared == 0 {
		drift.Notes = append(drift.Notes, "No shared columns between current and baseline datasets.")
	}
	return drift
}

func numericDrift(cur, base *dataset.Column) report.NumericDrift {
	record := report.NumericDrift{}
	record.CurrentMean, record.CurrentStd = moments(cur.NumericValues())
	record.BaselineMean, record.BaselineStd = moments(base.NumericValues())

	if record.CurrentMean != nil && record.BaselineMean != nil {
		delta := *record.CurrentMean - *record.BaselineMean
		record.MeanDelta = &delta
	}
	return record
}

// moments returns the mean and population standard deviation, or nils
// when the column has no non-missing values
func moments(values []float64) (*float64, *float64) {
	if len(values) == 0 {
		return nil, nil
	}

	mean, variance := stat.MeanVariance(values, nil)
	std := 0.0
	if n := float64(len(values)); n > 1 {
		// MeanVariance returns the unbiased sample variance; drift
		// moments use the population form.
		std = math.Sqrt(variance * (n - 1) / n)
	}
	return &mean, &std
}

func categoricalDrift(cur, base *dataset.Column) report.CategoricalDrift {
	record := report.CategoricalDrift{}
	record.CurrentTop, record.CurrentTopFreq = topValue(cur)
	record.BaselineTop, record.BaselineTopFreq = topValue(base)
	return record
}

// topValue finds the most frequent stringified non-missing value and its
// occurrence count. Ties resolve to the first-seen value.
func topValue(col *dataset.Column) (*string, *float64) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, v := range col.Values {
		if v.IsMissing {
			continue
		}
		key := v.String()
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	if len(order) == 0 {
		return nil, nil
	}

	top := order[0]
	for _, key := range order[1:] {
		if counts[key] > counts[top] {
			top = key
		}
	}
	freq := float64(counts[top])
	return &top, &freq
}
