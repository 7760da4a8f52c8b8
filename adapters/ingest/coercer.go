// Package ingest decodes uploaded CSV and Excel files into typed
// datasets. Parse failures here surface to the caller before the
// analysis core ever runs.
package ingest

import (
	"strconv"
	"strings"

	"guardrails/domain/dataset"
)

// CoerceCell converts raw cell text into a typed value. Numbers become
// numeric cells, empty text becomes a missing marker, everything else
// stays a string. Booleans and timestamps are left as text for the
// inference stage; only a uniformly boolean-literal column is upgraded
// (see upgradeBooleanColumn), matching how a typed source would deliver
// such a column.
func CoerceCell(raw string) dataset.Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || isNAToken(trimmed) {
		return dataset.NewMissingValue()
	}
	if num, ok := dataset.ParseNumeric(trimmed); ok {
		return dataset.NewNumericValue(num)
	}
	return dataset.NewStringValue(trimmed)
}

// isNAToken recognizes common textual missing-value markers
func isNAToken(s string) bool {
	switch strings.ToUpper(s) {
	case "NA", "N/A", "NAN", "NULL", "NONE":
		return true
	}
	return false
}

// upgradeBooleanColumn rewrites a column's cells as booleans when every
// non-missing cell is a true/false literal. This mirrors source systems
// that deliver genuine boolean columns.
func upgradeBooleanColumn(col *dataset.Column) {
	sawValue := false
	for _, v := range col.Values {
		if v.IsMissing {
			continue
		}
		if v.Type != dataset.ValueTypeString {
			return
		}
		switch strings.ToLower(*v.StringVal) {
		case "true", "false":
			sawValue = true
		default:
			return
		}
	}
	if !sawValue {
		return
	}

	for i, v := range col.Values {
		if v.IsMissing {
			continue
		}
		col.Values[i] = dataset.NewBooleanValue(strings.EqualFold(*v.StringVal, "true"))
	}
}

// buildDataset assembles typed columns from a header row and raw rows.
// Rows shorter than the header are padded with missing markers.
func buildDataset(header []string, rows [][]string) *dataset.Dataset {
	columns := make([]dataset.Column, len(header))
	names := mangleHeader(header)
	for i := range columns {
		columns[i] = dataset.Column{
			Name:   names[i],
			Values: make([]dataset.Value, 0, len(rows)),
		}
	}

	for _, row := range rows {
		for i := range columns {
			if i < len(row) {
				columns[i].Values = append(columns[i].Values, CoerceCell(row[i]))
			} else {
				columns[i].Values = append(columns[i].Values, dataset.NewMissingValue())
			}
		}
	}

	for i := range columns {
		upgradeBooleanColumn(&columns[i])
	}
	return dataset.NewDataset(columns)
}

// mangleHeader deduplicates repeated column names with a numeric suffix
func mangleHeader(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = "unnamed"
		}
		if count, dup := seen[name]; dup {
			seen[name] = count + 1
			names[i] = name + "." + strconv.Itoa(count)
		} else {
			seen[name] = 1
			names[i] = name
		}
	}
	return names
}
