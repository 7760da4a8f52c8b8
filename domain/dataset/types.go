package dataset

import (
	"fmt"
	"time"
)

// Value represents a typed cell with deterministic coercion
type Value struct {
	Type         ValueType  `json:"type"`
	StringVal    *string    `json:"string_val,omitempty"`
	NumericVal   *float64   `json:"numeric_val,omitempty"`
	BooleanVal   *bool      `json:"boolean_val,omitempty"`
	TimestampVal *time.Time `json:"timestamp_val,omitempty"`
	IsMissing    bool       `json:"is_missing"`
}

// ValueType defines the storage type for cell values
type ValueType string

const (
	ValueTypeString    ValueType = "string"
	ValueTypeNumeric   ValueType = "numeric"
	ValueTypeBoolean   ValueType = "boolean"
	ValueTypeTimestamp ValueType = "timestamp"
	ValueTypeMissing   ValueType = "missing"
)

// Column is a named, ordered sequence of cells
type Column struct {
	Name   string  `json:"name"`
	Values []Value `json:"values"`
}

// Dataset is an ordered sequence of columns with uniform row count.
// It is immutable input to the analysis core; every stage reads it and
// writes only to the report.
type Dataset struct {
	Columns []Column `json:"columns"`
}

// NewStringValue creates a string value; empty strings become missing
func NewStringValue(s string) Value {
	if s == "" {
		return Value{Type: ValueTypeMissing, IsMissing: true}
	}
	return Value{Type: ValueTypeString, StringVal: &s}
}

// NewNumericValue creates a numeric value
func NewNumericValue(n float64) Value {
	return Value{Type: ValueTypeNumeric, NumericVal: &n}
}

// NewBooleanValue creates a boolean value
func NewBooleanValue(b bool) Value {
	return Value{Type: ValueTypeBoolean, BooleanVal: &b}
}

// NewTimestampValue creates a timestamp value
func NewTimestampValue(t time.Time) Value {
	return Value{Type: ValueTypeTimestamp, TimestampVal: &t}
}

// NewMissingValue creates a missing value
func NewMissingValue() Value {
	return Value{Type: ValueTypeMissing, IsMissing: true}
}

// IsNumeric returns true if the value holds a valid number
func (v Value) IsNumeric() bool {
	return v.Type == ValueTypeNumeric && v.NumericVal != nil
}

// IsBoolean returns true if the value holds a valid boolean
func (v Value) IsBoolean() bool {
	return v.Type == ValueTypeBoolean && v.BooleanVal != nil
}

// IsTimestamp returns true if the value holds a valid timestamp
func (v Value) IsTimestamp() bool {
	return v.Type == ValueTypeTimestamp && v.TimestampVal != nil
}

// AsFloat64 returns the numeric value, or 0 if not numeric
func (v Value) AsFloat64() float64 {
	if v.NumericVal != nil {
		return *v.NumericVal
	}
	return 0.0
}

// String returns the stringified form used for categorical comparison
// and sample display. Numeric values format without trailing zeros so
// the same number stringifies identically regardless of source text.
func (v Value) String() string {
	switch v.Type {
	case ValueTypeString:
		if v.StringVal != nil {
			return *v.StringVal
		}
	case ValueTypeNumeric:
		if v.NumericVal != nil {
			return formatFloat(*v.NumericVal)
		}
	case ValueTypeBoolean:
		if v.BooleanVal != nil {
			return fmt.Sprintf("%t", *v.BooleanVal)
		}
	case ValueTypeTimestamp:
		if v.TimestampVal != nil {
			return v.TimestampVal.Format(time.RFC3339)
		}
	case ValueTypeMissing:
		return "<missing>"
	}
	return "<invalid>"
}

// Native returns the untyped payload for JSON output
func (v Value) Native() interface{} {
	switch v.Type {
	case ValueTypeString:
		if v.StringVal != nil {
			return *v.StringVal
		}
	case ValueTypeNumeric:
		if v.NumericVal != nil {
			return *v.NumericVal
		}
	case ValueTypeBoolean:
		if v.BooleanVal != nil {
			return *v.BooleanVal
		}
	case ValueTypeTimestamp:
		if v.TimestampVal != nil {
			return v.TimestampVal.Format(time.RFC3339)
		}
	}
	return nil
}

// NewDataset builds a dataset from ordered columns
func NewDataset(columns []Column) *Dataset {
	return &Dataset{Columns: columns}
}

// RowCount returns the logical row count (length of the first column)
func (d *Dataset) RowCount() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

// ColumnCount returns the number of columns
func (d *Dataset) ColumnCount() int {
	return len(d.Columns)
}

// ColumnNames returns names in dataset order
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		names[i] = col.Name
	}
	return names
}

// ColumnByName returns the named column, or nil if absent
func (d *Dataset) ColumnByName(name string) *Column {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i]
		}
	}
	return nil
}

// Rows materializes the dataset as ordered row objects, up to limit.
// A negative limit returns all rows.
func (d *Dataset) Rows(limit int) []map[string]interface{} {
	count := d.RowCount()
	if limit >= 0 && limit < count {
		count = limit
	}
	rows := make([]map[string]interface{}, 0, count)
	for i := 0; i < count; i++ {
		row := make(map[string]interface{}, len(d.Columns))
		for _, col := range d.Columns {
			row[col.Name] = col.Values[i].Native()
		}
		rows = append(rows, row)
	}
	return rows
}

// NonMissing returns the column's non-missing values in order
func (c *Column) NonMissing() []Value {
	out := make([]Value, 0, len(c.Values))
	for _, v := range c.Values {
		if !v.IsMissing {
			out = append(out, v)
		}
	}
	return out
}

// AllNumeric reports whether every value in the column is numeric-typed
// at the source level
func (c *Column) AllNumeric() bool {
	if len(c.Values) == 0 {
		return false
	}
	for _, v := range c.Values {
		if !v.IsNumeric() {
			return false
		}
	}
	return true
}

// AllBoolean reports whether every value is boolean-typed at the source level
func (c *Column) AllBoolean() bool {
	if len(c.Values) == 0 {
		return false
	}
	for _, v := range c.Values {
		if !v.IsBoolean() {
			return false
		}
	}
	return true
}

// NumericTyped reports whether the column's non-missing values are all
// numeric and at least one exists. Missing cells are tolerated, matching
// a float column with NaN holes.
func (c *Column) NumericTyped() bool {
	seen := false
	for _, v := range c.Values {
		if v.IsMissing {
			continue
		}
		if !v.IsNumeric() {
			return false
		}
		seen = true
	}
	return seen
}

// NumericValues extracts float payloads from non-missing numeric cells
func (c *Column) NumericValues() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if v.IsNumeric() {
			out = append(out, *v.NumericVal)
		}
	}
	return out
}

// DTypeLabel returns the observed storage dtype label for profiling
func (c *Column) DTypeLabel() string {
	if c.AllBoolean() {
		return "bool"
	}
	if c.NumericTyped() {
		return "float64"
	}
	return "object"
}
