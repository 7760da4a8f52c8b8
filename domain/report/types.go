package report

// ColumnType is a coarse semantic type inferred for a column
type ColumnType string

const (
	TypeNumeric  ColumnType = "numeric"
	TypeBoolean  ColumnType = "boolean"
	TypeDatetime ColumnType = "datetime"
	TypeString   ColumnType = "string"
)

// Issue identifies the kind of problem a recommendation addresses
type Issue string

const (
	IssueMissingValues    Issue = "missing_values"
	IssueOutliers         Issue = "outliers"
	IssueSchemaViolations Issue = "schema_violations"
)

// Severity is the coarse ranking attached to a recommendation
type Severity string

const (
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ColumnProfile holds per-column descriptive statistics.
// NumericSummary is empty for non-numeric columns; for numeric columns
// it carries min/max/mean/std entries, each nil when the column has no
// numeric non-missing values.
type ColumnProfile struct {
	Name           string              `json:"name"`
	DType          string              `json:"dtype"`
	MissingCount   int                 `json:"missing_count"`
	MissingPercent float64             `json:"missing_percent"`
	UniqueCount    int                 `json:"unique_count"`
	SampleValues   []interface{}       `json:"sample_values"`
	NumericSummary map[string]*float64 `json:"numeric_summary"`
	OutlierCount   int                 `json:"outlier_count"`
}

// ProfileReport aggregates column profiles with dataset dimensions
type ProfileReport struct {
	RowCount    int             `json:"row_count"`
	ColumnCount int             `json:"column_count"`
	Columns     []ColumnProfile `json:"columns"`
}

// Violation counts values that fail to coerce to a column's inferred type
type Violation struct {
	InvalidCount   int     `json:"invalid_count"`
	InvalidPercent float64 `json:"invalid_percent"`
}

// SchemaReport maps columns to inferred types and violation counts
type SchemaReport struct {
	Inferred   map[string]ColumnType `json:"inferred"`
	Violations map[string]Violation  `json:"violations"`
}

// NumericDrift compares moments of a shared numeric column
type NumericDrift struct {
	CurrentMean  *float64 `json:"current_mean"`
	BaselineMean *float64 `json:"baseline_mean"`
	CurrentStd   *float64 `json:"current_std"`
	BaselineStd  *float64 `json:"baseline_std"`
	MeanDelta    *float64 `json:"mean_delta"`
}

// CategoricalDrift compares the most frequent value of a shared column
type CategoricalDrift struct {
	CurrentTop      *string  `json:"current_top"`
	CurrentTopFreq  *float64 `json:"current_top_freq"`
	BaselineTop     *string  `json:"baseline_top"`
	BaselineTopFreq *float64 `json:"baseline_top_freq"`
}

// DriftReport holds column-level drift against a baseline dataset.
// A column appears in exactly one of the numeric/categorical maps.
type DriftReport struct {
	Numeric     map[string]NumericDrift     `json:"numeric"`
	Categorical map[string]CategoricalDrift `json:"categorical"`
	Notes       []string                    `json:"notes"`
}

// Recommendation is a single remediation suggestion for a column
type Recommendation struct {
	Column         string   `json:"column"`
	Issue          Issue    `json:"issue"`
	Recommendation string   `json:"recommendation"`
	Severity       Severity `json:"severity"`
}

// Report is the complete data-quality report. Drift is nil when no
// baseline was supplied. Once assembled the report is treated as
// immutable by downstream consumers.
type Report struct {
	Profile         ProfileReport    `json:"profile"`
	Schema          SchemaReport     `json:"schema"`
	Drift           *DriftReport     `json:"drift"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         string           `json:"summary"`
}

// TotalViolations sums invalid counts across all columns
func (r *Report) TotalViolations() int {
	total := 0
	for _, v := range r.Schema.Violations {
		total += v.InvalidCount
	}
	return total
}

// HasDrift reports whether drift data is present and non-empty
func (r *Report) HasDrift() bool {
	return r.Drift != nil && (len(r.Drift.Numeric) > 0 || len(r.Drift.Categorical) > 0)
}
