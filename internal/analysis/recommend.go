package analysis

import (
	"fmt"
	"strings"

	"guardrails/domain/report"
)

// Fixed decision-table thresholds for remediation recommendations
const (
	missingRecommendThreshold = 0.05
	missingHighThreshold      = 0.2
	violationHighThreshold    = 0.1
)

const (
	missingAdvice   = "Consider imputing missing values (mean/median for numeric, mode for categorical)."
	outlierAdvice   = "Consider clipping, winsorization, or removing outliers."
	violationAdvice = "Consider casting values to the inferred type or cleaning invalid entries."
)

// RecommendFixes maps profiling and schema-violation findings to a
// ranked list of remediation suggestions. Columns iterate in profile
// order; within a column the rule order is missing values, outliers,
// schema violations. Each rule is independent, so a column can yield
// up to three recommendations.
func RecommendFixes(profile report.ProfileReport, schema report.SchemaReport) []report.Recommendation {
	recommendations := make([]report.Recommendation, 0)

	for _, col := range profile.Columns {
		if col.MissingPercent >= missingRecommendThreshold {
			severity := report.SeverityMedium
			if col.MissingPercent >= missingHighThreshold {
				severity = report.SeverityHigh
			}
			recommendations = append(recommendations, report.Recommendation{
				Column:         col.Name,
				Issue:          report.IssueMissingValues,
				Recommendation: missingAdvice,
				Severity:       severity,
			})
		}

		if col.OutlierCount > 0 {
			recommendations = append(recommendations, report.Recommendation{
				Column:         col.Name,
				Issue:          report.IssueOutliers,
				Recommendation: outlierAdvice,
				Severity:       report.SeverityMedium,
			})
		}

		if violation, ok := schema.Violations[col.Name]; ok && violation.InvalidCount > 0 {
			severity := report.SeverityMedium
			if violation.InvalidPercent > violationHighThreshold {
				severity = report.SeverityHigh
			}
			recommendations = append(recommendations, report.Recommendation{
				Column:         col.Name,
				Issue:          report.IssueSchemaViolations,
				Recommendation: violationAdvice,
				Severity:       severity,
			})
		}
	}
	return recommendations
}

// SummarizeReport renders the deterministic one-paragraph summary.
// Partially empty upstream sections (drift=nil included) are valid
// states, never errors.
func SummarizeReport(r *report.Report) string {
	parts := []string{
		fmt.Sprintf("Rows: %d, Columns: %d.", r.Profile.RowCount, r.Profile.ColumnCount),
		fmt.Sprintf("Schema violations: %d.", r.TotalViolations()),
		fmt.Sprintf("Recommendations: %d.", len(r.Recommendations)),
	}
	if r.HasDrift() {
		parts = append(parts, "Baseline drift comparison included.")
	}
	return strings.Join(parts, " ")
}
