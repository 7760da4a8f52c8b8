package ai

import (
	"context"
	"encoding/json"
	"math"

	"guardrails/domain/report"
	"guardrails/internal/config"
)

// Limits applied when compacting a report into a prompt payload
const (
	maxCompactColumns         = 50
	maxCompactSamples         = 3
	maxCompactRecommendations = 20
)

// fallbackModels are tried in order after the configured model fails
var fallbackModels = []string{
	"gpt-4o-mini",
	"gpt-4.1-mini",
	"gpt-4.1-nano",
	"gpt-4o",
}

const systemPrompt = "You are a data quality assistant. Use only the provided report summary. " +
	"Return concise, non-technical language suitable for business users."

// InsightGenerator produces narrative insights for analysis reports
type InsightGenerator struct {
	client *OpenAIClient
	model  string
}

// NewInsightGenerator wires an insight generator from config. A missing
// API key yields a generator that reports itself disabled.
func NewInsightGenerator(cfg config.AIConfig) *InsightGenerator {
	if cfg.APIKey == "" {
		return &InsightGenerator{}
	}
	client := NewOpenAIClient(cfg.APIKey)
	client.Temperature = cfg.Temperature
	client.MaxTokens = cfg.MaxTokens
	return &InsightGenerator{client: client, model: cfg.Model}
}

// Generate turns the report into business-readable insights. It never
// returns an error: unavailability degrades to a status payload so the
// analyze response stays complete.
func (g *InsightGenerator) Generate(ctx context.Context, r *report.Report) map[string]interface{} {
	if g.client == nil {
		return map[string]interface{}{
			"status": "disabled",
			"reason": "OPENAI_API_KEY not set",
		}
	}

	payload := map[string]interface{}{
		"task":   "Generate insights in JSON only, no markdown.",
		"report": compactReport(r),
		"required_keys": []string{
			"summary_bullets",
			"cleaning_recipe",
			"semantic_types",
			"drift_narrative",
			"anomaly_explanation",
		},
		"constraints": map[string]interface{}{
			"summary_bullets_max":       6,
			"cleaning_recipe_max_lines": 12,
			"semantic_types_max":        12,
			"tone":                      "clear, pragmatic",
		},
	}

	userMessage, err := json.Marshal(payload)
	if err != nil {
		return map[string]interface{}{"status": "error", "reason": err.Error()}
	}

	var lastErr error
	for _, model := range candidateModels(g.model) {
		text, err := g.client.ChatJSON(ctx, model, systemPrompt, string(userMessage))
		if err != nil {
			lastErr = err
			continue
		}

		var insights map[string]interface{}
		if err := json.Unmarshal([]byte(text), &insights); err != nil {
			lastErr = err
			continue
		}
		insights["status"] = "ok"
		insights["model_used"] = model
		return insights
	}

	reason := "Unknown error"
	if lastErr != nil {
		reason = lastErr.Error()
	}
	return map[string]interface{}{"status": "error", "reason": reason}
}

// candidateModels puts the configured model first, then the fallbacks
func candidateModels(configured string) []string {
	models := []string{configured}
	for _, m := range fallbackModels {
		if m != configured {
			models = append(models, m)
		}
	}
	return models
}

// compactReport shrinks the report so large datasets stay within prompt
// budget: column list, sample values, and recommendations are capped.
func compactReport(r *report.Report) map[string]interface{} {
	columns := make([]map[string]interface{}, 0, len(r.Profile.Columns))
	for i, col := range r.Profile.Columns {
		if i >= maxCompactColumns {
			break
		}
		samples := col.SampleValues
		if len(samples) > maxCompactSamples {
			samples = samples[:maxCompactSamples]
		}
		columns = append(columns, map[string]interface{}{
			"name":            col.Name,
			"dtype":           col.DType,
			"missing_percent": round4(col.MissingPercent),
			"unique_count":    col.UniqueCount,
			"sample_values":   samples,
			"numeric_summary": col.NumericSummary,
			"outlier_count":   col.OutlierCount,
		})
	}

	recommendations := r.Recommendations
	if len(recommendations) > maxCompactRecommendations {
		recommendations = recommendations[:maxCompactRecommendations]
	}

	return map[string]interface{}{
		"profile": map[string]interface{}{
			"row_count":    r.Profile.RowCount,
			"column_count": r.Profile.ColumnCount,
			"columns":      columns,
		},
		"schema": map[string]interface{}{
			"inferred":   r.Schema.Inferred,
			"violations": r.Schema.Violations,
		},
		"drift":           r.Drift,
		"recommendations": recommendations,
	}
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
