package ai

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardrails/domain/report"
	"guardrails/internal/config"
)

func TestGenerate_DisabledWithoutKey(t *testing.T) {
	gen := NewInsightGenerator(config.AIConfig{})

	out := gen.Generate(context.Background(), &report.Report{})
	assert.Equal(t, "disabled", out["status"])
	assert.Equal(t, "OPENAI_API_KEY not set", out["reason"])
}

func TestCandidateModels_ConfiguredFirst(t *testing.T) {
	models := candidateModels("gpt-4.1-mini")
	require.NotEmpty(t, models)
	assert.Equal(t, "gpt-4.1-mini", models[0])
	assert.NotContains(t, models[1:], "gpt-4.1-mini")
	assert.Contains(t, models, "gpt-4o-mini")
}

func TestCandidateModels_UnknownConfigured(t *testing.T) {
	models := candidateModels("custom-model")
	assert.Equal(t, append([]string{"custom-model"}, fallbackModels...), models)
}

func TestCompactReport_CapsColumns(t *testing.T) {
	r := &report.Report{}
	for i := 0; i < maxCompactColumns+10; i++ {
		r.Profile.Columns = append(r.Profile.Columns, report.ColumnProfile{
			Name:         fmt.Sprintf("col_%d", i),
			SampleValues: []interface{}{"a", "b", "c", "d", "e"},
		})
	}

	compact := compactReport(r)
	columns := compact["profile"].(map[string]interface{})["columns"].([]map[string]interface{})
	require.Len(t, columns, maxCompactColumns)
	assert.Len(t, columns[0]["sample_values"], maxCompactSamples)
}

func TestCompactReport_CapsRecommendations(t *testing.T) {
	r := &report.Report{}
	for i := 0; i < maxCompactRecommendations+5; i++ {
		r.Recommendations = append(r.Recommendations, report.Recommendation{Column: fmt.Sprintf("c%d", i)})
	}

	compact := compactReport(r)
	recs := compact["recommendations"].([]report.Recommendation)
	assert.Len(t, recs, maxCompactRecommendations)
}

func TestCompactReport_RoundsMissingPercent(t *testing.T) {
	r := &report.Report{}
	r.Profile.Columns = append(r.Profile.Columns, report.ColumnProfile{
		Name:           "age",
		MissingPercent: 1.0 / 3.0,
	})

	compact := compactReport(r)
	columns := compact["profile"].(map[string]interface{})["columns"].([]map[string]interface{})
	assert.Equal(t, 0.3333, columns[0]["missing_percent"])
}

func TestNewInsightGenerator_WithKey(t *testing.T) {
	gen := NewInsightGenerator(config.AIConfig{
		APIKey:      "sk-test",
		Model:       "gpt-4o-mini",
		MaxTokens:   256,
		Temperature: 0.2,
	})

	require.NotNil(t, gen.client)
	assert.Equal(t, "gpt-4o-mini", gen.model)
	assert.Equal(t, 256, gen.client.MaxTokens)
}
