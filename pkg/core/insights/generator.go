package insights

import (
	"context"

	"finsight/pkg/core/dispatch"
	"finsight/pkg/core/extract"
	"finsight/pkg/core/llm"
	"finsight/pkg/core/schema"
	"finsight/pkg/core/utils"
)

// Generator produces insights for an analysis run. With a nil Provider it is
// purely rule-based; with one configured it asks the model and falls back to
// the rules on any failure, so the caller always gets a populated record.
type Generator struct {
	Provider llm.Provider
}

// Generate builds the insights record. The metric bundle is identical
// whether or not the provider is reachable; only the narrative source
// changes.
func (g *Generator) Generate(ctx context.Context, businessType schema.BusinessType, quality extract.DataQuality, data *extract.FinancialData, bundle dispatch.Bundle) *Insights {
	if g == nil || g.Provider == nil {
		return GenerateRuleBased(bundle)
	}

	prompt := buildPrompt(businessType, quality, data, bundle)
	response, err := g.Provider.GenerateResponse(ctx, prompt, analystSystemPrompt, map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		return GenerateRuleBased(bundle)
	}

	parsed := parseResponse(response)
	if parsed == nil {
		return GenerateRuleBased(bundle)
	}
	parsed.Source = "llm"
	return parsed
}

// parseResponse first attempts lenient JSON decoding of the structured
// reply, then falls back to section-heading parsing of free text. A reply
// that yields nothing in either mode is treated as a failure.
func parseResponse(response string) *Insights {
	var structured Insights
	if _, err := utils.SmartParse(response, &structured); err == nil && !structured.empty() {
		return &structured
	}

	sectioned := parseSections(response)
	if sectioned.empty() {
		return nil
	}
	return sectioned
}

func (i *Insights) empty() bool {
	return len(i.KeyInsights) == 0 && len(i.Strengths) == 0 && len(i.Concerns) == 0 &&
		len(i.Recommendations) == 0 && len(i.Anomalies) == 0 && len(i.Risks) == 0 &&
		len(i.Opportunities) == 0
}
