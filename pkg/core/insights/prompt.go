package insights

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"finsight/pkg/core/dispatch"
	"finsight/pkg/core/extract"
	"finsight/pkg/core/schema"
)

const analystSystemPrompt = "You are an expert financial analyst providing insights on business data."

// buildPrompt assembles the analysis prompt from the run's detection results,
// aggregates, and computed metrics.
func buildPrompt(businessType schema.BusinessType, quality extract.DataQuality, data *extract.FinancialData, bundle dispatch.Bundle) string {
	var b strings.Builder

	b.WriteString("Analyze the following financial dataset and provide actionable insights:\n\n")
	b.WriteString("## Dataset Information\n")
	fmt.Fprintf(&b, "Business Type: %s\n", businessType)
	fmt.Fprintf(&b, "Total Records: %d\n", quality.TotalRows)
	fmt.Fprintf(&b, "Completeness: %.1f%%\n", quality.Completeness)

	b.WriteString("\n## Financial Summary\n")
	if data.Revenue != nil {
		fmt.Fprintf(&b, "Total Revenue: %.2f\n", data.Revenue.Total)
	}
	if data.Cost != nil {
		fmt.Fprintf(&b, "Total Costs: %.2f\n", data.Cost.Total)
	}
	if data.Profit != nil {
		fmt.Fprintf(&b, "Net Profit: %.2f (%.2f%%)\n", data.Profit.Total, data.Profit.MarginPct)
	}

	b.WriteString("\n## Calculated Metrics\n")
	for name, entry := range bundle {
		if entry.Error != nil {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", titleize(name), interpretationOf(entry))
	}

	b.WriteString(`
Respond with a JSON object using exactly these keys, each an array of strings:
"key_insights" (3-5 most important findings), "strengths", "concerns",
"recommendations" (specific actionable steps), "anomalies", "risks",
"opportunities".
`)
	return b.String()
}

// interpretationOf pulls the interpretation field out of a metric record,
// falling back to the whole record as JSON.
func interpretationOf(entry dispatch.Entry) string {
	raw, err := json.Marshal(entry.Data)
	if err != nil {
		return ""
	}
	var fields struct {
		Interpretation string `json:"interpretation"`
	}
	if err := json.Unmarshal(raw, &fields); err == nil && fields.Interpretation != "" {
		return fields.Interpretation
	}
	return string(raw)
}

// titleize turns a snake_case metric name into a display title.
func titleize(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// parseSections is the lenient fallback parser for free-text responses. It
// splits the answer on section headings and collects bullet or numbered
// lines under the current section.
func parseSections(responseText string) *Insights {
	out := &Insights{
		KeyInsights:     []string{},
		Strengths:       []string{},
		Concerns:        []string{},
		Recommendations: []string{},
		Anomalies:       []string{},
		Risks:           []string{},
		Opportunities:   []string{},
	}

	var current *[]string
	for _, line := range strings.Split(responseText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "key insight"):
			current = &out.KeyInsights
		case strings.Contains(lower, "strength"):
			current = &out.Strengths
		case strings.Contains(lower, "concern"):
			current = &out.Concerns
		case strings.Contains(lower, "recommendation"):
			current = &out.Recommendations
		case strings.Contains(lower, "anomal"):
			current = &out.Anomalies
		case strings.Contains(lower, "risk"):
			current = &out.Risks
		case strings.Contains(lower, "opportunit"), strings.Contains(lower, "growth"):
			current = &out.Opportunities
		default:
			if current != nil && isBulletLine(line) {
				*current = append(*current, strings.TrimLeft(line, "-•0123456789. "))
			}
		}
	}
	return out
}

func isBulletLine(line string) bool {
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") {
		return true
	}
	return unicode.IsDigit(rune(line[0]))
}
