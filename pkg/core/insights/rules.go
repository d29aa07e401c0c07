package insights

import (
	"fmt"
	"math"

	"finsight/pkg/core/dispatch"
	"finsight/pkg/core/metrics"
)

// GenerateRuleBased derives insights from fixed thresholds on known metrics.
// It is the deterministic fallback when no LLM provider is available and the
// safety net when one fails; the record shape is identical either way.
func GenerateRuleBased(bundle dispatch.Bundle) *Insights {
	out := &Insights{
		KeyInsights:     []string{},
		Strengths:       []string{},
		Concerns:        []string{},
		Recommendations: []string{},
		Anomalies:       []string{},
		Risks:           []string{},
		Opportunities:   []string{},
		Source:          "rule_based",
	}

	if pl, ok := resultAs[metrics.ProfitLossResult](bundle, "profit_loss"); ok {
		if pl.IsProfitable {
			out.Strengths = append(out.Strengths, fmt.Sprintf("Profitable operations with %.2f%% profit margin", pl.ProfitPercentage))
			out.KeyInsights = append(out.KeyInsights, fmt.Sprintf("Business is generating profit of %.2f", pl.Profit))
		} else {
			out.Concerns = append(out.Concerns, fmt.Sprintf("Operating at a loss of %.2f", math.Abs(pl.Profit)))
			out.Recommendations = append(out.Recommendations, "Focus on reducing costs or increasing revenue to achieve profitability")
		}
	}

	if gm, ok := resultAs[metrics.GrossMarginResult](bundle, "gross_margin"); ok {
		if gm.GrossMarginPercentage > 30 {
			out.Strengths = append(out.Strengths, fmt.Sprintf("Strong gross margin of %.2f%%", gm.GrossMarginPercentage))
		} else if gm.GrossMarginPercentage < 20 {
			out.Concerns = append(out.Concerns, fmt.Sprintf("Low gross margin of %.2f%%", gm.GrossMarginPercentage))
			out.Recommendations = append(out.Recommendations, "Consider increasing prices or reducing cost of goods sold")
		}
	}

	if roi, ok := resultAs[metrics.ROIResult](bundle, "roi"); ok {
		if roi.ROIPercentage > 20 {
			out.KeyInsights = append(out.KeyInsights, fmt.Sprintf("Excellent ROI of %.2f%%", roi.ROIPercentage))
			out.Strengths = append(out.Strengths, "Investment is generating strong returns")
		} else if roi.ROIPercentage < 0 {
			out.Concerns = append(out.Concerns, fmt.Sprintf("Negative ROI of %.2f%%", roi.ROIPercentage))
			out.Recommendations = append(out.Recommendations, "Re-evaluate investment strategy and cost structure")
		}
	}

	if npv, ok := resultAs[*metrics.NPVResult](bundle, "npv"); ok {
		if npv.NPV > 0 {
			out.KeyInsights = append(out.KeyInsights, fmt.Sprintf("Positive NPV of %.2f indicates value creation", npv.NPV))
			out.Opportunities = append(out.Opportunities, "Consider expanding similar profitable projects")
		} else {
			out.Concerns = append(out.Concerns, "Negative NPV suggests project may destroy value")
		}
	}

	if wc, ok := resultAs[metrics.WorkingCapitalResult](bundle, "working_capital"); ok {
		if wc.CurrentRatio < 1 {
			out.Concerns = append(out.Concerns, fmt.Sprintf("Low current ratio of %.2f indicates liquidity issues", wc.CurrentRatio))
			out.Risks = append(out.Risks, "May struggle to meet short-term obligations")
			out.Recommendations = append(out.Recommendations, "Improve cash management and reduce current liabilities")
		} else if wc.CurrentRatio > 2 {
			out.Strengths = append(out.Strengths, fmt.Sprintf("Strong liquidity with current ratio of %.2f", wc.CurrentRatio))
		}
	}

	if de, ok := resultAs[metrics.DebtToEquityResult](bundle, "debt_to_equity"); ok {
		if de.DebtToEquity > 2 {
			out.Risks = append(out.Risks, fmt.Sprintf("High leverage with D/E ratio of %.2f", de.DebtToEquity))
			out.Recommendations = append(out.Recommendations, "Consider reducing debt levels or increasing equity")
		} else if de.DebtToEquity < 0.5 {
			out.Strengths = append(out.Strengths, "Conservative capital structure with low debt")
			out.Opportunities = append(out.Opportunities, "Could leverage debt for growth if profitable")
		}
	}

	if len(out.Concerns) == 0 {
		out.Recommendations = append(out.Recommendations, "Maintain current strong financial performance")
		out.Opportunities = append(out.Opportunities, "Explore expansion or new market opportunities")
	}

	if len(out.Strengths) > 0 && len(out.Concerns) == 0 {
		out.KeyInsights = append([]string{"Overall strong financial health with multiple positive indicators"}, out.KeyInsights...)
	} else if len(out.Concerns) > 0 {
		out.KeyInsights = append([]string{fmt.Sprintf("Identified %d areas requiring attention", len(out.Concerns))}, out.KeyInsights...)
	}

	return out
}

// resultAs extracts a successfully computed metric record of type T from the
// bundle; error-shaped entries never match.
func resultAs[T any](bundle dispatch.Bundle, name string) (T, bool) {
	var zero T
	entry, ok := bundle[name]
	if !ok || entry.Error != nil {
		return zero, false
	}
	value, ok := entry.Data.(T)
	if !ok {
		return zero, false
	}
	return value, true
}
