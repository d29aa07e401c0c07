package insights

import "finsight/pkg/core/schema"

// SuggestAdditionalMetrics lists metrics worth tracking beyond the computed
// bundle, specialized by business type.
func SuggestAdditionalMetrics(businessType schema.BusinessType) []string {
	var suggestions []string

	switch businessType {
	case schema.BusinessRetailInventory:
		suggestions = append(suggestions,
			"Stock-to-Sales Ratio",
			"Sell-Through Rate",
			"Average Transaction Value",
			"Customer Lifetime Value",
			"Category Performance Analysis",
		)
	case schema.BusinessServiceBased:
		suggestions = append(suggestions,
			"Billable Hours Percentage",
			"Customer Acquisition Cost",
			"Customer Retention Rate",
			"Average Project Profitability",
			"Resource Utilization Rate",
		)
	case schema.BusinessInvestmentPortfolio:
		suggestions = append(suggestions,
			"Sharpe Ratio",
			"Alpha and Beta",
			"Portfolio Volatility",
			"Risk-Adjusted Returns",
			"Diversification Metrics",
		)
	}

	return append(suggestions,
		"Year-over-Year Growth",
		"Burn Rate Analysis",
		"Operating Expense Ratio",
		"EBITDA Margin",
	)
}
