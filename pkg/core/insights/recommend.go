package insights

import (
	"fmt"
	"strings"

	"finsight/pkg/core/schema"
)

// DetectionRecommendations summarizes what the detection stage found and what
// the dataset is still missing. The strings surface directly in reports.
func DetectionRecommendations(businessType schema.BusinessType, roles schema.RoleMap, available []string) []string {
	var recs []string

	switch businessType {
	case schema.BusinessRetailInventory:
		recs = append(recs, "📦 Detected retail/inventory dataset. Focus on inventory turnover and gross margins.")
	case schema.BusinessServiceBased:
		recs = append(recs, "💼 Detected service-based business. Focus on revenue per hour and customer metrics.")
	case schema.BusinessInvestmentPortfolio:
		recs = append(recs, "💰 Detected investment data. Focus on ROI, NPV, and IRR calculations.")
	}

	availSet := make(map[string]bool, len(available))
	for _, m := range available {
		availSet[m] = true
	}
	if availSet["profit_loss_ratio"] {
		recs = append(recs, "✅ Profit/Loss analysis available - will calculate profitability metrics.")
	}
	if availSet["npv"] {
		recs = append(recs, "✅ Cash flow data detected - NPV and IRR calculations enabled.")
	}
	if len(available) > 5 {
		recs = append(recs, fmt.Sprintf("🎯 %d financial metrics can be calculated automatically.", len(available)))
	}

	var missing []string
	if _, found := roles[schema.RoleRevenue]; !found {
		missing = append(missing, "revenue/sales")
	}
	if _, found := roles[schema.RoleCost]; !found {
		missing = append(missing, "cost/expenses")
	}
	if _, found := roles[schema.RoleDate]; !found {
		missing = append(missing, "date/time")
	}
	if len(missing) > 0 {
		recs = append(recs, fmt.Sprintf("⚠️ Consider adding: %s columns for more comprehensive analysis.", strings.Join(missing, ", ")))
	}

	return recs
}
