package schema

// BusinessType is the coarse category inferred from detected roles.
type BusinessType string

const (
	BusinessRetailInventory     BusinessType = "retail_inventory"
	BusinessServiceBased        BusinessType = "service_based"
	BusinessInvestmentPortfolio BusinessType = "investment_portfolio"
	BusinessBalanceSheet        BusinessType = "balance_sheet"
	BusinessIncomeStatement     BusinessType = "income_statement"
	BusinessGeneralFinancial    BusinessType = "general_financial"
)

// businessTriggers is evaluated in order; a rule fires when the detected
// role set overlaps its trigger set at all, so priority alone decides when a
// dataset satisfies several rules. This is a coarse heuristic, not a
// classifier guarantee.
var businessTriggers = []struct {
	Type     BusinessType
	Triggers []Role
}{
	{BusinessRetailInventory, []Role{RoleProduct, RoleQuantity, RoleAssets}},
	{BusinessServiceBased, []Role{RoleCustomer, RoleRevenue, RoleDate}},
	{BusinessInvestmentPortfolio, []Role{RoleInvestment, RoleCashflow}},
	{BusinessBalanceSheet, []Role{RoleAssets, RoleLiabilities, RoleEquity}},
	{BusinessIncomeStatement, []Role{RoleRevenue, RoleCost, RoleProfit}},
}

// ClassifyBusiness derives the business type from the roles present.
func ClassifyBusiness(roles RoleMap) BusinessType {
	for _, rule := range businessTriggers {
		for _, r := range rule.Triggers {
			if _, ok := roles[r]; ok {
				return rule.Type
			}
		}
	}
	return BusinessGeneralFinancial
}
