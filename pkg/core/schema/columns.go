// Package schema maps raw column names to semantic financial roles and
// derives a coarse business category from the roles found.
package schema

import "strings"

// Role is the semantic financial meaning assigned to a column.
type Role string

const (
	RoleRevenue     Role = "revenue"
	RoleCost        Role = "cost"
	RoleProfit      Role = "profit"
	RoleDate        Role = "date"
	RoleQuantity    Role = "quantity"
	RolePrice       Role = "price"
	RoleCustomer    Role = "customer"
	RoleProduct     Role = "product"
	RoleInvestment  Role = "investment"
	RoleCashflow    Role = "cashflow"
	RoleAssets      Role = "assets"
	RoleLiabilities Role = "liabilities"
	RoleEquity      Role = "equity"
)

// RoleMap assigns each detected role the original column name that carries it.
type RoleMap map[Role]string

// rolePatterns is the detection table. Roles are tried in declaration order;
// within a role, columns are scanned in table order and the first column
// containing any of the role's substrings wins. A column may satisfy several
// roles; no exclusivity is enforced.
var rolePatterns = []struct {
	Role     Role
	Patterns []string
}{
	{RoleRevenue, []string{"revenue", "sales", "income", "total_amount", "total amount", "sales_amount"}},
	{RoleCost, []string{"cost", "expense", "cogs", "cost_of_goods", "purchase", "expenditure"}},
	{RoleProfit, []string{"profit", "net_income", "earnings", "margin"}},
	{RoleDate, []string{"date", "time", "period", "month", "year", "timestamp"}},
	{RoleQuantity, []string{"quantity", "qty", "units", "volume", "count"}},
	{RolePrice, []string{"price", "unit_price", "rate", "cost_per_unit"}},
	{RoleCustomer, []string{"customer", "client", "buyer", "account"}},
	{RoleProduct, []string{"product", "item", "sku", "category", "service"}},
	{RoleInvestment, []string{"investment", "capital", "initial", "principal"}},
	{RoleCashflow, []string{"cash_flow", "cashflow", "cash"}},
	{RoleAssets, []string{"assets", "inventory", "stock"}},
	{RoleLiabilities, []string{"liabilities", "debt", "payable", "loan"}},
	{RoleEquity, []string{"equity", "capital", "owner"}},
}

// ClassifyColumns assigns each role the first column (by table order) whose
// lowercased, trimmed name contains one of the role's patterns. Roles with no
// matching column are simply absent from the result. Detection is
// deterministic: the same column-name list always yields the same RoleMap.
func ClassifyColumns(columnNames []string) RoleMap {
	normalized := make([]string, len(columnNames))
	for i, name := range columnNames {
		normalized[i] = strings.ToLower(strings.TrimSpace(name))
	}

	roles := make(RoleMap)
	for _, entry := range rolePatterns {
	scan:
		for i, col := range normalized {
			for _, pattern := range entry.Patterns {
				if strings.Contains(col, pattern) {
					roles[entry.Role] = columnNames[i]
					break scan
				}
			}
		}
	}
	return roles
}

// Roles returns the detected roles as a set.
func (m RoleMap) Roles() map[Role]bool {
	set := make(map[Role]bool, len(m))
	for r := range m {
		set[r] = true
	}
	return set
}
