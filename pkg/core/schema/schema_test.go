package schema_test

import (
	"testing"

	"finsight/pkg/core/schema"
)

func TestClassifyColumns(t *testing.T) {
	cols := []string{"Date", "Revenue", "Cost", "Quantity"}
	roles := schema.ClassifyColumns(cols)

	want := map[schema.Role]string{
		schema.RoleRevenue:  "Revenue",
		schema.RoleCost:     "Cost",
		schema.RoleDate:     "Date",
		schema.RoleQuantity: "Quantity",
	}
	for role, col := range want {
		if roles[role] != col {
			t.Errorf("Expected %s -> %s, got %q", role, col, roles[role])
		}
	}
}

func TestClassifyColumns_SubstringMatch(t *testing.T) {
	// Substring matching on the normalized name: "Total Sales Amount"
	// contains "sales", " monthly_expense " contains "expense" after trim.
	roles := schema.ClassifyColumns([]string{"Total Sales Amount", " monthly_expense "})

	if roles[schema.RoleRevenue] != "Total Sales Amount" {
		t.Errorf("Expected revenue from sales column, got %q", roles[schema.RoleRevenue])
	}
	if roles[schema.RoleCost] != " monthly_expense " {
		t.Errorf("Expected cost column preserved verbatim, got %q", roles[schema.RoleCost])
	}
}

func TestClassifyColumns_FirstColumnWins(t *testing.T) {
	// Two revenue candidates: the earlier column takes the role.
	roles := schema.ClassifyColumns([]string{"gross_sales", "net_revenue"})

	if roles[schema.RoleRevenue] != "gross_sales" {
		t.Errorf("Expected first matching column, got %q", roles[schema.RoleRevenue])
	}
}

func TestClassifyColumns_NoExclusivity(t *testing.T) {
	// One column can carry several roles: "capital" matches both the
	// investment and equity pattern lists.
	roles := schema.ClassifyColumns([]string{"capital"})

	if roles[schema.RoleInvestment] != "capital" {
		t.Errorf("Expected investment role, got %q", roles[schema.RoleInvestment])
	}
	if roles[schema.RoleEquity] != "capital" {
		t.Errorf("Expected equity role, got %q", roles[schema.RoleEquity])
	}
}

func TestClassifyColumns_Idempotent(t *testing.T) {
	cols := []string{"Revenue", "Cost", "Inventory", "customer_id"}
	first := schema.ClassifyColumns(cols)
	second := schema.ClassifyColumns(cols)

	if len(first) != len(second) {
		t.Fatalf("Role counts differ: %d vs %d", len(first), len(second))
	}
	for role, col := range first {
		if second[role] != col {
			t.Errorf("Non-deterministic detection for %s: %q vs %q", role, col, second[role])
		}
	}
}

func TestClassifyColumns_NoMatches(t *testing.T) {
	roles := schema.ClassifyColumns([]string{"alpha", "beta"})
	if len(roles) != 0 {
		t.Errorf("Expected no roles, got %v", roles)
	}
}

func TestClassifyBusiness(t *testing.T) {
	cases := []struct {
		name    string
		columns []string
		want    schema.BusinessType
	}{
		// "product" alone satisfies the retail trigger set: ANY overlap fires.
		{"retail by product", []string{"product_name"}, schema.BusinessRetailInventory},
		// Revenue alone fires service_based before income_statement
		// because the service rule is evaluated first.
		{"service by revenue", []string{"Revenue", "Cost"}, schema.BusinessServiceBased},
		{"investment", []string{"cash_flow_total"}, schema.BusinessInvestmentPortfolio},
		{"balance sheet", []string{"total_liabilities"}, schema.BusinessBalanceSheet},
		{"income statement by profit", []string{"net_profit"}, schema.BusinessIncomeStatement},
		{"general fallback", []string{"alpha"}, schema.BusinessGeneralFinancial},
	}

	for _, tc := range cases {
		roles := schema.ClassifyColumns(tc.columns)
		got := schema.ClassifyBusiness(roles)
		if got != tc.want {
			t.Errorf("%s: expected %s, got %s (roles %v)", tc.name, tc.want, got, roles)
		}
	}
}
