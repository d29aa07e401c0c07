package metrics_test

import (
	"testing"

	"finsight/pkg/core/metrics"
)

func TestCalculateWorkingCapital(t *testing.T) {
	// Assets 200000, Liabilities 100000
	// WC = 100000, Ratio = 2 -> Healthy
	res := metrics.CalculateWorkingCapital(200000, 100000)

	if res.WorkingCapital != 100000 {
		t.Errorf("Expected WC 100000, got %.2f", res.WorkingCapital)
	}
	if res.CurrentRatio != 2 {
		t.Errorf("Expected ratio 2, got %.4f", res.CurrentRatio)
	}
	if res.LiquidityStatus != "Healthy" {
		t.Errorf("Expected Healthy, got %s", res.LiquidityStatus)
	}
}

func TestCalculateWorkingCapital_ZeroLiabilities(t *testing.T) {
	// Zero liabilities forces the ratio to 0, which lands in the
	// Concerning band even though there is no debt at all.
	res := metrics.CalculateWorkingCapital(200000, 0)

	if res.CurrentRatio != 0 {
		t.Errorf("Expected forced-zero ratio, got %.4f", res.CurrentRatio)
	}
	if res.LiquidityStatus != "Concerning" {
		t.Errorf("Expected Concerning, got %s", res.LiquidityStatus)
	}
}

func TestCalculateDebtToEquity(t *testing.T) {
	// Debt 300000, Equity 200000 -> 1.5 -> Moderate
	res := metrics.CalculateDebtToEquity(300000, 200000)

	if res.DebtToEquity != 1.5 {
		t.Errorf("Expected D/E 1.5, got %.4f", res.DebtToEquity)
	}
	if res.Leverage != "Moderate" {
		t.Errorf("Expected Moderate, got %s", res.Leverage)
	}
}

func TestCalculateDebtToEquity_ZeroEquity(t *testing.T) {
	res := metrics.CalculateDebtToEquity(300000, 0)

	if res.DebtToEquity != 0 {
		t.Errorf("Expected forced-zero ratio, got %.4f", res.DebtToEquity)
	}
	if res.Leverage != "Conservative" {
		t.Errorf("Expected Conservative, got %s", res.Leverage)
	}
}

func TestCalculateInventoryTurnover(t *testing.T) {
	// COGS 600000, Avg inventory 50000 -> 12 turns, ~30 days -> Excellent
	res, err := metrics.CalculateInventoryTurnover(600000, 50000)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if res.InventoryTurnover != 12 {
		t.Errorf("Expected turnover 12, got %.4f", res.InventoryTurnover)
	}
	if !almostEqual(res.DaysInventoryOutstanding, 30.42, 0.01) {
		t.Errorf("Expected ~30.42 days, got %.2f", res.DaysInventoryOutstanding)
	}
	if res.Efficiency != "Excellent" {
		t.Errorf("Expected Excellent, got %s", res.Efficiency)
	}
}

func TestCalculateInventoryTurnover_ZeroInventory(t *testing.T) {
	// Unlike the forced-zero metrics, a non-positive average inventory is
	// a hard error.
	_, err := metrics.CalculateInventoryTurnover(600000, 0)
	if err == nil {
		t.Fatal("Expected error for zero inventory")
	}
	if err.Kind != metrics.ErrDegenerateInput {
		t.Errorf("Expected degenerate_input, got %s", err.Kind)
	}
}

func TestCalculateRevenuePerHour(t *testing.T) {
	// Revenue 80000, Hours 400 -> 200/hour
	// Daily = 200*8 = 1600, Monthly = 200*160 = 32000
	res := metrics.CalculateRevenuePerHour(80000, 400)

	if res.RevenuePerHour != 200 {
		t.Errorf("Expected 200/hour, got %.4f", res.RevenuePerHour)
	}
	if res.DailyRevenue != 1600 {
		t.Errorf("Expected daily 1600, got %.2f", res.DailyRevenue)
	}
	if res.MonthlyRevenue != 32000 {
		t.Errorf("Expected monthly 32000, got %.2f", res.MonthlyRevenue)
	}
}

func TestCalculateSalesGrowth(t *testing.T) {
	// Current 120000, Previous 100000 -> 0.2 -> Growing
	res := metrics.CalculateSalesGrowth(120000, 100000)

	if !almostEqual(res.SalesGrowth, 0.2, 1e-9) {
		t.Errorf("Expected growth 0.2, got %.4f", res.SalesGrowth)
	}
	if res.Trend != "Growing" {
		t.Errorf("Expected Growing, got %s", res.Trend)
	}

	decline := metrics.CalculateSalesGrowth(80000, 100000)
	if decline.Trend != "Declining" {
		t.Errorf("Expected Declining, got %s", decline.Trend)
	}
}

func TestCalculateOperatingCashFlowRatio(t *testing.T) {
	// OCF 150000, Liabilities 100000 -> 1.5 -> Strong
	res, err := metrics.CalculateOperatingCashFlowRatio(150000, 100000)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if res.OperatingCashflowRatio != 1.5 {
		t.Errorf("Expected ratio 1.5, got %.4f", res.OperatingCashflowRatio)
	}
	if res.Interpretation != "Strong - can cover current liabilities with operating cash flow" {
		t.Errorf("Unexpected interpretation: %s", res.Interpretation)
	}
}

func TestCalculateOperatingCashFlowRatio_ZeroLiabilities(t *testing.T) {
	_, err := metrics.CalculateOperatingCashFlowRatio(150000, 0)
	if err == nil {
		t.Fatal("Expected error for zero liabilities")
	}
}

func TestCalculateAssetTurnover(t *testing.T) {
	// Revenue 500000, Assets 400000 -> 1.25 -> Good
	res, err := metrics.CalculateAssetTurnover(500000, 400000)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if res.AssetTurnover != 1.25 {
		t.Errorf("Expected turnover 1.25, got %.4f", res.AssetTurnover)
	}
	if res.Interpretation != "Good - efficient use of assets" {
		t.Errorf("Unexpected interpretation: %s", res.Interpretation)
	}
}

func TestCalculateAssetTurnover_ZeroAssets(t *testing.T) {
	_, err := metrics.CalculateAssetTurnover(500000, 0)
	if err == nil {
		t.Fatal("Expected error for zero assets")
	}
	if err.Kind != metrics.ErrDegenerateInput {
		t.Errorf("Expected degenerate_input, got %s", err.Kind)
	}
}
