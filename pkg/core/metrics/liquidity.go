package metrics

import "fmt"

// WorkingCapitalResult holds short-term liquidity figures.
type WorkingCapitalResult struct {
	WorkingCapital     float64 `json:"working_capital"`
	CurrentRatio       float64 `json:"current_ratio"`
	CurrentAssets      float64 `json:"current_assets"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	LiquidityStatus    string  `json:"liquidity_status"`
	Interpretation     string  `json:"interpretation"`
	Formula            string  `json:"formula"`
}

// CalculateWorkingCapital computes working capital and the current ratio.
// Non-positive liabilities force the ratio to zero.
func CalculateWorkingCapital(currentAssets, currentLiabilities float64) WorkingCapitalResult {
	wc := currentAssets - currentLiabilities
	ratio := 0.0
	if currentLiabilities > 0 {
		ratio = currentAssets / currentLiabilities
	}
	var status string
	switch {
	case ratio > 1.5:
		status = "Healthy"
	case ratio > 1:
		status = "Adequate"
	default:
		status = "Concerning"
	}
	return WorkingCapitalResult{
		WorkingCapital:     round4(wc),
		CurrentRatio:       round4(ratio),
		CurrentAssets:      round4(currentAssets),
		CurrentLiabilities: round4(currentLiabilities),
		LiquidityStatus:    status,
		Interpretation:     fmt.Sprintf("Working capital of %.2f with current ratio of %.2f", wc, ratio),
		Formula:            "Working Capital = Current Assets - Current Liabilities",
	}
}

// DebtToEquityResult holds leverage figures.
type DebtToEquityResult struct {
	DebtToEquity   float64 `json:"debt_to_equity"`
	TotalDebt      float64 `json:"total_debt"`
	TotalEquity    float64 `json:"total_equity"`
	Leverage       string  `json:"leverage"`
	Interpretation string  `json:"interpretation"`
	Formula        string  `json:"formula"`
}

// CalculateDebtToEquity computes the D/E ratio. Non-positive equity forces it
// to zero.
func CalculateDebtToEquity(totalDebt, totalEquity float64) DebtToEquityResult {
	ratio := 0.0
	if totalEquity > 0 {
		ratio = totalDebt / totalEquity
	}
	leverage, word := "Conservative", "low"
	switch {
	case ratio > 2:
		leverage, word = "High", "high"
	case ratio > 1:
		leverage, word = "Moderate", "moderate"
	}
	return DebtToEquityResult{
		DebtToEquity:   round4(ratio),
		TotalDebt:      round4(totalDebt),
		TotalEquity:    round4(totalEquity),
		Leverage:       leverage,
		Interpretation: fmt.Sprintf("D/E ratio of %.2f indicates %s leverage", ratio, word),
		Formula:        "D/E Ratio = Total Debt / Total Equity",
	}
}

// InventoryTurnoverResult holds inventory efficiency figures.
type InventoryTurnoverResult struct {
	InventoryTurnover        float64 `json:"inventory_turnover"`
	DaysInventoryOutstanding float64 `json:"days_inventory_outstanding"`
	COGS                     float64 `json:"cogs"`
	AverageInventory         float64 `json:"average_inventory"`
	Efficiency               string  `json:"efficiency"`
	Interpretation           string  `json:"interpretation"`
	Formula                  string  `json:"formula"`
}

// CalculateInventoryTurnover computes how often inventory turns over per
// year. Non-positive average inventory is a hard error.
func CalculateInventoryTurnover(cogs, averageInventory float64) (*InventoryTurnoverResult, *MetricError) {
	if averageInventory <= 0 {
		return nil, degenerate("Average inventory must be positive")
	}
	turnover := cogs / averageInventory
	days := 0.0
	if turnover > 0 {
		days = 365 / turnover
	}
	var efficiency string
	switch {
	case turnover > 10:
		efficiency = "Excellent"
	case turnover > 5:
		efficiency = "Good"
	default:
		efficiency = "Needs Improvement"
	}
	return &InventoryTurnoverResult{
		InventoryTurnover:        round4(turnover),
		DaysInventoryOutstanding: round2(days),
		COGS:                     round4(cogs),
		AverageInventory:         round4(averageInventory),
		Efficiency:               efficiency,
		Interpretation:           fmt.Sprintf("Inventory turns over %.2f times per year (%.0f days)", turnover, days),
		Formula:                  "Inventory Turnover = COGS / Average Inventory",
	}, nil
}

// RevenuePerHourResult holds service productivity figures.
type RevenuePerHourResult struct {
	RevenuePerHour float64 `json:"revenue_per_hour"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalHours     float64 `json:"total_hours"`
	DailyRevenue   float64 `json:"daily_revenue"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	Interpretation string  `json:"interpretation"`
	Formula        string  `json:"formula"`
}

// CalculateRevenuePerHour computes hourly revenue for service businesses.
// Non-positive hours force the rate to zero. Daily and monthly figures assume
// an 8-hour day and a 160-hour month.
func CalculateRevenuePerHour(totalRevenue, totalHours float64) RevenuePerHourResult {
	rph := 0.0
	if totalHours > 0 {
		rph = totalRevenue / totalHours
	}
	return RevenuePerHourResult{
		RevenuePerHour: round4(rph),
		TotalRevenue:   round4(totalRevenue),
		TotalHours:     round2(totalHours),
		DailyRevenue:   round2(rph * 8),
		MonthlyRevenue: round2(rph * 160),
		Interpretation: fmt.Sprintf("Generating %.2f per hour", rph),
		Formula:        "Revenue per Hour = Total Revenue / Total Hours",
	}
}

// SalesGrowthResult holds period-over-period growth figures.
type SalesGrowthResult struct {
	SalesGrowth           float64 `json:"sales_growth"`
	SalesGrowthPercentage float64 `json:"sales_growth_percentage"`
	CurrentSales          float64 `json:"current_sales"`
	PreviousSales         float64 `json:"previous_sales"`
	Trend                 string  `json:"trend"`
	Interpretation        string  `json:"interpretation"`
	Formula               string  `json:"formula"`
}

// CalculateSalesGrowth computes the growth rate between two periods. A
// non-positive previous value forces the rate to zero.
func CalculateSalesGrowth(currentSales, previousSales float64) SalesGrowthResult {
	growth := 0.0
	if previousSales > 0 {
		growth = (currentSales - previousSales) / previousSales
	}
	trend, verb := "Declining", "declined"
	if growth > 0 {
		trend, verb = "Growing", "grew"
	}
	abs := growth
	if abs < 0 {
		abs = -abs
	}
	return SalesGrowthResult{
		SalesGrowth:           round4(growth),
		SalesGrowthPercentage: round2(growth * 100),
		CurrentSales:          round4(currentSales),
		PreviousSales:         round4(previousSales),
		Trend:                 trend,
		Interpretation:        fmt.Sprintf("Sales %s by %.2f%%", verb, abs*100),
		Formula:               "Sales Growth = (Current - Previous) / Previous",
	}
}

// OperatingCashFlowRatioResult holds the OCF coverage ratio.
type OperatingCashFlowRatioResult struct {
	OperatingCashflowRatio float64 `json:"operating_cashflow_ratio"`
	OperatingCashflow      float64 `json:"operating_cashflow"`
	CurrentLiabilities     float64 `json:"current_liabilities"`
	Interpretation         string  `json:"interpretation"`
	Formula                string  `json:"formula"`
	Benchmark              string  `json:"benchmark"`
}

// CalculateOperatingCashFlowRatio measures operating cash coverage of
// current liabilities. Zero liabilities is a hard error.
func CalculateOperatingCashFlowRatio(operatingCashflow, currentLiabilities float64) (*OperatingCashFlowRatioResult, *MetricError) {
	if currentLiabilities == 0 {
		return nil, degenerate("Current liabilities cannot be zero")
	}
	ratio := operatingCashflow / currentLiabilities

	var interp string
	switch {
	case ratio > 1:
		interp = "Strong - can cover current liabilities with operating cash flow"
	case ratio > 0.5:
		interp = "Adequate - reasonable cash flow coverage"
	default:
		interp = "Weak - may struggle to meet current obligations"
	}
	return &OperatingCashFlowRatioResult{
		OperatingCashflowRatio: round4(ratio),
		OperatingCashflow:      round2(operatingCashflow),
		CurrentLiabilities:     round2(currentLiabilities),
		Interpretation:         interp,
		Formula:                "OCF Ratio = Operating Cash Flow / Current Liabilities",
		Benchmark:              "Ratio > 1 is considered healthy",
	}, nil
}

// AssetTurnoverResult holds asset efficiency figures.
type AssetTurnoverResult struct {
	AssetTurnover  float64 `json:"asset_turnover"`
	Revenue        float64 `json:"revenue"`
	TotalAssets    float64 `json:"total_assets"`
	Interpretation string  `json:"interpretation"`
	Formula        string  `json:"formula"`
	Benchmark      string  `json:"benchmark"`
}

// CalculateAssetTurnover measures revenue generated per unit of assets. Zero
// total assets is a hard error.
func CalculateAssetTurnover(revenue, totalAssets float64) (*AssetTurnoverResult, *MetricError) {
	if totalAssets == 0 {
		return nil, degenerate("Total assets cannot be zero")
	}
	ratio := revenue / totalAssets

	var interp string
	switch {
	case ratio > 2:
		interp = "Excellent - highly efficient asset utilization"
	case ratio > 1:
		interp = "Good - efficient use of assets"
	case ratio > 0.5:
		interp = "Moderate - average asset efficiency"
	default:
		interp = "Low - underutilizing assets"
	}
	return &AssetTurnoverResult{
		AssetTurnover:  round4(ratio),
		Revenue:        round2(revenue),
		TotalAssets:    round2(totalAssets),
		Interpretation: interp,
		Formula:        "Asset Turnover = Revenue / Total Assets",
		Benchmark:      "Higher ratio indicates better asset efficiency",
	}, nil
}
