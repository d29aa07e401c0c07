// Package kpi holds industry-specific indicators that sit outside the core
// dispatch set. Callers invoke these directly with operational figures the
// tabular pipeline cannot detect on its own (square footage, billable hours,
// portfolio correlations).
package kpi

import (
	"fmt"
	"math"

	"finsight/pkg/core/metrics"
)

// InventoryTurnoverResult is the retail variant with days-outstanding and a
// benchmark band, distinct from the core liquidity formula.
type InventoryTurnoverResult struct {
	InventoryTurnover        float64 `json:"inventory_turnover"`
	DaysInventoryOutstanding float64 `json:"days_inventory_outstanding"`
	COGS                     float64 `json:"cogs"`
	AvgInventory             float64 `json:"avg_inventory"`
	Status                   string  `json:"status"`
	Insight                  string  `json:"insight"`
	Benchmark                string  `json:"benchmark"`
}

// CalculateInventoryTurnover is the retail KPI flavor: COGS / average inventory,
// plus days of inventory outstanding.
func CalculateInventoryTurnover(cogs, avgInventory float64) (*InventoryTurnoverResult, *metrics.MetricError) {
	if avgInventory == 0 {
		return nil, &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "Average inventory cannot be zero"}
	}

	turnover := cogs / avgInventory
	days := 0.0
	if turnover > 0 {
		days = 365 / turnover
	}

	var status string
	switch {
	case turnover > 8:
		status = "Excellent - Fast moving inventory"
	case turnover > 4:
		status = "Good - Healthy turnover"
	case turnover > 2:
		status = "Average - Monitor closely"
	default:
		status = "Slow - Overstocking risk"
	}

	return &InventoryTurnoverResult{
		InventoryTurnover:        round2(turnover),
		DaysInventoryOutstanding: math.Round(days),
		COGS:                     round2(cogs),
		AvgInventory:             round2(avgInventory),
		Status:                   status,
		Insight:                  fmt.Sprintf("Inventory turns %.1f times per year (%.0f days). %s", turnover, days, status),
		Benchmark:                "Retail average: 4-8 times/year",
	}, nil
}

type SalesPerSqftResult struct {
	SalesPerSqft float64 `json:"sales_per_sqft"`
	Revenue      float64 `json:"revenue"`
	StoreSqft    float64 `json:"store_sqft"`
	Status       string  `json:"status"`
	Insight      string  `json:"insight"`
	Benchmark    string  `json:"benchmark"`
}

// CalculateSalesPerSqft measures retail space productivity.
func CalculateSalesPerSqft(revenue, storeSqft float64) (*SalesPerSqftResult, *metrics.MetricError) {
	if storeSqft == 0 {
		return nil, &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "Store square footage cannot be zero"}
	}

	perSqft := revenue / storeSqft

	var status string
	switch {
	case perSqft > 5000:
		status = "Excellent - High productivity"
	case perSqft > 3000:
		status = "Good - Above average"
	case perSqft > 1500:
		status = "Average - Room for improvement"
	default:
		status = "Low - Optimize space usage"
	}

	return &SalesPerSqftResult{
		SalesPerSqft: round2(perSqft),
		Revenue:      round2(revenue),
		StoreSqft:    round2(storeSqft),
		Status:       status,
		Insight:      fmt.Sprintf("%.0f per sq ft. %s", perSqft, status),
		Benchmark:    "Retail average: 2,000-4,000/sq ft",
	}, nil
}

type BasketValueResult struct {
	AverageBasketValue float64 `json:"average_basket_value"`
	Revenue            float64 `json:"revenue"`
	NumTransactions    int     `json:"num_transactions"`
	Insight            string  `json:"insight"`
	Recommendation     string  `json:"recommendation"`
}

// CalculateBasketValue is revenue per transaction.
func CalculateBasketValue(revenue float64, numTransactions int) (*BasketValueResult, *metrics.MetricError) {
	if numTransactions == 0 {
		return nil, &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "Number of transactions cannot be zero"}
	}

	avg := revenue / float64(numTransactions)

	return &BasketValueResult{
		AverageBasketValue: round2(avg),
		Revenue:            round2(revenue),
		NumTransactions:    numTransactions,
		Insight:            fmt.Sprintf("Average transaction value: %.2f", avg),
		Recommendation:     "Increase basket size through upselling and cross-selling",
	}, nil
}

type CACResult struct {
	CAC           float64 `json:"cac"`
	MarketingCost float64 `json:"marketing_cost"`
	NewCustomers  int     `json:"new_customers"`
	Status        string  `json:"status"`
	Insight       string  `json:"insight"`
	Benchmark     string  `json:"benchmark"`
}

// CalculateCAC is marketing spend per acquired customer.
func CalculateCAC(marketingCost float64, newCustomers int) (*CACResult, *metrics.MetricError) {
	if newCustomers == 0 {
		return nil, &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "Number of new customers cannot be zero"}
	}

	cac := marketingCost / float64(newCustomers)

	var status string
	switch {
	case cac < 500:
		status = "Excellent - Low acquisition cost"
	case cac < 2000:
		status = "Good - Reasonable CAC"
	case cac < 5000:
		status = "Moderate - Monitor efficiency"
	default:
		status = "High - Optimize marketing spend"
	}

	return &CACResult{
		CAC:           round2(cac),
		MarketingCost: round2(marketingCost),
		NewCustomers:  newCustomers,
		Status:        status,
		Insight:       fmt.Sprintf("Cost to acquire one customer: %.2f. %s", cac, status),
		Benchmark:     "Service industry average: 1,000-3,000",
	}, nil
}

type CLVResult struct {
	CLV                   float64 `json:"clv"`
	AvgRevenuePerCustomer float64 `json:"avg_revenue_per_customer"`
	AvgLifespanYears      float64 `json:"avg_lifespan_years"`
	ProfitMargin          float64 `json:"profit_margin"`
	Insight               string  `json:"insight"`
	Recommendation        string  `json:"recommendation"`
}

// CalculateCLV multiplies average revenue, lifespan, and margin.
func CalculateCLV(avgRevenuePerCustomer, avgLifespanYears, profitMargin float64) *CLVResult {
	clv := avgRevenuePerCustomer * avgLifespanYears * profitMargin

	return &CLVResult{
		CLV:                   round2(clv),
		AvgRevenuePerCustomer: round2(avgRevenuePerCustomer),
		AvgLifespanYears:      avgLifespanYears,
		ProfitMargin:          profitMargin,
		Insight:               fmt.Sprintf("Average customer lifetime value: %.2f", clv),
		Recommendation:        "Focus on retention to maximize CLV",
	}
}

type UtilizationRateResult struct {
	UtilizationRate float64 `json:"utilization_rate"`
	BillableHours   float64 `json:"billable_hours"`
	TotalHours      float64 `json:"total_hours"`
	Status          string  `json:"status"`
	Insight         string  `json:"insight"`
	Benchmark       string  `json:"benchmark"`
}

// CalculateUtilizationRate is the billable share of available hours.
func CalculateUtilizationRate(billableHours, totalHours float64) (*UtilizationRateResult, *metrics.MetricError) {
	if totalHours == 0 {
		return nil, &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "Total hours cannot be zero"}
	}

	utilization := (billableHours / totalHours) * 100

	var status string
	switch {
	case utilization > 85:
		status = "Excellent - High utilization"
	case utilization > 70:
		status = "Good - Healthy utilization"
	case utilization > 50:
		status = "Average - Room for improvement"
	default:
		status = "Low - Underutilized capacity"
	}

	return &UtilizationRateResult{
		UtilizationRate: round2(utilization),
		BillableHours:   round2(billableHours),
		TotalHours:      round2(totalHours),
		Status:          status,
		Insight:         fmt.Sprintf("%.1f%% of time is billable. %s", utilization, status),
		Benchmark:       "Service industry target: 75-85%",
	}, nil
}

type ProductionEfficiencyResult struct {
	ProductionEfficiency float64 `json:"production_efficiency"`
	ActualOutput         float64 `json:"actual_output"`
	TheoreticalCapacity  float64 `json:"theoretical_capacity"`
	CapacityGap          float64 `json:"capacity_gap"`
	Status               string  `json:"status"`
	Insight              string  `json:"insight"`
	Benchmark            string  `json:"benchmark"`
}

// CalculateProductionEfficiency is actual output over theoretical capacity.
func CalculateProductionEfficiency(actualOutput, theoreticalCapacity float64) (*ProductionEfficiencyResult, *metrics.MetricError) {
	if theoreticalCapacity == 0 {
		return nil, &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "Theoretical capacity cannot be zero"}
	}

	efficiency := (actualOutput / theoreticalCapacity) * 100

	var status string
	switch {
	case efficiency > 90:
		status = "Excellent - Near maximum capacity"
	case efficiency > 75:
		status = "Good - Efficient production"
	case efficiency > 60:
		status = "Average - Improvement needed"
	default:
		status = "Low - Significant underutilization"
	}

	return &ProductionEfficiencyResult{
		ProductionEfficiency: round2(efficiency),
		ActualOutput:         round2(actualOutput),
		TheoreticalCapacity:  round2(theoreticalCapacity),
		CapacityGap:          round2(theoreticalCapacity - actualOutput),
		Status:               status,
		Insight:              fmt.Sprintf("Operating at %.1f%% of capacity. %s", efficiency, status),
		Benchmark:            "Manufacturing target: 80-95%",
	}, nil
}

type CostPerUnitResult struct {
	CostPerUnit    float64 `json:"cost_per_unit"`
	TotalCost      float64 `json:"total_cost"`
	UnitsProduced  float64 `json:"units_produced"`
	Insight        string  `json:"insight"`
	Recommendation string  `json:"recommendation"`
}

// CalculateCostPerUnit divides total cost over produced units.
func CalculateCostPerUnit(totalCost, unitsProduced float64) (*CostPerUnitResult, *metrics.MetricError) {
	if unitsProduced == 0 {
		return nil, &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "Units produced cannot be zero"}
	}

	perUnit := totalCost / unitsProduced

	return &CostPerUnitResult{
		CostPerUnit:    round2(perUnit),
		TotalCost:      round2(totalCost),
		UnitsProduced:  round2(unitsProduced),
		Insight:        fmt.Sprintf("Cost to produce one unit: %.2f", perUnit),
		Recommendation: "Monitor for economies of scale opportunities",
	}, nil
}

type DefectRateResult struct {
	DefectRate     float64 `json:"defect_rate"`
	DefectiveUnits float64 `json:"defective_units"`
	TotalUnits     float64 `json:"total_units"`
	Status         string  `json:"status"`
	Insight        string  `json:"insight"`
	Benchmark      string  `json:"benchmark"`
}

// CalculateDefectRate is the defective share of total units.
func CalculateDefectRate(defectiveUnits, totalUnits float64) (*DefectRateResult, *metrics.MetricError) {
	if totalUnits == 0 {
		return nil, &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "Total units cannot be zero"}
	}

	rate := (defectiveUnits / totalUnits) * 100

	var status string
	switch {
	case rate < 1:
		status = "Excellent - High quality"
	case rate < 3:
		status = "Good - Acceptable quality"
	case rate < 5:
		status = "Average - Quality improvement needed"
	default:
		status = "High - Critical quality issues"
	}

	return &DefectRateResult{
		DefectRate:     round2(rate),
		DefectiveUnits: round2(defectiveUnits),
		TotalUnits:     round2(totalUnits),
		Status:         status,
		Insight:        fmt.Sprintf("%.2f%% defect rate. %s", rate, status),
		Benchmark:      "Manufacturing target: <2%",
	}, nil
}

type SharpeRatioResult struct {
	SharpeRatio     float64 `json:"sharpe_ratio"`
	PortfolioReturn float64 `json:"portfolio_return"`
	RiskFreeRate    float64 `json:"risk_free_rate"`
	StdDeviation    float64 `json:"std_deviation"`
	ExcessReturn    float64 `json:"excess_return"`
	Status          string  `json:"status"`
	Insight         string  `json:"insight"`
	Benchmark       string  `json:"benchmark"`
}

// CalculateSharpeRatio is excess return per unit of volatility.
func CalculateSharpeRatio(portfolioReturn, riskFreeRate, stdDeviation float64) (*SharpeRatioResult, *metrics.MetricError) {
	if stdDeviation == 0 {
		return nil, &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "Standard deviation cannot be zero"}
	}

	sharpe := (portfolioReturn - riskFreeRate) / stdDeviation

	var status string
	switch {
	case sharpe > 2:
		status = "Excellent - High risk-adjusted return"
	case sharpe > 1:
		status = "Good - Adequate risk-adjusted return"
	case sharpe > 0:
		status = "Moderate - Below optimal"
	default:
		status = "Poor - Not compensating for risk"
	}

	return &SharpeRatioResult{
		SharpeRatio:     round4(sharpe),
		PortfolioReturn: round4(portfolioReturn),
		RiskFreeRate:    round4(riskFreeRate),
		StdDeviation:    round4(stdDeviation),
		ExcessReturn:    round4(portfolioReturn - riskFreeRate),
		Status:          status,
		Insight:         fmt.Sprintf("Sharpe ratio: %.2f. %s", sharpe, status),
		Benchmark:       "Good Sharpe ratio: >1.0",
	}, nil
}

type DiversificationResult struct {
	DiversificationIndex float64 `json:"diversification_index"`
	NumAssets            int     `json:"num_assets"`
	AvgCorrelation       float64 `json:"avg_correlation"`
	Status               string  `json:"status"`
	Insight              string  `json:"insight"`
	Recommendation       string  `json:"recommendation"`
}

// CalculatePortfolioDiversification scores a portfolio 0-100: up to 50 points
// for asset count, up to 50 for low average correlation.
func CalculatePortfolioDiversification(numAssets int, correlationAvg float64) *DiversificationResult {
	assetScore := math.Min(float64(numAssets)*5, 50)
	correlationScore := (1 - math.Abs(correlationAvg)) * 50
	index := assetScore + correlationScore

	var status string
	switch {
	case index > 80:
		status = "Excellent - Well diversified"
	case index > 60:
		status = "Good - Adequate diversification"
	case index > 40:
		status = "Moderate - More diversification needed"
	default:
		status = "Low - Concentration risk"
	}

	return &DiversificationResult{
		DiversificationIndex: round2(index),
		NumAssets:            numAssets,
		AvgCorrelation:       round4(correlationAvg),
		Status:               status,
		Insight:              fmt.Sprintf("Diversification score: %.0f/100. %s", index, status),
		Recommendation:       "Add uncorrelated assets to improve diversification",
	}
}

func round4(v float64) float64 { return math.Round(v*1e4) / 1e4 }
func round2(v float64) float64 { return math.Round(v*1e2) / 1e2 }
