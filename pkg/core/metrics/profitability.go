package metrics

import (
	"fmt"
	"math"
)

// ProfitLossResult summarizes profitability of revenue against cost.
type ProfitLossResult struct {
	Profit           float64 `json:"profit"`
	Revenue          float64 `json:"revenue"`
	Cost             float64 `json:"cost"`
	ProfitLossRatio  float64 `json:"profit_loss_ratio"`
	ProfitPercentage float64 `json:"profit_percentage"`
	IsProfitable     bool    `json:"is_profitable"`
	Status           string  `json:"status"`
	Interpretation   string  `json:"interpretation"`
	Formula          string  `json:"formula"`
}

// CalculateProfitLoss computes the profit/loss ratio. A non-positive revenue
// forces the ratio to zero rather than erroring.
func CalculateProfitLoss(revenue, cost float64) ProfitLossResult {
	profit := revenue - cost
	ratio := 0.0
	if revenue > 0 {
		ratio = profit / revenue
	}

	status := "Loss"
	word := "Loss"
	if profit > 0 {
		status = "Profitable"
		word = "Profit"
	}
	return ProfitLossResult{
		Profit:           round4(profit),
		Revenue:          round4(revenue),
		Cost:             round4(cost),
		ProfitLossRatio:  round4(ratio),
		ProfitPercentage: round2(ratio * 100),
		IsProfitable:     profit > 0,
		Status:           status,
		Interpretation:   fmt.Sprintf("%s of %.2f (%.2f%%)", word, math.Abs(profit), math.Abs(ratio)*100),
		Formula:          "Profit/Loss Ratio = (Revenue - Cost) / Revenue",
	}
}

// ROIResult holds return-on-investment figures.
type ROIResult struct {
	ROI            float64 `json:"roi"`
	ROIPercentage  float64 `json:"roi_percentage"`
	NetProfit      float64 `json:"net_profit"`
	Investment     float64 `json:"investment"`
	Interpretation string  `json:"interpretation"`
	Formula        string  `json:"formula"`
}

// CalculateROI computes return on investment. A non-positive investment
// forces the ratio to zero.
func CalculateROI(totalRevenue, totalCost, investment float64) ROIResult {
	netProfit := totalRevenue - totalCost
	roi := 0.0
	if investment > 0 {
		roi = netProfit / investment
	}
	return ROIResult{
		ROI:            round4(roi),
		ROIPercentage:  round2(roi * 100),
		NetProfit:      round4(netProfit),
		Investment:     round4(investment),
		Interpretation: fmt.Sprintf("ROI of %.2f%% on investment of %.2f", roi*100, investment),
		Formula:        "ROI = (Revenue - Cost) / Investment",
	}
}

// BreakEvenResult holds break-even analysis figures.
type BreakEvenResult struct {
	BreakEvenUnits          float64 `json:"break_even_units"`
	BreakEvenRevenue        float64 `json:"break_even_revenue"`
	ContributionMargin      float64 `json:"contribution_margin"`
	ContributionMarginRatio float64 `json:"contribution_margin_ratio"`
	Interpretation          string  `json:"interpretation"`
	Formula                 string  `json:"formula"`
}

// CalculateBreakEven computes the unit volume at which revenue covers fixed
// costs. A non-positive contribution margin forces units to zero.
func CalculateBreakEven(fixedCosts, pricePerUnit, variableCostPerUnit float64) BreakEvenResult {
	margin := pricePerUnit - variableCostPerUnit
	units := 0.0
	if margin > 0 {
		units = fixedCosts / margin
	}
	marginRatio := 0.0
	if pricePerUnit > 0 {
		marginRatio = margin / pricePerUnit
	}
	return BreakEvenResult{
		BreakEvenUnits:          round2(units),
		BreakEvenRevenue:        round2(units * pricePerUnit),
		ContributionMargin:      round4(margin),
		ContributionMarginRatio: round4(marginRatio),
		Interpretation:          fmt.Sprintf("Need to sell %.0f units to break even", units),
		Formula:                 "Break-Even = Fixed Costs / (Price - Variable Cost)",
	}
}

// GrossMarginResult holds gross margin figures.
type GrossMarginResult struct {
	GrossProfit           float64 `json:"gross_profit"`
	GrossMargin           float64 `json:"gross_margin"`
	GrossMarginPercentage float64 `json:"gross_margin_percentage"`
	Interpretation        string  `json:"interpretation"`
	Formula               string  `json:"formula"`
}

// CalculateGrossMargin computes gross margin; zero revenue forces it to zero.
func CalculateGrossMargin(revenue, cogs float64) GrossMarginResult {
	grossProfit := revenue - cogs
	margin := 0.0
	if revenue > 0 {
		margin = grossProfit / revenue
	}
	health := "low"
	if margin > 0.3 {
		health = "healthy"
	}
	return GrossMarginResult{
		GrossProfit:           round4(grossProfit),
		GrossMargin:           round4(margin),
		GrossMarginPercentage: round2(margin * 100),
		Interpretation:        fmt.Sprintf("Gross margin of %.2f%% indicates %s profitability", margin*100, health),
		Formula:               "Gross Margin = (Revenue - COGS) / Revenue",
	}
}

// NetMarginResult holds net margin figures.
type NetMarginResult struct {
	NetProfit           float64 `json:"net_profit"`
	NetMargin           float64 `json:"net_margin"`
	NetMarginPercentage float64 `json:"net_margin_percentage"`
	Interpretation      string  `json:"interpretation"`
	Formula             string  `json:"formula"`
}

// CalculateNetMargin computes net profit margin; zero revenue forces it to
// zero.
func CalculateNetMargin(revenue, totalCosts float64) NetMarginResult {
	netProfit := revenue - totalCosts
	margin := 0.0
	if revenue > 0 {
		margin = netProfit / revenue
	}
	return NetMarginResult{
		NetProfit:           round4(netProfit),
		NetMargin:           round4(margin),
		NetMarginPercentage: round2(margin * 100),
		Interpretation:      fmt.Sprintf("Net margin of %.2f%% shows overall profitability", margin*100),
		Formula:             "Net Margin = (Revenue - Total Costs) / Revenue",
	}
}

// EBITDAResult holds EBITDA and its margin.
type EBITDAResult struct {
	EBITDA            float64 `json:"ebitda"`
	Revenue           float64 `json:"revenue"`
	OperatingExpenses float64 `json:"operating_expenses"`
	Depreciation      float64 `json:"depreciation"`
	Amortization      float64 `json:"amortization"`
	EBITDAMargin      float64 `json:"ebitda_margin"`
	Interpretation    string  `json:"interpretation"`
	Formula           string  `json:"formula"`
	Status            string  `json:"status"`
}

// CalculateEBITDA computes earnings before interest, taxes, depreciation and
// amortization. No divisor guard needed beyond the margin's zero-revenue case.
func CalculateEBITDA(revenue, operatingExpenses, depreciation, amortization float64) EBITDAResult {
	ebitda := revenue - operatingExpenses + depreciation + amortization
	marginPct := 0.0
	if revenue > 0 {
		marginPct = ebitda / revenue * 100
	}

	var interp string
	switch {
	case marginPct > 20:
		interp = "Strong operational profitability"
	case marginPct > 10:
		interp = "Healthy EBITDA margin"
	case marginPct > 0:
		interp = "Positive but low EBITDA margin"
	default:
		interp = "Negative EBITDA - operational losses"
	}

	status := "Negative"
	if ebitda > 0 {
		status = "Positive"
	}
	return EBITDAResult{
		EBITDA:            round2(ebitda),
		Revenue:           round2(revenue),
		OperatingExpenses: round2(operatingExpenses),
		Depreciation:      round2(depreciation),
		Amortization:      round2(amortization),
		EBITDAMargin:      round2(marginPct),
		Interpretation:    interp,
		Formula:           "EBITDA = Revenue - Operating Expenses + D&A",
		Status:            status,
	}
}

// CashFlowResult holds the simple net cash flow analysis.
type CashFlowResult struct {
	NetCashflow              float64 `json:"net_cashflow"`
	InitialCash              float64 `json:"initial_cash"`
	EndingCash               float64 `json:"ending_cash"`
	CashflowMargin           float64 `json:"cashflow_margin"`
	CashflowMarginPercentage float64 `json:"cashflow_margin_percentage"`
	Status                   string  `json:"status"`
	Interpretation           string  `json:"interpretation"`
	Formula                  string  `json:"formula"`
}

// CalculateCashFlow computes net cash flow and its margin over revenue; zero
// revenue forces the margin to zero.
func CalculateCashFlow(revenue, expenses, initialCash float64) CashFlowResult {
	net := revenue - expenses
	margin := 0.0
	if revenue > 0 {
		margin = net / revenue
	}
	status := "Negative"
	if net > 0 {
		status = "Positive"
	}
	return CashFlowResult{
		NetCashflow:              round4(net),
		InitialCash:              round4(initialCash),
		EndingCash:               round4(initialCash + net),
		CashflowMargin:           round4(margin),
		CashflowMarginPercentage: round2(margin * 100),
		Status:                   status,
		Interpretation:           fmt.Sprintf("%s cash flow of %.2f", status, math.Abs(net)),
		Formula:                  "Net Cash Flow = Revenue - Expenses",
	}
}
