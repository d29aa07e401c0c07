package metrics

import (
	"fmt"
	"math"
)

// Solver bounds for the IRR root-find. The iteration cap guarantees
// termination on pathological cash-flow series.
const (
	irrMaxIterations = 100
	irrTolerance     = 1e-7
	irrBisectLow     = -0.9999
	irrBisectHigh    = 10.0
)

// NPVResult holds the discounted cash-flow valuation of a series.
type NPVResult struct {
	NPV            float64   `json:"npv"`
	DiscountRate   float64   `json:"discount_rate"`
	Periods        int       `json:"periods"`
	TotalCashflow  float64   `json:"total_cashflow"`
	PresentValues  []float64 `json:"present_values"`
	Decision       string    `json:"decision"`
	Interpretation string    `json:"interpretation"`
	Formula        string    `json:"formula"`
}

// CalculateNPV discounts the series at the given rate, period 0 undiscounted.
// An empty series is a hard error.
func CalculateNPV(cashflows []float64, discountRate float64) (*NPVResult, *MetricError) {
	if len(cashflows) == 0 {
		return nil, degenerate("No cash flows provided")
	}

	npv := 0.0
	total := 0.0
	presentValues := make([]float64, len(cashflows))
	for t, cf := range cashflows {
		pv := cf / math.Pow(1+discountRate, float64(t))
		npv += pv
		total += cf
		presentValues[t] = round4(pv)
	}

	decision := "Reject Project"
	verb := "destroys"
	if npv > 0 {
		decision = "Accept Project"
		verb = "adds"
	}
	return &NPVResult{
		NPV:            round4(npv),
		DiscountRate:   round4(discountRate),
		Periods:        len(cashflows),
		TotalCashflow:  round4(total),
		PresentValues:  presentValues,
		Decision:       decision,
		Interpretation: fmt.Sprintf("NPV of %.4f indicates project %s value", npv, verb),
		Formula:        "NPV = Σ [CFt / (1 + r)^t]",
	}, nil
}

// IRRResult holds the internal rate of return for a series.
type IRRResult struct {
	IRR            float64 `json:"irr"`
	IRRPercentage  float64 `json:"irr_percentage"`
	Periods        int     `json:"periods"`
	TotalCashflow  float64 `json:"total_cashflow"`
	Interpretation string  `json:"interpretation"`
	Recommendation string  `json:"recommendation"`
	Formula        string  `json:"formula"`
}

// CalculateIRR finds the rate at which the series' NPV is zero, starting a
// Newton iteration from the given seed and falling back to bisection when the
// iteration diverges. Fewer than two cash flows is a hard error; failure of
// both solvers is a SolverFailure, never a panic.
func CalculateIRR(cashflows []float64, guess float64) (*IRRResult, *MetricError) {
	if len(cashflows) < 2 {
		return nil, degenerate("At least 2 cash flows required")
	}

	irr, ok := solveIRRNewton(cashflows, guess)
	if !ok {
		irr, ok = solveIRRBisection(cashflows)
	}
	if !ok {
		return nil, &MetricError{Kind: ErrSolverFailure, Reason: "Could not calculate IRR - cash flows may be invalid"}
	}

	total := 0.0
	for _, cf := range cashflows {
		total += cf
	}

	quality := "poor"
	recommendation := "Reconsider"
	if irr > 0.1 {
		quality = "good"
		recommendation = "Invest"
	}
	return &IRRResult{
		IRR:            round4(irr),
		IRRPercentage:  round2(irr * 100),
		Periods:        len(cashflows),
		TotalCashflow:  round4(total),
		Interpretation: fmt.Sprintf("IRR of %.2f%% indicates %s return", irr*100, quality),
		Recommendation: recommendation,
		Formula:        "IRR: Rate where NPV = 0",
	}, nil
}

func npvAt(cashflows []float64, rate float64) float64 {
	npv := 0.0
	for t, cf := range cashflows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

func npvDerivativeAt(cashflows []float64, rate float64) float64 {
	d := 0.0
	for t, cf := range cashflows {
		if t == 0 {
			continue
		}
		d -= float64(t) * cf / math.Pow(1+rate, float64(t+1))
	}
	return d
}

func solveIRRNewton(cashflows []float64, guess float64) (float64, bool) {
	rate := guess
	for i := 0; i < irrMaxIterations; i++ {
		if rate <= -1 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return 0, false
		}
		f := npvAt(cashflows, rate)
		if math.Abs(f) < irrTolerance {
			return rate, true
		}
		d := npvDerivativeAt(cashflows, rate)
		if d == 0 || math.IsNaN(d) {
			return 0, false
		}
		rate -= f / d
	}
	return 0, false
}

func solveIRRBisection(cashflows []float64) (float64, bool) {
	lo, hi := irrBisectLow, irrBisectHigh
	fLo, fHi := npvAt(cashflows, lo), npvAt(cashflows, hi)
	if fLo*fHi > 0 {
		return 0, false
	}
	for i := 0; i < irrMaxIterations; i++ {
		mid := (lo + hi) / 2
		fMid := npvAt(cashflows, mid)
		if math.Abs(fMid) < irrTolerance {
			return mid, true
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return (lo + hi) / 2, true
}

// PaybackResult holds the payback period of an investment.
type PaybackResult struct {
	PaybackPeriodYears  float64 `json:"payback_period_years"`
	PaybackPeriodMonths float64 `json:"payback_period_months"`
	InitialInvestment   float64 `json:"initial_investment"`
	AnnualCashflow      float64 `json:"annual_cashflow"`
	Attractiveness      string  `json:"attractiveness"`
	Interpretation      string  `json:"interpretation"`
	Formula             string  `json:"formula"`
}

// CalculatePaybackPeriod computes how long the investment takes to recoup.
// A non-positive annual cash flow forces the period to zero.
func CalculatePaybackPeriod(initialInvestment, annualCashflow float64) PaybackResult {
	payback := 0.0
	if annualCashflow > 0 {
		payback = initialInvestment / annualCashflow
	}
	var attractiveness string
	switch {
	case payback < 3:
		attractiveness = "Attractive"
	case payback < 5:
		attractiveness = "Acceptable"
	default:
		attractiveness = "Risky"
	}
	return PaybackResult{
		PaybackPeriodYears:  round2(payback),
		PaybackPeriodMonths: math.Round(payback*12*10) / 10,
		InitialInvestment:   round4(initialInvestment),
		AnnualCashflow:      round4(annualCashflow),
		Attractiveness:      attractiveness,
		Interpretation:      fmt.Sprintf("Investment pays back in %.2f years", payback),
		Formula:             "Payback Period = Initial Investment / Annual Cash Flow",
	}
}

// ProfitabilityIndexResult holds the PI decision metric.
type ProfitabilityIndexResult struct {
	ProfitabilityIndex float64 `json:"profitability_index"`
	NPV                float64 `json:"npv"`
	InitialInvestment  float64 `json:"initial_investment"`
	Decision           string  `json:"decision"`
	Interpretation     string  `json:"interpretation"`
	Formula            string  `json:"formula"`
}

// CalculateProfitabilityIndex computes present value per unit of investment.
// A non-positive investment forces the index to zero.
func CalculateProfitabilityIndex(npv, initialInvestment float64) ProfitabilityIndexResult {
	pi := 0.0
	if initialInvestment > 0 {
		pi = (npv + initialInvestment) / initialInvestment
	}
	decision := "Reject"
	verb := "destroys"
	if pi > 1 {
		decision = "Accept"
		verb = "creates"
	}
	return ProfitabilityIndexResult{
		ProfitabilityIndex: round4(pi),
		NPV:                round4(npv),
		InitialInvestment:  round4(initialInvestment),
		Decision:           decision,
		Interpretation:     fmt.Sprintf("PI of %.2f indicates project %s value", pi, verb),
		Formula:            "PI = (NPV + Initial Investment) / Initial Investment",
	}
}

// WACCResult holds the weighted average cost of capital and its components.
type WACCResult struct {
	WACC               float64 `json:"wacc"`
	WACCPercentage     float64 `json:"wacc_percentage"`
	Equity             float64 `json:"equity"`
	Debt               float64 `json:"debt"`
	TotalCapital       float64 `json:"total_capital"`
	EquityWeight       float64 `json:"equity_weight"`
	DebtWeight         float64 `json:"debt_weight"`
	CostOfEquity       float64 `json:"cost_of_equity"`
	CostOfDebt         float64 `json:"cost_of_debt"`
	TaxRate            float64 `json:"tax_rate"`
	AfterTaxCostOfDebt float64 `json:"after_tax_cost_of_debt"`
	Interpretation     string  `json:"interpretation"`
	Formula            string  `json:"formula"`
	Recommendation     string  `json:"recommendation"`
}

// CalculateWACC blends the cost of equity and after-tax cost of debt by
// capital weights. Zero total capital is a hard error.
func CalculateWACC(equity, debt, costOfEquity, costOfDebt, taxRate float64) (*WACCResult, *MetricError) {
	totalCapital := equity + debt
	if totalCapital == 0 {
		return nil, degenerate("Total capital (Equity + Debt) is zero")
	}

	equityWeight := equity / totalCapital
	debtWeight := debt / totalCapital
	wacc := (equityWeight * costOfEquity) + (debtWeight * costOfDebt * (1 - taxRate))

	var interp string
	switch {
	case wacc < 0.08:
		interp = "Low cost of capital - favorable for investments"
	case wacc < 0.12:
		interp = "Moderate cost of capital - typical range"
	default:
		interp = "High cost of capital - projects need higher returns"
	}

	return &WACCResult{
		WACC:               round4(wacc),
		WACCPercentage:     round2(wacc * 100),
		Equity:             round2(equity),
		Debt:               round2(debt),
		TotalCapital:       round2(totalCapital),
		EquityWeight:       round4(equityWeight),
		DebtWeight:         round4(debtWeight),
		CostOfEquity:       round4(costOfEquity),
		CostOfDebt:         round4(costOfDebt),
		TaxRate:            round4(taxRate),
		AfterTaxCostOfDebt: round4(costOfDebt * (1 - taxRate)),
		Interpretation:     interp,
		Formula:            "WACC = (E/V × Re) + (D/V × Rd × (1 - T))",
		Recommendation:     "Use WACC as discount rate for NPV calculations",
	}, nil
}
