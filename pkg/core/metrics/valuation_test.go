package metrics_test

import (
	"math"
	"testing"

	"finsight/pkg/core/metrics"
)

func TestCalculateNPV(t *testing.T) {
	// Cashflows: [-1000, 500, 500, 500] at 10%
	// PV0 = -1000
	// PV1 = 500 / 1.1    = 454.5455
	// PV2 = 500 / 1.21   = 413.2231
	// PV3 = 500 / 1.331  = 375.6574
	// NPV ~ 243.4260
	cashflows := []float64{-1000, 500, 500, 500}
	res, err := metrics.CalculateNPV(cashflows, 0.10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !almostEqual(res.NPV, 243.4260, 0.001) {
		t.Errorf("Expected NPV ~243.426, got %.4f", res.NPV)
	}
	if res.Periods != 4 {
		t.Errorf("Expected 4 periods, got %d", res.Periods)
	}
	if res.TotalCashflow != 500 {
		t.Errorf("Expected total cashflow 500, got %.2f", res.TotalCashflow)
	}
	if res.Decision != "Accept Project" {
		t.Errorf("Expected Accept Project, got %s", res.Decision)
	}

	// Present values must sum back to the NPV (up to rounding).
	sum := 0.0
	for _, pv := range res.PresentValues {
		sum += pv
	}
	if !almostEqual(sum, res.NPV, 0.01) {
		t.Errorf("Present values sum %.4f does not match NPV %.4f", sum, res.NPV)
	}
}

func TestCalculateNPV_Negative(t *testing.T) {
	// All-outflow series: NPV < 0 -> Reject.
	res, err := metrics.CalculateNPV([]float64{-1000, 100, 100}, 0.10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.NPV >= 0 {
		t.Errorf("Expected negative NPV, got %.4f", res.NPV)
	}
	if res.Decision != "Reject Project" {
		t.Errorf("Expected Reject Project, got %s", res.Decision)
	}
}

func TestCalculateNPV_Empty(t *testing.T) {
	_, err := metrics.CalculateNPV(nil, 0.10)
	if err == nil {
		t.Fatal("Expected error for empty cash flows")
	}
	if err.Kind != metrics.ErrDegenerateInput {
		t.Errorf("Expected degenerate_input, got %s", err.Kind)
	}
}

func TestCalculateIRR(t *testing.T) {
	// Cashflows: [-100000, 30000, 40000, 50000, 40000]
	// Total inflow 160000 on 100000 out; IRR sits between 10% and 25%.
	cashflows := []float64{-100000, 30000, 40000, 50000, 40000}
	res, err := metrics.CalculateIRR(cashflows, 0.10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if res.IRR <= 0.10 || res.IRR >= 0.25 {
		t.Errorf("Expected IRR in (0.10, 0.25), got %.4f", res.IRR)
	}
	if res.Recommendation != "Invest" {
		t.Errorf("Expected Invest recommendation, got %s", res.Recommendation)
	}

	// The defining property: NPV at the solved rate is ~0.
	npv := 0.0
	for i, cf := range cashflows {
		npv += cf / math.Pow(1+res.IRR, float64(i))
	}
	if math.Abs(npv) > 50 {
		t.Errorf("NPV at IRR should be near zero, got %.2f", npv)
	}
}

func TestCalculateIRR_TooFewCashflows(t *testing.T) {
	_, err := metrics.CalculateIRR([]float64{-1000}, 0.10)
	if err == nil {
		t.Fatal("Expected error for a single cash flow")
	}
	if err.Kind != metrics.ErrDegenerateInput {
		t.Errorf("Expected degenerate_input, got %s", err.Kind)
	}
}

func TestCalculateIRR_NoSolution(t *testing.T) {
	// All positive cash flows: NPV is positive at every rate, no root.
	_, err := metrics.CalculateIRR([]float64{1000, 1000, 1000}, 0.10)
	if err == nil {
		t.Fatal("Expected solver failure for all-positive series")
	}
	if err.Kind != metrics.ErrSolverFailure {
		t.Errorf("Expected solver_failure, got %s", err.Kind)
	}
}

func TestCalculatePaybackPeriod(t *testing.T) {
	// 100000 investment, 40000/year -> 2.5 years -> Attractive
	res := metrics.CalculatePaybackPeriod(100000, 40000)

	if res.PaybackPeriodYears != 2.5 {
		t.Errorf("Expected 2.5 years, got %.2f", res.PaybackPeriodYears)
	}
	if res.PaybackPeriodMonths != 30 {
		t.Errorf("Expected 30 months, got %.1f", res.PaybackPeriodMonths)
	}
	if res.Attractiveness != "Attractive" {
		t.Errorf("Expected Attractive, got %s", res.Attractiveness)
	}
}

func TestCalculatePaybackPeriod_ZeroCashflow(t *testing.T) {
	// Non-positive annual cash flow forces the period to 0 (Attractive band).
	res := metrics.CalculatePaybackPeriod(100000, 0)

	if res.PaybackPeriodYears != 0 {
		t.Errorf("Expected forced-zero payback, got %.2f", res.PaybackPeriodYears)
	}
}

func TestCalculateProfitabilityIndex(t *testing.T) {
	// NPV 20000, Investment 100000 -> PI = 120000 / 100000 = 1.2 -> Accept
	res := metrics.CalculateProfitabilityIndex(20000, 100000)

	if res.ProfitabilityIndex != 1.2 {
		t.Errorf("Expected PI 1.2, got %.4f", res.ProfitabilityIndex)
	}
	if res.Decision != "Accept" {
		t.Errorf("Expected Accept, got %s", res.Decision)
	}
}

func TestCalculateWACC(t *testing.T) {
	// Equity 500000, Debt 300000, Re 12%, Rd 6%, Tax 30%
	// E/V = 0.625, D/V = 0.375
	// WACC = 0.625*0.12 + 0.375*0.06*0.7 = 0.075 + 0.01575 = 0.09075
	res, err := metrics.CalculateWACC(500000, 300000, 0.12, 0.06, 0.30)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !almostEqual(res.WACC, 0.0908, 0.0001) {
		t.Errorf("Expected WACC ~0.0908, got %.4f", res.WACC)
	}
	if !almostEqual(res.WACCPercentage, 9.08, 0.01) {
		t.Errorf("Expected ~9.08%%, got %.2f", res.WACCPercentage)
	}
	if res.EquityWeight != 0.625 {
		t.Errorf("Expected equity weight 0.625, got %.4f", res.EquityWeight)
	}
	if !almostEqual(res.AfterTaxCostOfDebt, 0.042, 0.0001) {
		t.Errorf("Expected after-tax cost of debt 0.042, got %.4f", res.AfterTaxCostOfDebt)
	}
	if res.Interpretation != "Moderate cost of capital - typical range" {
		t.Errorf("Unexpected interpretation: %s", res.Interpretation)
	}
}

func TestCalculateWACC_ZeroCapital(t *testing.T) {
	_, err := metrics.CalculateWACC(0, 0, 0.12, 0.06, 0.30)
	if err == nil {
		t.Fatal("Expected error for zero total capital")
	}
	if err.Kind != metrics.ErrDegenerateInput {
		t.Errorf("Expected degenerate_input, got %s", err.Kind)
	}
}
