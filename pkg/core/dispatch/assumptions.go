// Package dispatch decides which metric library functions apply to an
// extracted aggregate set and invokes them with default assumptions where
// the dataset supplies none.
package dispatch

// Assumptions carries the rate defaults injected into metrics the dataset
// cannot parameterize itself. Tests override individual fields without
// touching the formulas.
type Assumptions struct {
	DiscountRate float64 // NPV discounting
	IRRGuess     float64 // Newton seed for the IRR solve
	CostOfEquity float64 // WACC
	CostOfDebt   float64 // WACC
	TaxRate      float64 // WACC debt shield
}

// DefaultAssumptions returns the reference defaults: 10% discount rate, 10%
// IRR seed, 12% cost of equity, 6% cost of debt, 30% tax rate.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		DiscountRate: 0.10,
		IRRGuess:     0.10,
		CostOfEquity: 0.12,
		CostOfDebt:   0.06,
		TaxRate:      0.30,
	}
}
