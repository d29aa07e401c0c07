// Package extract turns role-mapped columns into typed financial aggregates.
// The transformation is pure: it never mutates the table and never fails as
// a whole, isolating coercion problems to the field they occur in.
package extract

import (
	"fmt"

	"finsight/pkg/core/schema"
	"finsight/pkg/core/table"
)

// SeriesAggregate summarizes a numeric column: sum, mean, and the ordered
// series of cells that coerced to numbers. A column with no coercible cells
// yields a zero-valued aggregate with Note set; it is not an error.
type SeriesAggregate struct {
	Total  float64   `json:"total"`
	Mean   float64   `json:"mean"`
	Series []float64 `json:"series"`
	Note   string    `json:"note,omitempty"`
}

// ProfitSummary is derived when both revenue and cost aggregates exist.
type ProfitSummary struct {
	Total     float64 `json:"total"`
	MarginPct float64 `json:"margin"`
}

// FinancialData is the aggregate set handed to metric selection. Nil pointers
// mean the role was not detected in the dataset.
type FinancialData struct {
	Revenue  *SeriesAggregate `json:"revenue,omitempty"`
	Cost     *SeriesAggregate `json:"cost,omitempty"`
	Quantity *SeriesAggregate `json:"quantity,omitempty"`
	Profit   *ProfitSummary   `json:"profit,omitempty"`

	Investment  *float64 `json:"investment,omitempty"`
	Assets      *float64 `json:"assets,omitempty"`
	Liabilities *float64 `json:"liabilities,omitempty"`
	Equity      *float64 `json:"equity,omitempty"`

	// Cashflows comes from an explicit cash-flow column when one was
	// detected, otherwise it is synthesized as pointwise revenue minus cost
	// over the common prefix of the two series.
	Cashflows    []float64 `json:"cashflows,omitempty"`
	HasCashflows bool      `json:"-"`
}

// ExtractFinancialData builds the aggregate set for the detected roles.
func ExtractFinancialData(t *table.Table, roles schema.RoleMap) *FinancialData {
	data := &FinancialData{}

	data.Revenue = seriesAggregate(t, roles, schema.RoleRevenue)
	data.Cost = seriesAggregate(t, roles, schema.RoleCost)
	data.Quantity = seriesAggregate(t, roles, schema.RoleQuantity)

	if data.Revenue != nil && data.Cost != nil {
		margin := 0.0
		if data.Revenue.Total > 0 {
			margin = (data.Revenue.Total - data.Cost.Total) / data.Revenue.Total * 100
		}
		data.Profit = &ProfitSummary{
			Total:     data.Revenue.Total - data.Cost.Total,
			MarginPct: margin,
		}
	}

	data.Investment = scalarAggregate(t, roles, schema.RoleInvestment)
	data.Assets = scalarAggregate(t, roles, schema.RoleAssets)
	data.Liabilities = scalarAggregate(t, roles, schema.RoleLiabilities)
	data.Equity = scalarAggregate(t, roles, schema.RoleEquity)

	if colName, ok := roles[schema.RoleCashflow]; ok {
		if col, found := t.Column(colName); found {
			data.Cashflows = table.NumericSeries(col)
			data.HasCashflows = true
		}
	} else if data.Revenue != nil && data.Cost != nil && data.Revenue.Note == "" && data.Cost.Note == "" {
		// Synthesize over the common prefix; no padding, no extrapolation.
		n := len(data.Revenue.Series)
		if len(data.Cost.Series) < n {
			n = len(data.Cost.Series)
		}
		flows := make([]float64, n)
		for i := 0; i < n; i++ {
			flows[i] = data.Revenue.Series[i] - data.Cost.Series[i]
		}
		data.Cashflows = flows
		data.HasCashflows = true
	}

	return data
}

func seriesAggregate(t *table.Table, roles schema.RoleMap, role schema.Role) *SeriesAggregate {
	colName, ok := roles[role]
	if !ok {
		return nil
	}
	col, found := t.Column(colName)
	if !found {
		return nil
	}

	series := table.NumericSeries(col)
	if len(series) == 0 {
		return &SeriesAggregate{
			Series: []float64{},
			Note:   fmt.Sprintf("could not extract numeric values from column %q", colName),
		}
	}

	total := 0.0
	for _, v := range series {
		total += v
	}
	return &SeriesAggregate{
		Total:  total,
		Mean:   total / float64(len(series)),
		Series: series,
	}
}

func scalarAggregate(t *table.Table, roles schema.RoleMap, role schema.Role) *float64 {
	colName, ok := roles[role]
	if !ok {
		return nil
	}
	col, found := t.Column(colName)
	if !found {
		return nil
	}

	total := 0.0
	for _, v := range table.NumericSeries(col) {
		total += v
	}
	return &total
}
