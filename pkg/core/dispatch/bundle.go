package dispatch

import (
	"encoding/json"

	"finsight/pkg/core/extract"
	"finsight/pkg/core/metrics"
	"finsight/pkg/core/schema"
)

// Entry is one metric's outcome: either a populated result record or an
// error record, never both. It marshals flat, so an error entry serializes
// as {"kind": ..., "error": ...} and a success entry as the record itself.
type Entry struct {
	Data  interface{}
	Error *metrics.MetricError
}

// MarshalJSON flattens the variant.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Error != nil {
		return json.Marshal(e.Error)
	}
	return json.Marshal(e.Data)
}

// UnmarshalJSON restores the variant from the flat form. Error records are
// recognized by their "kind" discriminator; anything else decodes as a
// generic result map.
func (e *Entry) UnmarshalJSON(b []byte) error {
	var probe struct {
		Kind   metrics.ErrKind `json:"kind"`
		Reason string          `json:"error"`
	}
	if err := json.Unmarshal(b, &probe); err == nil && probe.Kind != "" {
		e.Error = &metrics.MetricError{Kind: probe.Kind, Reason: probe.Reason}
		return nil
	}
	var data map[string]interface{}
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	e.Data = data
	return nil
}

// Bundle maps metric names to their results for one analysis run.
type Bundle map[string]Entry

func ok(data interface{}) Entry             { return Entry{Data: data} }
func failed(err *metrics.MetricError) Entry { return Entry{Error: err} }

// SelectMetrics computes every metric whose prerequisite aggregates are
// present. Metrics with absent prerequisites are omitted from the bundle;
// the one exception is WACC, which surfaces an error record when equity and
// debt aggregates exist but are non-positive. A single metric's failure
// never aborts the rest of the bundle.
func SelectMetrics(data *extract.FinancialData, a Assumptions) Bundle {
	bundle := make(Bundle)

	if data.Revenue != nil && data.Cost != nil {
		bundle["profit_loss"] = ok(metrics.CalculateProfitLoss(data.Revenue.Total, data.Cost.Total))
		bundle["gross_margin"] = ok(metrics.CalculateGrossMargin(data.Revenue.Total, data.Cost.Total))
		bundle["net_margin"] = ok(metrics.CalculateNetMargin(data.Revenue.Total, data.Cost.Total))
		bundle["cashflow_analysis"] = ok(metrics.CalculateCashFlow(data.Revenue.Total, data.Cost.Total, 0))
		bundle["ebitda"] = ok(metrics.CalculateEBITDA(data.Revenue.Total, data.Cost.Total, 0, 0))

		if data.Investment != nil {
			bundle["roi"] = ok(metrics.CalculateROI(data.Revenue.Total, data.Cost.Total, *data.Investment))
		}
	}

	if data.HasCashflows {
		if npv, err := metrics.CalculateNPV(data.Cashflows, a.DiscountRate); err != nil {
			bundle["npv"] = failed(err)
		} else {
			bundle["npv"] = ok(npv)
		}
		if irr, err := metrics.CalculateIRR(data.Cashflows, a.IRRGuess); err != nil {
			bundle["irr"] = failed(err)
		} else {
			bundle["irr"] = ok(irr)
		}
	}

	if data.Assets != nil && data.Liabilities != nil {
		bundle["working_capital"] = ok(metrics.CalculateWorkingCapital(*data.Assets, *data.Liabilities))
	}

	if data.Liabilities != nil && data.Equity != nil {
		bundle["debt_to_equity"] = ok(metrics.CalculateDebtToEquity(*data.Liabilities, *data.Equity))
	}

	if data.Cost != nil && data.Assets != nil {
		if turnover, err := metrics.CalculateInventoryTurnover(data.Cost.Total, *data.Assets); err != nil {
			bundle["inventory_turnover"] = failed(err)
		} else {
			bundle["inventory_turnover"] = ok(turnover)
		}
	}

	if data.Equity != nil && data.Liabilities != nil {
		if *data.Equity > 0 && *data.Liabilities > 0 {
			if wacc, err := metrics.CalculateWACC(*data.Equity, *data.Liabilities, a.CostOfEquity, a.CostOfDebt, a.TaxRate); err != nil {
				bundle["wacc"] = failed(err)
			} else {
				bundle["wacc"] = ok(wacc)
			}
		} else {
			bundle["wacc"] = failed(&metrics.MetricError{
				Kind:   metrics.ErrMissingPrerequisite,
				Reason: "Need positive Equity and Liabilities/Debt values for WACC calculation",
			})
		}
	}

	return bundle
}

// AvailableMetrics lists, per the detected roles, which metric names a run
// over this dataset could produce (including formulas exposed for direct
// invocation by the caller).
func AvailableMetrics(roles schema.RoleMap) []string {
	var available []string
	has := func(r schema.Role) bool { _, ok := roles[r]; return ok }

	if has(schema.RoleRevenue) && has(schema.RoleCost) {
		available = append(available, "profit_loss_ratio", "gross_margin", "net_margin", "roi")
	}
	if has(schema.RoleCashflow) || (has(schema.RoleRevenue) && has(schema.RoleDate)) {
		available = append(available, "npv", "irr", "payback_period", "profitability_index")
	}
	if has(schema.RoleRevenue) && has(schema.RoleCost) {
		available = append(available, "cash_flow_analysis")
	}
	if has(schema.RoleRevenue) && has(schema.RoleCost) && has(schema.RoleQuantity) {
		available = append(available, "break_even_analysis")
	}
	if has(schema.RoleRevenue) && has(schema.RoleDate) {
		available = append(available, "revenue_per_hour", "sales_growth", "revenue_forecast")
	}
	if has(schema.RoleAssets) && has(schema.RoleLiabilities) {
		available = append(available, "working_capital", "current_ratio", "quick_ratio")
	}
	if has(schema.RoleLiabilities) && has(schema.RoleEquity) {
		available = append(available, "debt_to_equity")
	}
	if has(schema.RoleCost) && has(schema.RoleAssets) {
		available = append(available, "inventory_turnover")
	}
	return available
}
