package dispatch_test

import (
	"encoding/json"
	"strings"
	"testing"

	"finsight/pkg/core/dispatch"
	"finsight/pkg/core/extract"
	"finsight/pkg/core/metrics"
	"finsight/pkg/core/schema"
	"finsight/pkg/core/table"
)

func numberColumn(name string, values ...float64) table.Column {
	cells := make([]table.Value, len(values))
	for i, v := range values {
		cells[i] = table.Number(v)
	}
	return table.Column{Name: name, Cells: cells}
}

func extractFrom(columns ...table.Column) *extract.FinancialData {
	tbl := table.New(columns)
	roles := schema.ClassifyColumns(tbl.ColumnNames())
	return extract.ExtractFinancialData(tbl, roles)
}

func TestSelectMetrics_RevenueAndCost(t *testing.T) {
	// Revenue 500000, Cost 350000
	data := extractFrom(
		numberColumn("Revenue", 500000),
		numberColumn("Cost", 350000),
	)

	bundle := dispatch.SelectMetrics(data, dispatch.DefaultAssumptions())

	entry, ok := bundle["profit_loss"]
	if !ok {
		t.Fatal("Expected profit_loss entry")
	}
	pl, isPL := entry.Data.(metrics.ProfitLossResult)
	if !isPL {
		t.Fatalf("Unexpected profit_loss payload type: %T", entry.Data)
	}
	if pl.Profit != 150000 {
		t.Errorf("Expected profit 150000, got %.2f", pl.Profit)
	}
	if pl.ProfitLossRatio != 0.3 {
		t.Errorf("Expected ratio 0.3, got %.4f", pl.ProfitLossRatio)
	}
	if pl.Status != "Profitable" {
		t.Errorf("Expected Profitable, got %s", pl.Status)
	}

	for _, name := range []string{"gross_margin", "net_margin", "cashflow_analysis", "ebitda"} {
		if _, present := bundle[name]; !present {
			t.Errorf("Expected %s in bundle", name)
		}
	}

	// Single-point series synthesize a single cashflow, so NPV runs but
	// IRR fails its 2-flow prerequisite.
	if npv, present := bundle["npv"]; !present || npv.Error != nil {
		t.Errorf("Expected successful npv entry, got %+v", npv)
	}
	irr, present := bundle["irr"]
	if !present || irr.Error == nil {
		t.Fatalf("Expected irr error entry, got %+v", irr)
	}
	if irr.Error.Kind != metrics.ErrDegenerateInput {
		t.Errorf("Expected degenerate_input, got %s", irr.Error.Kind)
	}

	// No balance-sheet aggregates: those metrics must be absent.
	for _, name := range []string{"working_capital", "debt_to_equity", "wacc", "roi"} {
		if _, present := bundle[name]; present {
			t.Errorf("Did not expect %s in bundle", name)
		}
	}
}

func TestSelectMetrics_WACCRequiresPositiveCapital(t *testing.T) {
	zero := 0.0
	equity := 500000.0
	debt := 300000.0

	// Positive equity and debt: WACC computes.
	data := &extract.FinancialData{Equity: &equity, Liabilities: &debt}
	bundle := dispatch.SelectMetrics(data, dispatch.DefaultAssumptions())

	entry, ok := bundle["wacc"]
	if !ok || entry.Error != nil {
		t.Fatalf("Expected successful wacc entry, got %+v", entry)
	}
	wacc := entry.Data.(*metrics.WACCResult)
	// 0.625*0.12 + 0.375*0.06*0.7 = 0.09075
	if wacc.WACC != 0.0908 && wacc.WACC != 0.0907 {
		t.Errorf("Expected WACC ~0.0908, got %.4f", wacc.WACC)
	}

	// Zero equity: error entry, not omission.
	data = &extract.FinancialData{Equity: &zero, Liabilities: &debt}
	bundle = dispatch.SelectMetrics(data, dispatch.DefaultAssumptions())

	entry, ok = bundle["wacc"]
	if !ok {
		t.Fatal("Expected wacc error entry for zero equity")
	}
	if entry.Error == nil || entry.Error.Kind != metrics.ErrMissingPrerequisite {
		t.Fatalf("Expected missing_prerequisite, got %+v", entry)
	}
	if entry.Error.Reason != "Need positive Equity and Liabilities/Debt values for WACC calculation" {
		t.Errorf("Unexpected reason: %s", entry.Error.Reason)
	}
}

func TestSelectMetrics_AssumptionOverride(t *testing.T) {
	data := extractFrom(numberColumn("cash_flow", -1000, 600, 600))

	a := dispatch.DefaultAssumptions()
	a.DiscountRate = 0.20

	bundle := dispatch.SelectMetrics(data, a)
	entry := bundle["npv"]
	if entry.Error != nil {
		t.Fatalf("Unexpected npv error: %v", entry.Error)
	}
	npv := entry.Data.(*metrics.NPVResult)
	if npv.DiscountRate != 0.20 {
		t.Errorf("Expected discount rate 0.20, got %.4f", npv.DiscountRate)
	}
}

func TestEntryMarshalFlattens(t *testing.T) {
	data := extractFrom(
		numberColumn("Revenue", 1000),
		numberColumn("Cost", 600),
	)
	bundle := dispatch.SelectMetrics(data, dispatch.DefaultAssumptions())

	blob, err := json.Marshal(bundle["profit_loss"])
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	// Success entries flatten to the record itself: no Data/Error wrapper.
	if strings.Contains(string(blob), "\"Data\"") || strings.Contains(string(blob), "\"Error\"") {
		t.Errorf("Entry did not flatten: %s", blob)
	}
	if !strings.Contains(string(blob), "\"profit_loss_ratio\"") {
		t.Errorf("Expected metric fields at top level: %s", blob)
	}

	// Error entries flatten to the error record.
	errEntry := dispatch.Entry{Error: &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "boom"}}
	blob, err = json.Marshal(errEntry)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(blob), "\"kind\":\"degenerate_input\"") {
		t.Errorf("Expected error discriminator: %s", blob)
	}
}

func TestEntryRoundTrip(t *testing.T) {
	errEntry := dispatch.Entry{Error: &metrics.MetricError{Kind: metrics.ErrSolverFailure, Reason: "no root"}}
	blob, _ := json.Marshal(errEntry)

	var restored dispatch.Entry
	if err := json.Unmarshal(blob, &restored); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if restored.Error == nil || restored.Error.Kind != metrics.ErrSolverFailure {
		t.Errorf("Expected restored error entry, got %+v", restored)
	}
}

func TestAvailableMetrics(t *testing.T) {
	roles := schema.ClassifyColumns([]string{"Revenue", "Cost", "Date", "Quantity"})
	available := dispatch.AvailableMetrics(roles)

	set := make(map[string]bool, len(available))
	for _, m := range available {
		set[m] = true
	}
	for _, want := range []string{"profit_loss_ratio", "gross_margin", "npv", "break_even_analysis", "revenue_per_hour", "sales_growth"} {
		if !set[want] {
			t.Errorf("Expected %s available, got %v", want, available)
		}
	}
	if set["working_capital"] {
		t.Error("Did not expect working_capital without balance-sheet roles")
	}
}
