package extract_test

import (
	"math"
	"testing"

	"finsight/pkg/core/extract"
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

func classify(t *table.Table) schema.RoleMap {
	return schema.ClassifyColumns(t.ColumnNames())
}

func TestExtractFinancialData(t *testing.T) {
	tbl := table.New([]table.Column{
		numberColumn("Revenue", 100, 200, 300),
		numberColumn("Cost", 50, 100, 150),
	})

	data := extract.ExtractFinancialData(tbl, classify(tbl))

	if data.Revenue == nil || data.Revenue.Total != 600 {
		t.Fatalf("Expected revenue total 600, got %+v", data.Revenue)
	}
	if data.Revenue.Mean != 200 {
		t.Errorf("Expected revenue mean 200, got %.2f", data.Revenue.Mean)
	}
	if data.Cost == nil || data.Cost.Total != 300 {
		t.Fatalf("Expected cost total 300, got %+v", data.Cost)
	}

	// Profit = 600 - 300 = 300, margin = 300/600 = 50%
	if data.Profit == nil {
		t.Fatal("Expected profit summary")
	}
	if data.Profit.Total != 300 {
		t.Errorf("Expected profit 300, got %.2f", data.Profit.Total)
	}
	if data.Profit.MarginPct != 50 {
		t.Errorf("Expected margin 50%%, got %.2f", data.Profit.MarginPct)
	}

	// Cashflows synthesized pointwise: [50, 100, 150]
	if !data.HasCashflows {
		t.Fatal("Expected synthesized cashflows")
	}
	want := []float64{50, 100, 150}
	if len(data.Cashflows) != len(want) {
		t.Fatalf("Expected %d cashflows, got %d", len(want), len(data.Cashflows))
	}
	for i, w := range want {
		if data.Cashflows[i] != w {
			t.Errorf("Cashflow[%d]: expected %.0f, got %.2f", i, w, data.Cashflows[i])
		}
	}
}

func TestExtractFinancialData_CoercionDrops(t *testing.T) {
	// Text cells that don't parse are dropped; "1,500" coerces after
	// comma stripping.
	tbl := table.New([]table.Column{
		{Name: "Revenue", Cells: []table.Value{
			table.Number(100),
			table.Text("n/a"),
			table.Text("1,500"),
			table.Empty(),
		}},
	})

	data := extract.ExtractFinancialData(tbl, classify(tbl))

	if data.Revenue == nil {
		t.Fatal("Expected revenue aggregate")
	}
	if len(data.Revenue.Series) != 2 {
		t.Fatalf("Expected 2 coercible cells, got %d", len(data.Revenue.Series))
	}
	if data.Revenue.Total != 1600 {
		t.Errorf("Expected total 1600, got %.2f", data.Revenue.Total)
	}
}

func TestExtractFinancialData_NonNumericColumn(t *testing.T) {
	// A fully non-coercible column yields a zero aggregate with a note,
	// not an error, and blocks cashflow synthesis.
	tbl := table.New([]table.Column{
		{Name: "Revenue", Cells: []table.Value{table.Text("abc"), table.Text("def")}},
		numberColumn("Cost", 10, 20),
	})

	data := extract.ExtractFinancialData(tbl, classify(tbl))

	if data.Revenue == nil {
		t.Fatal("Expected revenue aggregate")
	}
	if data.Revenue.Note == "" {
		t.Error("Expected a note on the non-numeric aggregate")
	}
	if data.Revenue.Total != 0 {
		t.Errorf("Expected zero total, got %.2f", data.Revenue.Total)
	}
	if data.HasCashflows {
		t.Error("Expected no synthesized cashflows when a series carries a note")
	}
}

func TestExtractFinancialData_ExplicitCashflowColumn(t *testing.T) {
	tbl := table.New([]table.Column{
		numberColumn("cash_flow", -1000, 400, 500),
	})

	data := extract.ExtractFinancialData(tbl, classify(tbl))

	if !data.HasCashflows {
		t.Fatal("Expected explicit cashflows")
	}
	if len(data.Cashflows) != 3 || data.Cashflows[0] != -1000 {
		t.Errorf("Unexpected cashflows: %v", data.Cashflows)
	}
}

func TestExtractFinancialData_CommonPrefixTruncation(t *testing.T) {
	// Revenue has 3 points, cost only 2: synthesis covers the prefix.
	tbl := table.New([]table.Column{
		numberColumn("Revenue", 100, 200, 300),
		numberColumn("Cost", 50, 100),
	})

	data := extract.ExtractFinancialData(tbl, classify(tbl))

	if len(data.Cashflows) != 2 {
		t.Fatalf("Expected 2 synthesized cashflows, got %d", len(data.Cashflows))
	}
}

func TestExtractFinancialData_Scalars(t *testing.T) {
	tbl := table.New([]table.Column{
		numberColumn("total_assets", 100000, 50000),
		numberColumn("liabilities", 60000),
		numberColumn("equity", 90000),
	})

	data := extract.ExtractFinancialData(tbl, classify(tbl))

	if data.Assets == nil || *data.Assets != 150000 {
		t.Errorf("Expected assets 150000, got %v", data.Assets)
	}
	if data.Liabilities == nil || *data.Liabilities != 60000 {
		t.Errorf("Expected liabilities 60000, got %v", data.Liabilities)
	}
	if data.Equity == nil || *data.Equity != 90000 {
		t.Errorf("Expected equity 90000, got %v", data.Equity)
	}
}

func TestAssessDataQuality(t *testing.T) {
	// 2 columns x 3 rows. Revenue complete and numeric; Notes has one
	// missing cell and is textual.
	tbl := table.New([]table.Column{
		numberColumn("Revenue", 100, 200, 300),
		{Name: "Notes", Cells: []table.Value{table.Text("ok"), table.Empty(), table.Text("fine")}},
	})

	q := extract.AssessDataQuality(tbl)

	if q.TotalRows != 3 || q.TotalColumns != 2 {
		t.Fatalf("Unexpected dimensions: %d x %d", q.TotalRows, q.TotalColumns)
	}
	if q.MissingValues != 1 {
		t.Errorf("Expected 1 missing value, got %d", q.MissingValues)
	}
	if q.NumericColumns != 1 {
		t.Errorf("Expected 1 numeric column, got %d", q.NumericColumns)
	}
	// Completeness = (1 - 1/6) * 100 ~ 83.33
	if math.Abs(q.Completeness-83.3333) > 0.01 {
		t.Errorf("Expected ~83.33%% completeness, got %.2f", q.Completeness)
	}
}

func TestAssessDataQuality_Empty(t *testing.T) {
	q := extract.AssessDataQuality(table.New(nil))
	if q.Completeness != 100 {
		t.Errorf("Expected 100%% completeness for empty table, got %.2f", q.Completeness)
	}
}
