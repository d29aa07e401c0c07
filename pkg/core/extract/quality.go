package extract

import "finsight/pkg/core/table"

// DataQuality summarizes dataset completeness for the report and for
// insight generation.
type DataQuality struct {
	TotalRows      int     `json:"total_rows"`
	TotalColumns   int     `json:"total_columns"`
	MissingValues  int     `json:"missing_values"`
	NumericColumns int     `json:"numeric_columns"`
	DateColumns    int     `json:"date_columns"`
	Completeness   float64 `json:"completeness"`
}

// AssessDataQuality computes the quality summary. A column counts as numeric
// when every present cell coerces to a number; as a date column when every
// present cell is a timestamp. Short columns contribute missing cells for the
// rows they do not cover.
func AssessDataQuality(t *table.Table) DataQuality {
	q := DataQuality{
		TotalRows:    t.NumRows(),
		TotalColumns: t.NumColumns(),
	}

	for _, name := range t.ColumnNames() {
		col, _ := t.Column(name)
		numeric, dates, present := true, true, 0
		for _, cell := range col.Cells {
			if cell.IsMissing() {
				q.MissingValues++
				continue
			}
			present++
			if _, ok := cell.AsNumber(); !ok {
				numeric = false
			}
			if cell.Kind != table.KindTime {
				dates = false
			}
		}
		q.MissingValues += q.TotalRows - len(col.Cells)
		if present > 0 && numeric {
			q.NumericColumns++
		}
		if present > 0 && dates {
			q.DateColumns++
		}
	}

	totalCells := q.TotalRows * q.TotalColumns
	if totalCells > 0 {
		q.Completeness = (1 - float64(q.MissingValues)/float64(totalCells)) * 100
	} else {
		q.Completeness = 100
	}
	return q
}
