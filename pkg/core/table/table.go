// Package table defines the in-memory tabular dataset the analysis engine
// operates on. Loading from files or uploads is the caller's responsibility;
// the engine only ever reads a fully materialized Table.
package table

import (
	"strconv"
	"strings"
	"time"
)

// ValueKind discriminates the scalar cell variants.
type ValueKind int

const (
	KindEmpty ValueKind = iota
	KindNumber
	KindText
	KindTime
)

// Value is a single scalar cell.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Time time.Time
}

func Number(f float64) Value      { return Value{Kind: KindNumber, Num: f} }
func Text(s string) Value         { return Value{Kind: KindText, Str: s} }
func Timestamp(t time.Time) Value { return Value{Kind: KindTime, Time: t} }
func Empty() Value                { return Value{Kind: KindEmpty} }

// AsNumber attempts numeric coercion of the cell. Text cells are parsed
// after trimming whitespace and thousands separators; time and empty cells
// never coerce.
func (v Value) AsNumber() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindText:
		s := strings.TrimSpace(v.Str)
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// IsMissing reports whether the cell holds no usable value.
func (v Value) IsMissing() bool {
	return v.Kind == KindEmpty || (v.Kind == KindText && strings.TrimSpace(v.Str) == "")
}

// Column is an ordered sequence of cells under a name.
type Column struct {
	Name  string
	Cells []Value
}

// Table is an ordered collection of named columns. Rows align by position.
type Table struct {
	columns []Column
	index   map[string]int
}

// New builds a Table from columns in the given order. Duplicate names keep
// the first occurrence in the lookup index; both columns remain addressable
// by position.
func New(columns []Column) *Table {
	t := &Table{columns: columns, index: make(map[string]int, len(columns))}
	for i, c := range columns {
		if _, ok := t.index[c.Name]; !ok {
			t.index[c.Name] = i
		}
	}
	return t
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the first column with the given name.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// NumColumns returns the column count.
func (t *Table) NumColumns() int { return len(t.columns) }

// NumRows returns the length of the longest column.
func (t *Table) NumRows() int {
	rows := 0
	for _, c := range t.columns {
		if len(c.Cells) > rows {
			rows = len(c.Cells)
		}
	}
	return rows
}

// NumericSeries coerces a column's cells to numbers, dropping cells that
// fail coercion. Order is preserved; the result length equals the count of
// coercible cells.
func NumericSeries(c Column) []float64 {
	series := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if f, ok := cell.AsNumber(); ok {
			series = append(series, f)
		}
	}
	return series
}
