package b3analyzer

import (
	"slices"
	"strconv"
	"strings"

	"b3analyzer/date"
	"github.com/shopspring/decimal"
)

// Table is a derived report table: a dense grid mapping a row key tuple to
// summed values, one column per pivoted dimension, with missing combinations
// filled as zero and augmented with a trailing Total (row sum) and Média
// (row mean over the value columns, Total excluded).
type Table struct {
	Name       string
	KeyHeaders []string // headers of the row key tuple, e.g. ["Ticker", "Ano"]
	Columns    []string // pivoted value columns, in their fixed order
	Rows       []TableRow
}

// TableRow is one row of a derived table.
type TableRow struct {
	Key     []string
	Values  []decimal.Decimal // one per Table.Columns entry
	Total   decimal.Decimal
	Average decimal.Decimal
}

// Headers returns the full header row: key headers, value columns, Total and
// Média.
func (t Table) Headers() []string {
	headers := append([]string{}, t.KeyHeaders...)
	headers = append(headers, t.Columns...)
	return append(headers, "Total", "Média")
}

// Futures contract multipliers converting index points to currency value,
// per the exchange's contract specification.
var (
	wdoPointValue = decimal.NewFromInt(10)
	winPointValue = decimal.RequireFromString("0.2")
)

// pivotBuilder accumulates cell sums for a dense pivot grid.
type pivotBuilder struct {
	sums map[string]map[string]decimal.Decimal // row key -> column -> sum
	keys map[string][]string                   // row key -> key tuple
}

func newPivotBuilder() *pivotBuilder {
	return &pivotBuilder{
		sums: make(map[string]map[string]decimal.Decimal),
		keys: make(map[string][]string),
	}
}

// add accumulates v into the cell (key, col).
func (b *pivotBuilder) add(key []string, col string, v decimal.Decimal) {
	id := strings.Join(key, "\x00")
	cells, ok := b.sums[id]
	if !ok {
		cells = make(map[string]decimal.Decimal)
		b.sums[id] = cells
		b.keys[id] = key
	}
	cells[col] = cells[col].Add(v)
}

// table materializes the dense grid: every row gets one value per column
// (zero when the combination never occurred), a Total and a Média. Média is
// the arithmetic mean over the value columns only; the Total column never
// enters its denominator.
func (b *pivotBuilder) table(name string, keyHeaders, columns []string, cmp func(a, b []string) int) Table {
	t := Table{Name: name, KeyHeaders: keyHeaders, Columns: columns}
	keys := make([][]string, 0, len(b.keys))
	for _, key := range b.keys {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, cmp)
	n := decimal.NewFromInt(int64(len(columns)))
	for _, key := range keys {
		id := strings.Join(key, "\x00")
		row := TableRow{Key: key}
		for _, col := range columns {
			v := b.sums[id][col]
			row.Values = append(row.Values, v)
			row.Total = row.Total.Add(v)
		}
		if !n.IsZero() {
			row.Average = row.Total.Div(n)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// monthColumns returns the month names observed in the statement, always in
// calendar order (Janeiro→Dezembro), never in string sort order.
func monthColumns(s Statement) []string {
	var observed [13]bool
	for _, t := range s {
		observed[t.Month] = true
	}
	var cols []string
	for _, m := range date.Months() {
		if observed[m] {
			cols = append(cols, date.MonthName(m))
		}
	}
	return cols
}

// yearColumns returns the years observed in the statement, ascending.
func yearColumns(s Statement) []string {
	seen := make(map[int]bool)
	var years []int
	for _, t := range s {
		if !seen[t.Year] {
			seen[t.Year] = true
			years = append(years, t.Year)
		}
	}
	slices.Sort(years)
	cols := make([]string, 0, len(years))
	for _, y := range years {
		cols = append(cols, strconv.Itoa(y))
	}
	return cols
}

// monthIndex maps a Portuguese month name back to its calendar position.
var monthIndex = func() map[string]int {
	index := make(map[string]int, 12)
	for _, m := range date.Months() {
		index[date.MonthName(m)] = int(m)
	}
	return index
}()

func compareYearDesc(a, b []string) int { return strings.Compare(b[0], a[0]) }

func compareKeyThenYear(a, b []string) int {
	if c := strings.Compare(a[0], b[0]); c != 0 {
		return c
	}
	return strings.Compare(a[1], b[1])
}

func compareKey(a, b []string) int { return strings.Compare(a[0], b[0]) }

func compareMonth(a, b []string) int { return monthIndex[a[0]] - monthIndex[b[0]] }

// ByPeriod groups operation values by (year, month) and pivots months to
// columns. Rows are sorted by year descending.
func ByPeriod(s Statement) Table {
	b := newPivotBuilder()
	for _, t := range s {
		b.add([]string{strconv.Itoa(t.Year)}, t.MonthName(), t.Value)
	}
	return b.table("Por Período", []string{"Ano"}, monthColumns(s), compareYearDesc)
}

// ByTickerMonthly groups operation values by (ticker, year, month) and
// pivots months to columns. Rows are sorted by ticker ascending.
func ByTickerMonthly(s Statement) Table {
	b := newPivotBuilder()
	for _, t := range s {
		b.add([]string{t.Ticker, strconv.Itoa(t.Year)}, t.MonthName(), t.Value)
	}
	return b.table("Ticker Mensal", []string{"Ticker", "Ano"}, monthColumns(s), compareKeyThenYear)
}

// ByTickerYearly groups operation values by (ticker, year) and pivots years
// to columns. Rows are sorted by ticker ascending.
func ByTickerYearly(s Statement) Table {
	b := newPivotBuilder()
	for _, t := range s {
		b.add([]string{t.Ticker}, strconv.Itoa(t.Year), t.Value)
	}
	return b.table("Ticker Anual", []string{"Ticker"}, yearColumns(s), compareKey)
}

// ByTypeMonthly groups operation values by (movement kind, year, month) and
// pivots months to columns.
func ByTypeMonthly(s Statement) Table {
	b := newPivotBuilder()
	for _, t := range s {
		b.add([]string{t.Kind, strconv.Itoa(t.Year)}, t.MonthName(), t.Value)
	}
	return b.table("Tipo Mensal", []string{"Movimentação", "Ano"}, monthColumns(s), compareKeyThenYear)
}

// ByTypeYearly groups operation values by (movement kind, year) and pivots
// years to columns.
func ByTypeYearly(s Statement) Table {
	b := newPivotBuilder()
	for _, t := range s {
		b.add([]string{t.Kind}, strconv.Itoa(t.Year), t.Value)
	}
	return b.table("Tipo Anual", []string{"Movimentação"}, yearColumns(s), compareKey)
}

// tickerColumns returns the distinct tickers of the statement, ascending.
func tickerColumns(s Statement) []string { return s.Tickers() }

// scaleFuturesColumns applies the contract point-value multiplier to each
// ticker column, after the pivot and before Total/Média: WDO contracts are
// worth 10 per point, WIN contracts 0.20.
func scaleFuturesColumns(b *pivotBuilder, columns []string) {
	for _, cells := range b.sums {
		for _, col := range columns {
			v, ok := cells[col]
			if !ok {
				continue
			}
			switch {
			case strings.Contains(col, "WDO"):
				cells[col] = v.Mul(wdoPointValue)
			case strings.Contains(col, "WIN"):
				cells[col] = v.Mul(winPointValue)
			}
		}
	}
}

// FuturesByDay groups futures unit prices by (date, ticker) and pivots
// tickers to columns. Futures gains are point-based, so unit price is summed
// rather than operation value, and each contract column is scaled to
// currency after the pivot.
func FuturesByDay(s Statement) Table {
	b := newPivotBuilder()
	for _, t := range s {
		b.add([]string{t.Date.String()}, t.Ticker, t.UnitPrice)
	}
	cols := tickerColumns(s)
	scaleFuturesColumns(b, cols)
	return b.table("Futuros Diário", []string{"Data"}, cols, compareKey)
}

// FuturesByPeriod is FuturesByDay aggregated by month instead of day.
func FuturesByPeriod(s Statement) Table {
	b := newPivotBuilder()
	for _, t := range s {
		b.add([]string{t.MonthName()}, t.Ticker, t.UnitPrice)
	}
	cols := tickerColumns(s)
	scaleFuturesColumns(b, cols)
	return b.table("Futuros Mensal", []string{"Mes"}, cols, compareMonth)
}

// SplitFlows partitions a statement into inflows and outflows for cash-flow
// direction reporting. Amortização reduces an investment's principal even
// though the broker tags it as a credit entry, so it always lands in the
// outflow set. The two sets are disjoint and their union is the input.
func SplitFlows(s Statement) (inflow, outflow Statement) {
	for _, t := range s {
		if t.Entry == Credit && t.Kind != KindAmortization {
			inflow = append(inflow, t)
		} else {
			outflow = append(outflow, t)
		}
	}
	return inflow, outflow
}
