package b3analyzer

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func TestByPeriodMonthOrderingAndShape(t *testing.T) {
	// December data arrives before January data: column order must still be
	// calendar order, never string order ("Dezembro" < "Janeiro").
	s := Statement{
		tx(Credit, "10/12/2022", KindDividend, "PETR4", "PETROBRAS PN", 1, 0, 40),
		tx(Credit, "10/01/2023", KindDividend, "PETR4", "PETROBRAS PN", 1, 0, 100),
		tx(Credit, "15/05/2023", KindDividend, "PETR4", "PETROBRAS PN", 1, 0, 60),
	}
	table := ByPeriod(s)

	wantCols := []string{"Janeiro", "Maio", "Dezembro"}
	if !slices.Equal(table.Columns, wantCols) {
		t.Fatalf("Columns = %v, want %v", table.Columns, wantCols)
	}

	// Rows sorted by year descending.
	if table.Rows[0].Key[0] != "2023" || table.Rows[1].Key[0] != "2022" {
		t.Fatalf("row order = %v, %v, want 2023 then 2022", table.Rows[0].Key, table.Rows[1].Key)
	}

	// Missing combinations fill as zero: 2022 has no Janeiro/Maio data.
	r2022 := table.Rows[1]
	if !r2022.Values[0].IsZero() || !r2022.Values[1].IsZero() {
		t.Errorf("2022 row = %v, want zeros for Janeiro and Maio", r2022.Values)
	}
	if !r2022.Values[2].Equal(D(40)) {
		t.Errorf("2022 Dezembro = %s, want 40", r2022.Values[2])
	}
}

// Total is the row sum over value columns; Média is the row mean over the
// same columns, never counting Total itself in the denominator.
func TestTotalAndAverageIdentity(t *testing.T) {
	s := Statement{
		tx(Credit, "10/01/2023", KindDividend, "PETR4", "PETROBRAS PN", 1, 0, 100),
		tx(Credit, "10/02/2023", KindDividend, "ITUB4", "ITAU UNIBANCO PN", 1, 0, 0),
	}
	table := ByPeriod(s)
	if len(table.Columns) != 2 {
		t.Fatalf("Columns = %v, want 2 month columns", table.Columns)
	}
	row := table.Rows[0]
	if !row.Total.Equal(D(100)) {
		t.Errorf("Total = %s, want 100", row.Total)
	}
	if !row.Average.Equal(D(50)) {
		t.Errorf("Média = %s, want 50", row.Average)
	}

	for _, tbl := range []Table{ByPeriod(s), ByTickerMonthly(s), ByTickerYearly(s), ByTypeMonthly(s), ByTypeYearly(s)} {
		for _, row := range tbl.Rows {
			sum := decimal.Zero
			for _, v := range row.Values {
				sum = sum.Add(v)
			}
			if !row.Total.Equal(sum) {
				t.Errorf("%s row %v: Total = %s, want %s", tbl.Name, row.Key, row.Total, sum)
			}
			want := sum.Div(decimal.NewFromInt(int64(len(tbl.Columns))))
			if !row.Average.Equal(want) {
				t.Errorf("%s row %v: Média = %s, want %s", tbl.Name, row.Key, row.Average, want)
			}
		}
	}
}

func TestByTickerTables(t *testing.T) {
	s := Statement{
		tx(Credit, "10/01/2023", KindDividend, "PETR4", "PETROBRAS PN", 1, 0, 100),
		tx(Credit, "10/02/2023", KindDividend, "ITUB4", "ITAU UNIBANCO PN", 1, 0, 50),
		tx(Credit, "10/03/2024", KindDividend, "ITUB4", "ITAU UNIBANCO PN", 1, 0, 25),
	}

	monthly := ByTickerMonthly(s)
	// Rows sorted by ticker ascending.
	if monthly.Rows[0].Key[0] != "ITUB4" {
		t.Errorf("first row key = %v, want ITUB4 first", monthly.Rows[0].Key)
	}
	if len(monthly.Rows) != 3 {
		t.Errorf("ByTickerMonthly rows = %d, want 3 (ticker-year pairs)", len(monthly.Rows))
	}

	yearly := ByTickerYearly(s)
	if !slices.Equal(yearly.Columns, []string{"2023", "2024"}) {
		t.Fatalf("ByTickerYearly columns = %v, want years ascending", yearly.Columns)
	}
	if len(yearly.Rows) != 2 {
		t.Fatalf("ByTickerYearly rows = %d, want 2", len(yearly.Rows))
	}
	itub := yearly.Rows[0]
	if itub.Key[0] != "ITUB4" || !itub.Values[0].Equal(D(50)) || !itub.Values[1].Equal(D(25)) {
		t.Errorf("ITUB4 row = %v %v, want [50 25]", itub.Key, itub.Values)
	}
}

func TestByTypeTables(t *testing.T) {
	s := Statement{
		tx(Credit, "10/01/2023", KindDividend, "PETR4", "PETROBRAS PN", 1, 0, 100),
		tx(Credit, "12/01/2023", KindInterestOnEquity, "PETR4", "PETROBRAS PN", 1, 0, 30),
		tx(Credit, "10/02/2023", KindDividend, "PETR4", "PETROBRAS PN", 1, 0, 70),
	}
	table := ByTypeYearly(s)
	if len(table.Rows) != 2 {
		t.Fatalf("ByTypeYearly rows = %d, want 2", len(table.Rows))
	}
	// Kinds sorted ascending: Dividendo before Juros Sobre Capital Próprio.
	if table.Rows[0].Key[0] != KindDividend {
		t.Errorf("first row = %v, want Dividendo", table.Rows[0].Key)
	}
	if !table.Rows[0].Total.Equal(D(170)) {
		t.Errorf("Dividendo total = %s, want 170", table.Rows[0].Total)
	}
}

// A WDO round trip of +10 points reports a gain of 100 after the x10
// contract scaling; WIN scales by 0.20 instead.
func TestFuturesScaling(t *testing.T) {
	s := Statement{
		tx(Debit, "05/02/2023", KindBuy, "WDOJ23", "WDOJ23 CONTRATO FUTURO MINI DOLAR - WDOJ23", 1, 5000, 0),
		tx(Credit, "05/02/2023", KindSell, "WDOJ23", "WDOJ23 CONTRATO FUTURO MINI DOLAR - WDOJ23", 1, 5010, 0),
		tx(Debit, "05/02/2023", KindBuy, "WINJ23", "WINJ23 CONTRATO FUTURO MINI INDICE - WINJ23", 1, 120000, 0),
		tx(Credit, "05/02/2023", KindSell, "WINJ23", "WINJ23 CONTRATO FUTURO MINI INDICE - WINJ23", 1, 120500, 0),
	}
	futures := s.Futures()
	table := FuturesByDay(futures)

	if !slices.Equal(table.Columns, []string{"WDOJ23", "WINJ23"}) {
		t.Fatalf("Columns = %v, want contract tickers ascending", table.Columns)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d, want a single day", len(table.Rows))
	}
	row := table.Rows[0]
	if !row.Values[0].Equal(D(100)) {
		t.Errorf("WDO gain = %s, want 100 (10 points x 10)", row.Values[0])
	}
	if !row.Values[1].Equal(D(100)) {
		t.Errorf("WIN gain = %s, want 100 (500 points x 0.20)", row.Values[1])
	}

	monthly := FuturesByPeriod(futures)
	if len(monthly.Rows) != 1 || monthly.Rows[0].Key[0] != "Fevereiro" {
		t.Fatalf("FuturesByPeriod rows = %v, want a single Fevereiro row", monthly.Rows)
	}
	if !monthly.Rows[0].Total.Equal(D(200)) {
		t.Errorf("monthly total = %s, want 200", monthly.Rows[0].Total)
	}
}

func TestFuturesByPeriodMonthOrder(t *testing.T) {
	s := Statement{
		tx(Credit, "05/12/2023", KindSell, "WDOJ23", "WDOJ23 CONTRATO FUTURO MINI DOLAR - WDOJ23", 1, 10, 0),
		tx(Credit, "05/02/2023", KindSell, "WDOJ23", "WDOJ23 CONTRATO FUTURO MINI DOLAR - WDOJ23", 1, 20, 0),
	}
	table := FuturesByPeriod(s.Futures())
	if len(table.Rows) != 2 || table.Rows[0].Key[0] != "Fevereiro" || table.Rows[1].Key[0] != "Dezembro" {
		t.Fatalf("rows = %v, want Fevereiro then Dezembro", table.Rows)
	}
}

func TestSplitFlowsPartition(t *testing.T) {
	s := fixtureStatement()
	inflow, outflow := SplitFlows(s)

	if len(inflow)+len(outflow) != len(s) {
		t.Fatalf("inflow(%d) + outflow(%d) != full set (%d)", len(inflow), len(outflow), len(s))
	}
	for _, r := range inflow {
		if r.Entry != Credit || r.Kind == KindAmortization {
			t.Errorf("inflow holds %s/%s", r.Entry, r.Kind)
		}
	}
	// Amortização lands in outflow regardless of its credit entry type.
	found := false
	for _, r := range outflow {
		if r.Kind == KindAmortization {
			found = true
			if r.Entry != Credit {
				t.Errorf("fixture Amortização should be a credit entry")
			}
		}
	}
	if !found {
		t.Error("Amortização row missing from outflow")
	}
}

func TestTableHeaders(t *testing.T) {
	table := ByPeriod(Statement{
		tx(Credit, "10/01/2023", KindDividend, "PETR4", "PETROBRAS PN", 1, 0, 100),
	})
	want := []string{"Ano", "Janeiro", "Total", "Média"}
	if !slices.Equal(table.Headers(), want) {
		t.Errorf("Headers() = %v, want %v", table.Headers(), want)
	}
}
