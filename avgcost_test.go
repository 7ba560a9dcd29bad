package b3analyzer

import (
	"testing"
)

func TestAverageCostAccumulates(t *testing.T) {
	history := Statement{
		tx(Credit, "02/01/2023", KindTransfer, "PETR4", "PETROBRAS PN", 100, 10, 1000),
		tx(Credit, "02/02/2023", KindTransfer, "PETR4", "PETROBRAS PN", 100, 20, 2000),
	}
	entries := AverageCost(history)
	if len(entries) != 2 {
		t.Fatalf("AverageCost() returned %d entries, want 2", len(entries))
	}

	first := entries[0]
	if !first.PositionQty.Equal(D(100)) || !first.PositionValue.Equal(D(1000)) {
		t.Errorf("first position = %s/%s, want 100/1000", first.PositionQty, first.PositionValue)
	}
	if !first.AveragePrice.Equal(D(10)) {
		t.Errorf("first average = %s, want 10", first.AveragePrice)
	}

	second := entries[1]
	if !second.PositionQty.Equal(D(200)) || !second.PositionValue.Equal(D(3000)) {
		t.Errorf("second position = %s/%s, want 200/3000", second.PositionQty, second.PositionValue)
	}
	if !second.AveragePrice.Equal(D(15)) {
		t.Errorf("second average = %s, want weighted 15", second.AveragePrice)
	}
}

// Selling the whole position leaves a negative residual value; the guard
// resets both accumulators and the row falls back to its own price.
func TestAverageCostLiquidationReset(t *testing.T) {
	history := Statement{
		tx(Credit, "02/01/2023", KindTransfer, "PETR4", "PETROBRAS PN", 100, 10, 1000),
		tx(Debit, "10/01/2023", KindTransfer, "PETR4", "PETROBRAS PN", 100, 12, 1200),
	}
	entries := AverageCost(history)
	last := entries[len(entries)-1]

	if !last.PositionQty.IsZero() || !last.PositionValue.IsZero() {
		t.Errorf("position after full exit = %s/%s, want 0/0", last.PositionQty, last.PositionValue)
	}
	if !last.AveragePrice.Equal(D(12)) {
		t.Errorf("average after reset = %s, want fallback abs(1200/100) = 12", last.AveragePrice)
	}
}

// A Grupamento restates the absolute share count: the running quantity is
// replaced, not accumulated, while the running value is undisturbed.
func TestAverageCostGroupingReset(t *testing.T) {
	history := Statement{
		tx(Credit, "02/01/2023", KindTransfer, "MGLU3", "MAGAZINE LUIZA ON", 400, 2.50, 1000),
		tx(Credit, "15/03/2023", KindGrouping, "MGLU3", "MAGAZINE LUIZA ON", 50, 0, 0),
	}
	entries := AverageCost(history)
	last := entries[len(entries)-1]

	if !last.PositionQty.Equal(D(50)) {
		t.Errorf("position qty after Grupamento = %s, want exactly 50", last.PositionQty)
	}
	if !last.PositionValue.Equal(D(1000)) {
		t.Errorf("position value after Grupamento = %s, want 1000 undisturbed", last.PositionValue)
	}
	if !last.AveragePrice.Equal(D(20)) {
		t.Errorf("average after Grupamento = %s, want 1000/50 = 20", last.AveragePrice)
	}
}

// A Desdobro accumulates the extra shares like any credit, diluting the
// average price without changing the value.
func TestAverageCostSplit(t *testing.T) {
	history := Statement{
		tx(Credit, "02/01/2023", KindTransfer, "VALE3", "VALE ON", 100, 10, 1000),
		tx(Credit, "20/04/2023", KindSplit, "VALE3", "VALE ON", 100, 0, 0),
	}
	entries := AverageCost(history)
	last := entries[len(entries)-1]

	if !last.PositionQty.Equal(D(200)) {
		t.Errorf("position qty after Desdobro = %s, want 200", last.PositionQty)
	}
	if !last.AveragePrice.Equal(D(5)) {
		t.Errorf("average after Desdobro = %s, want 1000/200 = 5", last.AveragePrice)
	}
}

func TestAverageCostIgnoresNonOwnershipKinds(t *testing.T) {
	history := Statement{
		tx(Credit, "02/01/2023", KindTransfer, "PETR4", "PETROBRAS PN", 100, 10, 1000),
		tx(Credit, "10/01/2023", KindDividend, "PETR4", "PETROBRAS PN", 100, 0, 85),
	}
	entries := AverageCost(history)
	if len(entries) != 1 {
		t.Fatalf("AverageCost() returned %d entries, want 1 (dividend filtered out)", len(entries))
	}
}

func TestAverageCostRestartsAfterLiquidation(t *testing.T) {
	history := Statement{
		tx(Credit, "02/01/2023", KindTransfer, "PETR4", "PETROBRAS PN", 100, 10, 1000),
		tx(Debit, "10/01/2023", KindTransfer, "PETR4", "PETROBRAS PN", 100, 12, 1200),
		tx(Credit, "20/01/2023", KindTransfer, "PETR4", "PETROBRAS PN", 50, 30, 1500),
	}
	entries := AverageCost(history)
	last := entries[len(entries)-1]

	if !last.PositionQty.Equal(D(50)) || !last.PositionValue.Equal(D(1500)) {
		t.Errorf("position after restart = %s/%s, want 50/1500", last.PositionQty, last.PositionValue)
	}
	if !last.AveragePrice.Equal(D(30)) {
		t.Errorf("average after restart = %s, want 30", last.AveragePrice)
	}
}

func TestAverageCostByTicker(t *testing.T) {
	s := Statement{
		tx(Credit, "02/01/2023", KindTransfer, "PETR4", "PETROBRAS PN", 100, 10, 1000),
		tx(Credit, "03/01/2023", KindTransfer, "VALE3", "VALE ON", 10, 70, 700),
		tx(Credit, "04/01/2023", KindTransfer, "PETR4", "PETROBRAS PN", 100, 20, 2000),
	}
	byTicker := AverageCostByTicker(s)
	if len(byTicker) != 2 {
		t.Fatalf("AverageCostByTicker() returned %d assets, want 2", len(byTicker))
	}
	petr := byTicker["PETR4"]
	if len(petr) != 2 {
		t.Fatalf("PETR4 entries = %d, want 2", len(petr))
	}
	// Balances never mix across assets.
	if !petr[1].PositionQty.Equal(D(200)) {
		t.Errorf("PETR4 final qty = %s, want 200", petr[1].PositionQty)
	}
	if !byTicker["VALE3"][0].PositionQty.Equal(D(10)) {
		t.Errorf("VALE3 qty = %s, want 10", byTicker["VALE3"][0].PositionQty)
	}
}
