package b3analyzer

import (
	"slices"
	"strings"
)

// Asset classifiers. Each is a pure filter over a canonical statement: the
// receiver is never mutated, sign adjustments are applied to copies. A row
// may match more than one classifier (a 5-character ticker ending in 34 is
// selected both as equity and as depositary receipt); the overlap is known
// and deliberately left unresolved.

// bdrSuffixes are the two-digit codes marking depositary receipt tickers.
var bdrSuffixes = []string{"35", "34", "33", "32", "31"}

// fiiMarkers are the description substrings marking real-estate fund rows.
var fiiMarkers = []string{
	"FII",
	"INVESTIMENTO IMOBILIARIO",
	"INVESTIMENTO IMOBILIÁRIO",
	"INV IMOB",
}

// Equities selects stock movements: a 5-character ticker containing the
// digit 3 or 4.
func (s Statement) Equities() Statement {
	var out Statement
	for _, t := range s {
		if len([]rune(t.Ticker)) == 5 && containsAny(t.Ticker, []string{"3", "4"}) {
			out = append(out, t)
		}
	}
	return out
}

// DepositaryReceipts selects BDR movements by ticker suffix code.
func (s Statement) DepositaryReceipts() Statement {
	var out Statement
	for _, t := range s {
		if containsAny(t.Ticker, bdrSuffixes) {
			out = append(out, t)
		}
	}
	return out
}

// RealEstateFunds selects FII movements: a fund marker in the description
// and "11" in the ticker. Rendimento rows are excluded here because they are
// income, not position movements (Dividendo rows remain eligible).
// Amortização and Resgate reduce the position even though the broker tags
// them as credits, so their operation value is negated.
func (s Statement) RealEstateFunds() Statement {
	var out Statement
	for _, t := range s {
		if !containsAny(t.Description, fiiMarkers) {
			continue
		}
		if !strings.Contains(t.Ticker, "11") {
			continue
		}
		if t.Kind == KindIncome {
			continue
		}
		if t.Kind == KindAmortization || t.Kind == KindRedemption {
			t.Value = t.Value.Neg()
		}
		out = append(out, t)
	}
	out.sortByDate()
	return out
}

// Futures selects mini-dollar and mini-index contract movements. Buys are
// recorded with a negated unit price so that summing unit prices per
// contract yields the point gain directly.
func (s Statement) Futures() Statement {
	var out Statement
	for _, t := range s {
		if !containsAny(t.Description, futuresMarkers) {
			continue
		}
		if t.Kind == KindBuy {
			t.UnitPrice = t.UnitPrice.Neg()
		}
		out = append(out, t)
	}
	out.sortByDate()
	return out
}

// Income selects income events by movement kind: Amortização, Dividendo,
// Juros, Juros Sobre Capital Próprio and Rendimento. Income cross-cuts the
// ticker-based classes and is selected by kind only.
func (s Statement) Income() Statement {
	var out Statement
	for _, t := range s {
		if slices.Contains(incomeKinds, t.Kind) {
			out = append(out, t)
		}
	}
	return out
}

// OwnershipMovements selects the rows that affect position size: custody
// transfers and the Grupamento/Desdobro corporate actions. This is the
// input domain of the average-cost computation.
func (s Statement) OwnershipMovements() Statement {
	var out Statement
	for _, t := range s {
		if slices.Contains(ownershipKinds, t.Kind) {
			out = append(out, t)
		}
	}
	return out
}
