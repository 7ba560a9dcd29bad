package b3analyzer

import (
	"fmt"
	"slices"
	"time"

	"b3analyzer/date"
	"github.com/shopspring/decimal"
)

// EntryType is the direction of a cash or asset flow as reported by B3.
type EntryType string

const (
	Credit EntryType = "Credito"
	Debit  EntryType = "Debito"
)

// ParseEntryType parses the Entrada/Saída column of a statement.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case Credit:
		return Credit, nil
	case Debit:
		return Debit, nil
	default:
		return "", fmt.Errorf("unknown entry type %q", s)
	}
}

// Movement kinds assigned by the broker. The list is not exhaustive: the
// Kind field carries whatever label the statement reports, these are only
// the ones the pipeline gives meaning to.
const (
	KindBuy              = "Compra"
	KindSell             = "Venda"
	KindTransfer         = "Transferência - Liquidação"
	KindGrouping         = "Grupamento"
	KindSplit            = "Desdobro"
	KindAmortization     = "Amortização"
	KindRedemption       = "Resgate"
	KindIncome           = "Rendimento"
	KindDividend         = "Dividendo"
	KindInterest         = "Juros"
	KindInterestOnEquity = "Juros Sobre Capital Próprio"
)

// incomeKinds are the movement kinds reported as investment income.
var incomeKinds = []string{
	KindAmortization,
	KindDividend,
	KindInterest,
	KindInterestOnEquity,
	KindIncome,
}

// ownershipKinds are the movement kinds that affect position size: custody
// transfers in or out, and the corporate actions restating share count.
var ownershipKinds = []string{
	KindTransfer,
	KindGrouping,
	KindSplit,
}

// Transaction is one canonical movement from a B3 statement.
//
// Ticker and Description are derived from the raw Produto column, and
// Year, Month and Week from the settlement date. Once canonicalized a
// transaction is immutable; classifiers that adjust signs work on copies.
type Transaction struct {
	Entry       EntryType
	Date        date.Date
	Kind        string // broker-assigned movement label
	Ticker      string
	Description string
	Institution string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Value       decimal.Decimal // total cash value of the movement

	// Calendar attributes derived from Date.
	Year  int
	Month time.Month
	Week  int // ISO week number
}

// MonthName returns the Portuguese month name of the transaction.
func (t Transaction) MonthName() string { return date.MonthName(t.Month) }

// IsIncome reports whether the movement kind is an income event.
func (t Transaction) IsIncome() bool { return slices.Contains(incomeKinds, t.Kind) }

// Statement is a set of canonical transactions, kept in chronological order.
type Statement []Transaction

// sortByDate restores the canonical chronological order. The sort is stable
// so rows sharing a settlement date keep their statement order.
func (s Statement) sortByDate() {
	slices.SortStableFunc(s, func(a, b Transaction) int {
		return date.Compare(a.Date, b.Date)
	})
}

// Tickers returns the distinct tickers of the statement, sorted ascending.
func (s Statement) Tickers() []string {
	seen := make(map[string]bool)
	var tickers []string
	for _, t := range s {
		if !seen[t.Ticker] {
			seen[t.Ticker] = true
			tickers = append(tickers, t.Ticker)
		}
	}
	slices.Sort(tickers)
	return tickers
}

// GroupByTicker partitions the statement per asset, preserving chronological
// order within each group. It is the pre-grouping the average-cost
// computation requires.
func (s Statement) GroupByTicker() map[string]Statement {
	groups := make(map[string]Statement)
	for _, t := range s {
		groups[t.Ticker] = append(groups[t.Ticker], t)
	}
	return groups
}
