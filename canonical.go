package b3analyzer

import (
	"fmt"
	"strings"

	"b3analyzer/date"
	"github.com/shopspring/decimal"
)

// futuresMarkers are the contract family codes identifying futures rows:
// mini-dollar and mini-index contracts.
var futuresMarkers = []string{"WDO", "WIN"}

// containsAny reports whether s contains at least one of the substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Canonicalize turns concatenated raw statement rows into the canonical
// chronologically-sorted statement.
//
// The whole batch is rejected on the first unparseable date, entry type or
// number: period aggregation has no tolerance for missing rows, so failing
// loudly beats silently dropping them.
func Canonicalize(raws []RawRow) (Statement, error) {
	s := make(Statement, 0, len(raws))
	for i, raw := range raws {
		t, err := canonicalize(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		s = append(s, t)
	}
	s.sortByDate()
	return s, nil
}

func canonicalize(raw RawRow) (Transaction, error) {
	entry, err := ParseEntryType(raw.Entry)
	if err != nil {
		return Transaction{}, err
	}
	day, err := date.Parse(raw.Date)
	if err != nil {
		return Transaction{}, err
	}
	quantity, err := parseDecimal(colQuantity, raw.Quantity)
	if err != nil {
		return Transaction{}, err
	}
	unitPrice, err := parseDecimal(colUnitPrice, raw.UnitPrice)
	if err != nil {
		return Transaction{}, err
	}
	value, err := parseDecimal(colValue, raw.Value)
	if err != nil {
		return Transaction{}, err
	}

	ticker, description := splitProduct(raw.Product)
	if containsAny(description, futuresMarkers) {
		// Raw futures tickers are ambiguous across expiry months; re-derive a
		// distinguishing contract code from the rewritten description.
		description = description + " - " + ticker
		ticker = truncate(description, 6)
	}

	return Transaction{
		Entry:       entry,
		Date:        day,
		Kind:        raw.Kind,
		Ticker:      ticker,
		Description: description,
		Institution: raw.Institution,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Value:       value,
		Year:        day.Year(),
		Month:       day.Month(),
		Week:        day.ISOWeek(),
	}, nil
}

// splitProduct derives (ticker, description) from the raw Produto column:
// the ticker is the leading token, and the remainder is cleaned of the
// literal "- " separator artifact wherever it occurs.
func splitProduct(product string) (ticker, description string) {
	ticker, description, _ = strings.Cut(product, " ")
	description = strings.ReplaceAll(description, "- ", "")
	return ticker, description
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func parseDecimal(col, value string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("column %q: invalid number %q: %w", col, value, err)
	}
	return d, nil
}
