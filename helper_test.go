package b3analyzer

import (
	"b3analyzer/date"
)

// tx builds a canonical transaction for tests, deriving the calendar
// attributes the way Canonicalize does.
func tx(entry EntryType, day, kind, ticker, description string, qty, price, value float64) Transaction {
	d := date.MustParse(day)
	return Transaction{
		Entry:       entry,
		Date:        d,
		Kind:        kind,
		Ticker:      ticker,
		Description: description,
		Institution: "CORRETORA TESTE",
		Quantity:    D(qty),
		UnitPrice:   D(price),
		Value:       D(value),
		Year:        d.Year(),
		Month:       d.Month(),
		Week:        d.ISOWeek(),
	}
}

// raw builds an uncanonicalized statement row for tests.
func raw(entry, day, kind, product, qty, price, value string) RawRow {
	return RawRow{
		Entry:       entry,
		Date:        day,
		Kind:        kind,
		Product:     product,
		Institution: "CORRETORA TESTE",
		Quantity:    qty,
		UnitPrice:   price,
		Value:       value,
	}
}
