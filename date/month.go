package date

import "time"

// monthNames maps month numbers to their Portuguese names.
//
// The table is fixed on purpose: month ordering in every period pivot must be
// calendar order, and deriving names from the runtime locale would make that
// ordering (and the names themselves) configuration-dependent.
var monthNames = [...]string{
	time.January:   "Janeiro",
	time.February:  "Fevereiro",
	time.March:     "Março",
	time.April:     "Abril",
	time.May:       "Maio",
	time.June:      "Junho",
	time.July:      "Julho",
	time.August:    "Agosto",
	time.September: "Setembro",
	time.October:   "Outubro",
	time.November:  "Novembro",
	time.December:  "Dezembro",
}

// MonthName returns the Portuguese name for a month.
func MonthName(m time.Month) string { return monthNames[m] }

// Months returns the twelve months in calendar order.
func Months() []time.Month {
	months := make([]time.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, m)
	}
	return months
}
