package b3analyzer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PositionEntry is one ownership movement annotated with the running
// position it produced and the resulting average price.
type PositionEntry struct {
	Transaction
	PositionQty   decimal.Decimal // running quantity after this movement
	PositionValue decimal.Decimal // running cost basis after this movement
	AveragePrice  decimal.Decimal
}

// AverageCost reconstructs the running position size and weighted average
// cost of one asset from its chronological history.
//
// history must be the full chronological movement sequence of a single
// ticker (see Statement.GroupByTicker): the computation is a causal,
// order-dependent fold, and feeding it rows from several assets, or a
// partial window, merges unrelated balances. That precondition is the
// caller's to honor; detecting it here would need the same grouping the
// caller already owns.
//
// Only ownership movements (Transferência - Liquidação, Grupamento,
// Desdobro) enter the computation; other kinds are filtered out. Rules per
// row, in order:
//   - credits add quantity and value, debits subtract them;
//   - a Grupamento restates the absolute post-event share count, so the
//     running quantity is reset to the row's raw quantity instead of
//     accumulated (the running value keeps accumulating);
//   - a negative running value means the position was fully exited; both
//     accumulators reset to zero, treating the residual as rounding noise
//     rather than a short position;
//   - the row's average price is abs(value/quantity) of the running
//     position, falling back to the row's own abs(Value/Quantity) when
//     there is no position to average against.
func AverageCost(history Statement) []PositionEntry {
	movements := history.OwnershipMovements()

	var entries []PositionEntry
	var positionQty, positionValue decimal.Decimal
	for _, t := range movements {
		deltaQty, deltaValue := t.Quantity, t.Value
		if t.Entry == Debit {
			deltaQty, deltaValue = deltaQty.Neg(), deltaValue.Neg()
		}

		if t.Kind == KindGrouping {
			positionQty = t.Quantity
		} else {
			positionQty = positionQty.Add(deltaQty)
		}
		positionValue = positionValue.Add(deltaValue)

		if positionValue.IsNegative() {
			positionValue = decimal.Zero
			positionQty = decimal.Zero
		}

		entries = append(entries, PositionEntry{
			Transaction:   t,
			PositionQty:   positionQty,
			PositionValue: positionValue,
			AveragePrice:  averagePrice(positionQty, positionValue, t),
		})
	}
	return entries
}

// averagePrice is the weighted average over the running position, or the
// row's own degenerate single-row price when there is no running position
// (the very first event, or right after a liquidation reset).
func averagePrice(qty, value decimal.Decimal, t Transaction) decimal.Decimal {
	if qty.IsPositive() {
		return value.Div(qty).Abs()
	}
	if t.Quantity.IsZero() {
		return decimal.Zero
	}
	return t.Value.Div(t.Quantity).Abs()
}

// AverageCostByTicker runs AverageCost over every asset of a statement,
// returning the per-asset entries keyed by ticker.
func AverageCostByTicker(s Statement) map[string][]PositionEntry {
	result := make(map[string][]PositionEntry)
	for ticker, history := range s.GroupByTicker() {
		if entries := AverageCost(history); len(entries) > 0 {
			result[ticker] = entries
		}
	}
	return result
}

// String renders a compact audit line for logs and tests.
func (e PositionEntry) String() string {
	return fmt.Sprintf("%s %s %s qty=%s value=%s avg=%s",
		e.Date, e.Ticker, e.Kind, e.PositionQty, e.PositionValue, e.AveragePrice)
}
