package pcquote

// LineSubtotal returns unitPrice * quantity.
func LineSubtotal(item LineItem) Money {
	return item.UnitPrice.Mul(item.Quantity)
}

// LineProfit returns (unitPrice - unitCost) * quantity.
//
// It is not floored: a negative profit flags a loss-making line and must be
// shown as such.
func LineProfit(item LineItem) Money {
	return item.UnitPrice.Sub(item.UnitCost).Mul(item.Quantity)
}

// Totals are the figures of the active lines of a Ledger.
type Totals struct {
	Price  Money // sum of subtotals
	Cost   Money // sum of unitCost * quantity
	Profit Money // sum of line profits
	Lines  int   // number of active lines
}

// ComputeTotals sums the active lines of the ledger.
//
// Totals are computed from scratch on every call, there is nothing to
// invalidate.
func ComputeTotals(l *Ledger) Totals {
	var t Totals
	for _, item := range l.Lines() {
		if !item.Active() {
			continue
		}
		t.Price = t.Price.Add(LineSubtotal(item))
		t.Cost = t.Cost.Add(item.UnitCost.Mul(item.Quantity))
		t.Profit = t.Profit.Add(LineProfit(item))
		t.Lines++
	}
	return t
}
