package pcquote

// LineItem is the selection for one slot.
type LineItem struct {
	Name      string // empty means the slot is unoccupied
	UnitCost  Money
	UnitPrice Money
	Quantity  int
	Custom    bool // not backed by a catalog entry
	// ManualCost is set once the cost was typed in, it is then never replaced
	// by a catalog or estimated cost.
	ManualCost bool
}

// Active reports whether the line counts toward totals and exports.
//
// A line with a cost but no price is not confirmed yet and contributes nothing.
func (li LineItem) Active() bool {
	return li.Name != "" && li.Quantity > 0 && li.UnitPrice.IsPositive()
}

// Subtotal is the sale price of the line.
func (li LineItem) Subtotal() Money { return LineSubtotal(li) }

// Profit is the margin of the line, possibly negative.
func (li LineItem) Profit() Money { return LineProfit(li) }

// MarshalJSON writes the line in a stable field order.
func (li LineItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", li.Name)
	w.Append("cost", li.UnitCost)
	w.Append("price", li.UnitPrice)
	w.Append("quantity", li.Quantity)
	w.Optional("custom", li.Custom)
	w.Optional("manualCost", li.ManualCost)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a line, coercing malformed numbers to 0.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var temp struct {
		Name       string `json:"name"`
		Cost       Money  `json:"cost"`
		Price      Money  `json:"price"`
		Quantity   any    `json:"quantity"`
		Custom     bool   `json:"custom"`
		ManualCost bool   `json:"manualCost"`
	}
	if err := unmarshalJSON(data, &temp); err != nil {
		return err
	}
	*li = LineItem{
		Name:       temp.Name,
		UnitCost:   temp.Cost,
		UnitPrice:  temp.Price,
		Quantity:   anyQuantity(temp.Quantity),
		Custom:     temp.Custom,
		ManualCost: temp.ManualCost,
	}
	return nil
}
