package renderer

import (
	"time"

	"github.com/etnz/pcquote"
)

// Quote is the view of an exported quote.
type Quote struct {
	ID         string `json:"id"`
	Created    string `json:"created"`
	ShowProfit bool   `json:"showProfit"`
	Lines      []Line `json:"lines"`
	Totals     Totals `json:"totals"`
}

// NewQuote creates the view of the quote. The profit is only shown on
// internal copies.
func NewQuote(q pcquote.Quote, showProfit bool) *Quote {
	v := &Quote{
		ID:         q.ID.String(),
		Created:    q.Created.Format(time.DateTime),
		ShowProfit: showProfit,
		Totals:     newTotals(q.Totals),
	}
	for _, l := range q.Lines {
		v.Lines = append(v.Lines, Line{
			Slot:     l.Slot,
			Name:     l.Name,
			Quantity: l.Quantity,
			Cost:     l.UnitCost,
			Price:    l.UnitPrice,
			Subtotal: l.Subtotal,
			Profit:   l.Profit,
			Custom:   l.Custom,
			Active:   true,
		})
	}
	return v
}
