package renderer

import "github.com/etnz/pcquote"

// Cards is the per-slot view of the ledger: every slot gets a card, selected
// or not.
type Cards struct {
	ShowProfit bool   `json:"showProfit"`
	Cards      []Card `json:"cards"`
	Totals     Totals `json:"totals"`
}

// Card is a slot and its line, if any.
type Card struct {
	Slot pcquote.Slot `json:"slot"`
	Line *Line        `json:"line,omitempty"`
	// Choices is the number of catalog entries for the slot.
	Choices int `json:"choices,omitempty"`
}

// NewCards creates the card view of the ledger.
func NewCards(l *pcquote.Ledger, c *pcquote.Catalog) *Cards {
	v := &Cards{
		ShowProfit: true,
		Totals:     newTotals(pcquote.ComputeTotals(l)),
	}
	for _, slot := range pcquote.Slots() {
		card := Card{Slot: slot, Choices: len(c.Filter(slot))}
		if li, ok := l.Line(slot); ok {
			line := newLine(slot, li)
			card.Line = &line
		}
		v.Cards = append(v.Cards, card)
	}
	return v
}
