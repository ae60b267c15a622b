package renderer

import (
	"github.com/etnz/pcquote"
)

// Ledger is the view of the working ledger.
// Amounts are kept as pcquote.Money so templates can format them.
type Ledger struct {
	Title string `json:"title"`
	// Pending counts the lines that are not priced yet.
	Pending    int      `json:"pending,omitempty"`
	ShowProfit bool     `json:"showProfit"`
	Lines      []Line   `json:"lines"`
	Totals     Totals   `json:"totals"`
	Issues     []string `json:"issues,omitempty"`
}

// Line is a ledger line. Inactive lines are listed but their subtotal and
// profit are not shown.
type Line struct {
	Slot     pcquote.Slot  `json:"slot"`
	Name     string        `json:"name"`
	Quantity int           `json:"quantity"`
	Cost     pcquote.Money `json:"cost"`
	Price    pcquote.Money `json:"price"`
	Subtotal pcquote.Money `json:"subtotal"`
	Profit   pcquote.Money `json:"profit"`
	Custom   bool          `json:"custom,omitempty"`
	Active   bool          `json:"active,omitempty"`
}

// Totals of the active lines.
type Totals struct {
	Price  pcquote.Money `json:"price"`
	Cost   pcquote.Money `json:"cost"`
	Profit pcquote.Money `json:"profit"`
	Lines  int           `json:"lines"`
}

// NewLedger creates the view of the ledger, with the given compatibility issues.
func NewLedger(l *pcquote.Ledger, issues []pcquote.Issue) *Ledger {
	v := &Ledger{
		Title:      "电脑配置单",
		ShowProfit: true,
		Totals:     newTotals(pcquote.ComputeTotals(l)),
	}
	for slot, li := range l.Lines() {
		line := newLine(slot, li)
		if !line.Active {
			v.Pending++
		}
		v.Lines = append(v.Lines, line)
	}
	for _, issue := range issues {
		v.Issues = append(v.Issues, issue.Message)
	}
	return v
}

func newLine(slot pcquote.Slot, li pcquote.LineItem) Line {
	return Line{
		Slot:     slot,
		Name:     li.Name,
		Quantity: li.Quantity,
		Cost:     li.UnitCost,
		Price:    li.UnitPrice,
		Subtotal: li.Subtotal(),
		Profit:   li.Profit(),
		Custom:   li.Custom,
		Active:   li.Active(),
	}
}

func newTotals(t pcquote.Totals) Totals {
	return Totals{Price: t.Price, Cost: t.Cost, Profit: t.Profit, Lines: t.Lines}
}
