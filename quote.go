package pcquote

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuoteLine is an exported line: an active slot of the ledger.
type QuoteLine struct {
	Slot      Slot
	Name      string
	Quantity  int
	UnitPrice Money
	UnitCost  Money
	Subtotal  Money
	Profit    Money
	Custom    bool
}

// Quote is the exported form of a ledger.
type Quote struct {
	ID      uuid.UUID
	Created time.Time
	Lines   []QuoteLine
	Totals  Totals
}

// NewQuote builds the quote of the ledger, listing active slots in the given
// order (canonical order when empty).
//
// Inactive slots are never exported, and the totals are ComputeTotals of the
// same ledger: an exported quote always agrees with the screen.
func NewQuote(l *Ledger, order ...Slot) Quote {
	if len(order) == 0 {
		order = slots
	}
	q := Quote{
		ID:      uuid.New(),
		Created: time.Now(),
		Totals:  ComputeTotals(l),
	}
	for _, slot := range order {
		li, ok := l.Line(slot)
		if !ok || !li.Active() {
			continue
		}
		q.Lines = append(q.Lines, QuoteLine{
			Slot:      slot,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			UnitCost:  li.UnitCost,
			Subtotal:  LineSubtotal(li),
			Profit:    LineProfit(li),
			Custom:    li.Custom,
		})
	}
	return q
}

// IsEmpty reports whether the quote has no line.
func (q Quote) IsEmpty() bool { return len(q.Lines) == 0 }

// TextOptions controls the text rendition of a quote.
type TextOptions struct {
	Symbol        string // currency symbol, "¥" by default
	IncludeProfit bool   // add the profit line, for internal copies
	OmitTimestamp bool
}

const quoteRule = "=============================="

// WriteText writes the quote in the plain text layout used for the clipboard
// and for downloaded files:
//
//	电脑配置单
//	生成时间: 2025-03-01 10:00:00
//	==============================
//
//	CPU: Core i5-13400F - ¥1100
//	内存: 金士顿 16GB DDR4 ×2 - ¥700
//
//	==============================
//	总计: ¥1800
//
//	备注: 此配置单由电脑配置生成器生成
func (q Quote) WriteText(w io.Writer, opts TextOptions) error {
	sym := opts.Symbol
	if sym == "" {
		sym = "¥"
	}
	var b strings.Builder
	b.WriteString("电脑配置单\n")
	if !opts.OmitTimestamp {
		fmt.Fprintf(&b, "生成时间: %s\n", q.Created.Format(time.DateTime))
	}
	b.WriteString(quoteRule + "\n\n")
	for _, line := range q.Lines {
		b.WriteString(line.Text(sym))
		b.WriteString("\n")
	}
	b.WriteString("\n" + quoteRule + "\n")
	fmt.Fprintf(&b, "总计: %s%s\n", sym, q.Totals.Price.Plain())
	if opts.IncludeProfit {
		fmt.Fprintf(&b, "利润: %s%s\n", sym, q.Totals.Profit.Plain())
	}
	b.WriteString("\n备注: 此配置单由电脑配置生成器生成\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Text returns the line as "slot: name[ ×quantity] - ¥subtotal".
func (ql QuoteLine) Text(symbol string) string {
	qty := ""
	if ql.Quantity > 1 {
		qty = fmt.Sprintf(" ×%d", ql.Quantity)
	}
	return fmt.Sprintf("%s: %s%s - %s%s", ql.Slot, ql.Name, qty, symbol, ql.Subtotal.Plain())
}

// FileName returns a file name for the quote, e.g. "电脑配置单_2025-03-01_1a2b3c4d.txt".
func (q Quote) FileName(ext string) string {
	return fmt.Sprintf("电脑配置单_%s_%s.%s", q.Created.Format(time.DateOnly), q.ID.String()[:8], strings.TrimPrefix(ext, "."))
}

// MarshalJSON writes the quote with its lines and totals.
func (q Quote) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", q.ID.String())
	w.Append("created", q.Created.Format(time.RFC3339))
	lines := make([]jsonLine, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, jsonLine(l))
	}
	w.Append("lines", lines)
	w.Append("totalPrice", q.Totals.Price)
	w.Append("totalProfit", q.Totals.Profit)
	return w.MarshalJSON()
}

type jsonLine QuoteLine

func (l jsonLine) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("slot", string(l.Slot))
	w.Append("name", l.Name)
	w.Append("quantity", l.Quantity)
	w.Append("price", l.UnitPrice)
	w.Append("subtotal", l.Subtotal)
	w.Append("profit", l.Profit)
	w.Optional("custom", l.Custom)
	return w.MarshalJSON()
}
