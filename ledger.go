package pcquote

import (
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"
)

// Field is an editable field of a line item.
type Field int

const (
	FieldName Field = iota
	FieldQuantity
	FieldCost
	FieldPrice
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldQuantity:
		return "quantity"
	case FieldCost:
		return "cost"
	case FieldPrice:
		return "price"
	default:
		return "unknown"
	}
}

// ParseField parses a field name.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return FieldName, nil
	case "quantity", "qty":
		return FieldQuantity, nil
	case "cost":
		return FieldCost, nil
	case "price":
		return FieldPrice, nil
	default:
		return 0, fmt.Errorf("unknown field: %q", s)
	}
}

// Ledger holds the current selection: at most one line item per slot.
//
// A slot with a zero quantity is never stored, it is evicted instead.
// A Ledger is owned by a single caller and is not safe for concurrent use.
type Ledger struct {
	lines       map[Slot]LineItem
	catalog     *Catalog
	subscribers []func(*Ledger)
	logger      *zap.Logger
}

// NewLedger creates an empty ledger, with an empty catalog.
func NewLedger() *Ledger {
	return &Ledger{
		lines:  make(map[Slot]LineItem),
		logger: zap.NewNop(),
	}
}

// UseCatalog sets the catalog used to resolve typed names. A nil catalog is
// an empty one, so a ledger works before its catalog is loaded.
func (l *Ledger) UseCatalog(c *Catalog) { l.catalog = c }

// Catalog returns the catalog in use, possibly nil.
func (l *Ledger) Catalog() *Catalog { return l.catalog }

// SetLogger sets the logger used to report soft failures.
func (l *Ledger) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l.logger = logger
}

// Subscribe registers a function called after every mutation.
func (l *Ledger) Subscribe(f func(*Ledger)) {
	l.subscribers = append(l.subscribers, f)
}

func (l *Ledger) changed() {
	for _, f := range l.subscribers {
		f(l)
	}
}

// Len returns the number of occupied slots.
func (l *Ledger) Len() int { return len(l.lines) }

// Line returns the line item of a slot.
func (l *Ledger) Line(slot Slot) (LineItem, bool) {
	li, ok := l.lines[slot]
	return li, ok
}

// Lines iterates over occupied slots in canonical slot order.
func (l *Ledger) Lines() iter.Seq2[Slot, LineItem] {
	return func(yield func(Slot, LineItem) bool) {
		if l == nil {
			return
		}
		for _, slot := range slots {
			li, ok := l.lines[slot]
			if !ok {
				continue
			}
			if !yield(slot, li) {
				return
			}
		}
	}
}

// set stores the line or evicts it when its quantity is 0.
func (l *Ledger) set(slot Slot, li LineItem) {
	if li.Quantity <= 0 {
		delete(l.lines, slot)
		return
	}
	l.lines[slot] = li
}

// SelectFromCatalog replaces the line of the slot with one unit of the entry.
func (l *Ledger) SelectFromCatalog(slot Slot, e CatalogEntry) {
	l.set(slot, LineItem{
		Name:      e.Name,
		UnitCost:  e.Cost,
		UnitPrice: e.Price,
		Quantity:  1,
	})
	l.changed()
}

// SetCustomLine sets a free-text line.
//
// The slot is evicted instead when the name is empty, or the quantity or the
// price is not positive: incomplete input never produces a priced line.
// A nil cost means no cost was entered, the estimated cost is used. Any
// entered cost, 0 included, is kept as a manual cost.
func (l *Ledger) SetCustomLine(slot Slot, name string, price Money, cost *Money, quantity int) {
	name = strings.TrimSpace(name)
	if name == "" || quantity <= 0 || !price.IsPositive() {
		delete(l.lines, slot)
		l.changed()
		return
	}
	li := LineItem{
		Name:       name,
		UnitCost:   EstimatedCost(price),
		UnitPrice:  price,
		Quantity:   quantity,
		Custom:     true,
		ManualCost: cost != nil,
	}
	if cost != nil {
		li.UnitCost = *cost
	}
	l.set(slot, li)
	l.changed()
}

// AdjustQuantity adds delta to the quantity of the slot, within 0 and
// MaxQuantity. A slot reaching 0 is evicted. Adjusting an empty slot does
// nothing.
func (l *Ledger) AdjustQuantity(slot Slot, delta int) {
	li, ok := l.lines[slot]
	if !ok {
		return
	}
	delta = min(max(delta, -MaxQuantity), MaxQuantity)
	li.Quantity = min(MaxQuantity, max(0, li.Quantity+delta))
	l.set(slot, li)
	l.changed()
}

// EditField updates a single field of a slot from raw user input.
//
// Numbers are coerced: malformed or negative input reads as 0. Setting the
// quantity to 0 evicts the slot, other partial edits never do. Typing a name
// on an empty slot creates a line with a quantity of 1.
func (l *Ledger) EditField(slot Slot, field Field, value string) {
	li, exists := l.lines[slot]
	switch field {
	case FieldName:
		name := strings.TrimSpace(value)
		if name == "" {
			delete(l.lines, slot)
			break
		}
		if !exists {
			li = LineItem{Quantity: 1, Custom: true}
		}
		li.Name = name
		if e, ok := l.catalog.Find(slot, name); ok {
			li.Custom = false
			li.UnitPrice = e.Price
			if !li.ManualCost {
				li.UnitCost = e.Cost
			}
		} else {
			li.Custom = true
			if !li.ManualCost {
				li.UnitCost = EstimatedCost(li.UnitPrice)
			}
		}
		l.set(slot, li)

	case FieldQuantity:
		q := ParseQuantity(value)
		if !exists && q == 0 {
			return
		}
		if !exists {
			li = LineItem{Custom: true}
		}
		li.Quantity = q
		l.set(slot, li)

	case FieldCost:
		if !exists {
			li = LineItem{Quantity: 1, Custom: true}
		}
		li.UnitCost = ParseAmount(value)
		li.ManualCost = true
		l.set(slot, li)

	case FieldPrice:
		if !exists {
			li = LineItem{Quantity: 1, Custom: true}
		}
		li.UnitPrice = ParseAmount(value)
		if li.Custom && !li.ManualCost {
			li.UnitCost = EstimatedCost(li.UnitPrice)
		}
		l.set(slot, li)

	default:
		l.logger.Warn("ignoring edit of unknown field", zap.Stringer("slot", slot), zap.Int("field", int(field)))
		return
	}
	l.changed()
}

// ClearSlot removes the line of the slot, if any.
func (l *Ledger) ClearSlot(slot Slot) {
	if _, ok := l.lines[slot]; !ok {
		return
	}
	delete(l.lines, slot)
	l.changed()
}

// ClearAll empties the ledger.
func (l *Ledger) ClearAll() {
	l.lines = make(map[Slot]LineItem)
	l.changed()
}

// Snapshot returns a copy of all the lines, suitable for persistence.
func (l *Ledger) Snapshot() Snapshot {
	s := make(Snapshot, len(l.lines))
	for slot, li := range l.lines {
		s[slot] = li
	}
	return s
}

// Restore replaces the whole ledger with the snapshot.
//
// Unknown slots and lines with a zero quantity are dropped, negative amounts
// are read as 0.
func (l *Ledger) Restore(s Snapshot) {
	lines := make(map[Slot]LineItem, len(s))
	for slot, li := range s {
		if !slot.Valid() {
			l.logger.Warn("ignoring unknown slot in snapshot", zap.String("slot", string(slot)))
			continue
		}
		if li.UnitCost.IsNegative() {
			li.UnitCost = Money{}
		}
		if li.UnitPrice.IsNegative() {
			li.UnitPrice = Money{}
		}
		if li.Quantity <= 0 {
			continue
		}
		lines[slot] = li
	}
	l.lines = lines
	l.changed()
}
