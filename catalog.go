package pcquote

import (
	"iter"
	"strings"
)

// CatalogEntry is a part that can be selected for a slot.
type CatalogEntry struct {
	Slot  Slot
	Name  string // lookup key within the slot
	Cost  Money  // wholesale price
	Price Money  // sale price
	// HasCost is false when the source record had no cost, Cost is then the
	// EstimatedCost of the price.
	HasCost bool

	// Optional attributes used by the compatibility checks.
	Brand   string
	Socket  string
	Wattage int

	// Presets lists the indices of the catalog presets this entry belongs to.
	Presets []int
}

// NewCatalogEntry creates an entry with an explicit cost.
func NewCatalogEntry(slot Slot, name string, cost, price Money) CatalogEntry {
	return CatalogEntry{Slot: slot, Name: name, Cost: cost, Price: price, HasCost: true}
}

// Catalog is an immutable, ordered list of parts.
//
// The zero value and a nil *Catalog are empty catalogs: lookups find nothing.
type Catalog struct {
	entries []CatalogEntry
	index   map[Slot]map[string]int // first entry per slot and name
}

// NewCatalog creates a catalog with the given entries, in order.
// Entries with an unknown slot are ignored.
func NewCatalog(entries ...CatalogEntry) *Catalog {
	c := &Catalog{index: make(map[Slot]map[string]int)}
	for _, e := range entries {
		if !e.Slot.Valid() {
			continue
		}
		if !e.HasCost && e.Cost.IsZero() {
			e.Cost = EstimatedCost(e.Price)
		}
		byName, ok := c.index[e.Slot]
		if !ok {
			byName = make(map[string]int)
			c.index[e.Slot] = byName
		}
		if _, exists := byName[e.Name]; !exists {
			byName[e.Name] = len(c.entries)
		}
		c.entries = append(c.entries, e)
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Find returns the entry with this exact slot and name.
// Duplicated names are not distinguished, the first one wins.
func (c *Catalog) Find(slot Slot, name string) (CatalogEntry, bool) {
	if c == nil {
		return CatalogEntry{}, false
	}
	i, ok := c.index[slot][name]
	if !ok {
		return CatalogEntry{}, false
	}
	return c.entries[i], true
}

// All iterates over all entries in catalog order.
func (c *Catalog) All() iter.Seq[CatalogEntry] {
	return func(yield func(CatalogEntry) bool) {
		if c == nil {
			return
		}
		for _, e := range c.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Filter returns the entries of a slot, in catalog order.
func (c *Catalog) Filter(slot Slot) []CatalogEntry {
	return c.Search(CatalogQuery{Slot: slot})
}

// Slots returns the slots that have at least one entry, in canonical order.
func (c *Catalog) Slots() []Slot {
	var res []Slot
	for _, s := range slots {
		if c != nil && len(c.index[s]) > 0 {
			res = append(res, s)
		}
	}
	return res
}

// CatalogQuery selects catalog entries. Zero fields match everything.
type CatalogQuery struct {
	Slot     Slot
	Text     string // case-insensitive substring of the name
	MaxPrice Money  // budget, ignored when zero
}

// Match reports whether the entry satisfies the query.
func (q CatalogQuery) Match(e CatalogEntry) bool {
	if q.Slot != "" && e.Slot != q.Slot {
		return false
	}
	if q.Text != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(strings.TrimSpace(q.Text))) {
		return false
	}
	if q.MaxPrice.IsPositive() && e.Price.GreaterThan(q.MaxPrice) {
		return false
	}
	return true
}

// Search returns the entries matching the query, in catalog order.
func (c *Catalog) Search(q CatalogQuery) []CatalogEntry {
	var res []CatalogEntry
	for e := range c.All() {
		if q.Match(e) {
			res = append(res, e)
		}
	}
	return res
}
