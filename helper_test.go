package pcquote

import "go.uber.org/zap"

// testCatalog is a small catalog with explicit costs.
func testCatalog() *Catalog {
	return NewCatalog(
		NewCatalogEntry(CPU, "i5-13400F", Y(1000), Y(1299)),
		NewCatalogEntry(CPU, "R5-7600X", Y(1400), Y(1699)),
		NewCatalogEntry(Motherboard, "B760M", Y(700), Y(899)),
		NewCatalogEntry(Memory, "16GB DDR5", Y(380), Y(499)),
		NewCatalogEntry(GPU, "RTX 4060", Y(2100), Y(2499)),
		NewCatalogEntry(Case, "Loss Leader", Y(400), Y(299)),
	)
}

// costOf returns an entered cost.
func costOf(m Money) *Money { return &m }

// mustFind returns a catalog entry or panics.
func mustFind(c *Catalog, slot Slot, name string) CatalogEntry {
	e, ok := c.Find(slot, name)
	if !ok {
		panic("no catalog entry " + string(slot) + " " + name)
	}
	return e
}

// assertMoney is a helper for comparing amounts in tests.
func assertMoney(t interface {
	Helper()
	Errorf(string, ...any)
}, name string, got, want Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", name, got.Plain(), want.Plain())
	}
}

// sameLine compares two line items field by field.
func sameLine(a, b LineItem) bool {
	return a.Name == b.Name &&
		a.UnitCost.Equal(b.UnitCost) &&
		a.UnitPrice.Equal(b.UnitPrice) &&
		a.Quantity == b.Quantity &&
		a.Custom == b.Custom &&
		a.ManualCost == b.ManualCost
}

func nopLogger() *zap.Logger { return zap.NewNop() }
