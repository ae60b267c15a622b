package pcquote

import (
	"testing"
)

func TestLedger_SelectFromCatalog(t *testing.T) {
	c := testCatalog()
	l := NewLedger()
	l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))

	li, ok := l.Line(CPU)
	if !ok {
		t.Fatal("CPU slot is empty")
	}
	if li.Name != "i5-13400F" || li.Quantity != 1 || li.Custom {
		t.Errorf("unexpected line %+v", li)
	}
	assertMoney(t, "cost", li.UnitCost, Y(1000))
	assertMoney(t, "price", li.UnitPrice, Y(1299))

	// selecting again replaces the whole line.
	l.AdjustQuantity(CPU, 2)
	l.SelectFromCatalog(CPU, mustFind(c, CPU, "R5-7600X"))
	li, _ = l.Line(CPU)
	if li.Name != "R5-7600X" || li.Quantity != 1 {
		t.Errorf("selection did not replace the line: %+v", li)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestLedger_AdjustQuantity(t *testing.T) {
	c := testCatalog()
	testCases := []struct {
		name     string
		deltas   []int
		wantQty  int
		wantSlot bool
	}{
		{name: "increment", deltas: []int{+1}, wantQty: 2, wantSlot: true},
		{name: "decrement evicts", deltas: []int{-1}, wantSlot: false},
		{name: "decrement twice is a no-op", deltas: []int{-1, -1}, wantSlot: false},
		{name: "floors at zero", deltas: []int{-5}, wantSlot: false},
		{name: "up and down", deltas: []int{+3, -2}, wantQty: 2, wantSlot: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))
			for _, d := range tc.deltas {
				l.AdjustQuantity(CPU, d)
			}
			li, ok := l.Line(CPU)
			if ok != tc.wantSlot {
				t.Fatalf("slot present = %v, want %v", ok, tc.wantSlot)
			}
			if ok && li.Quantity != tc.wantQty {
				t.Errorf("quantity = %d, want %d", li.Quantity, tc.wantQty)
			}
		})
	}
}

func TestLedger_AdjustQuantityOnEmptySlot(t *testing.T) {
	l := NewLedger()
	calls := 0
	l.Subscribe(func(*Ledger) { calls++ })
	l.AdjustQuantity(GPU, +1)
	if l.Len() != 0 {
		t.Errorf("adjusting an empty slot created a line")
	}
	if calls != 0 {
		t.Errorf("subscribers called %d times, want 0", calls)
	}
}

func TestLedger_SetCustomLine(t *testing.T) {
	testCases := []struct {
		name     string
		lineName string
		price    Money
		cost     *Money
		qty      int
		wantSlot bool
		wantCost Money
		manual   bool
	}{
		{name: "valid", lineName: "Extra Cable", price: Y(20), cost: costOf(Y(5)), qty: 1, wantSlot: true, wantCost: Y(5), manual: true},
		{name: "no cost is estimated", lineName: "Extra Cable", price: Y(25), qty: 2, wantSlot: true, wantCost: Y(20)},
		{name: "zero cost is kept", lineName: "Gift Cable", price: Y(100), cost: costOf(Y(0)), qty: 1, wantSlot: true, wantCost: Y(0), manual: true},
		{name: "zero price evicts", lineName: "Extra Cable", price: Y(0), cost: costOf(Y(5)), qty: 1},
		{name: "zero quantity evicts", lineName: "Extra Cable", price: Y(20), cost: costOf(Y(5)), qty: 0},
		{name: "negative quantity evicts", lineName: "Extra Cable", price: Y(20), qty: -3},
		{name: "empty name evicts", lineName: "  ", price: Y(20), cost: costOf(Y(5)), qty: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			// a previous value must be evicted by invalid input.
			l.SetCustomLine(Other1, "previous", Y(1), costOf(Y(1)), 1)
			l.SetCustomLine(Other1, tc.lineName, tc.price, tc.cost, tc.qty)
			li, ok := l.Line(Other1)
			if ok != tc.wantSlot {
				t.Fatalf("slot present = %v, want %v", ok, tc.wantSlot)
			}
			if !ok {
				return
			}
			if !li.Custom {
				t.Errorf("line is not custom")
			}
			if li.ManualCost != tc.manual {
				t.Errorf("ManualCost = %v, want %v", li.ManualCost, tc.manual)
			}
			assertMoney(t, "cost", li.UnitCost, tc.wantCost)
			if li.Quantity != tc.qty {
				t.Errorf("quantity = %d, want %d", li.Quantity, tc.qty)
			}
		})
	}
}

func TestLedger_EditField(t *testing.T) {
	c := testCatalog()

	t.Run("name on empty slot defaults quantity to 1", func(t *testing.T) {
		l := NewLedger()
		l.EditField(Other1, FieldName, "Wifi card")
		li, ok := l.Line(Other1)
		if !ok || li.Quantity != 1 || !li.Custom {
			t.Fatalf("unexpected line %+v (present=%v)", li, ok)
		}
		if li.Active() {
			t.Errorf("a line without price must not be active")
		}
		l.EditField(Other1, FieldPrice, "120")
		li, _ = l.Line(Other1)
		if !li.Active() {
			t.Errorf("line should be active once priced")
		}
		assertMoney(t, "estimated cost", li.UnitCost, Y(96))
	})

	t.Run("quantity 0 evicts", func(t *testing.T) {
		l := NewLedger()
		l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))
		l.EditField(CPU, FieldQuantity, "0")
		if _, ok := l.Line(CPU); ok {
			t.Errorf("slot should be evicted")
		}
	})

	t.Run("malformed quantity is coerced to 0", func(t *testing.T) {
		l := NewLedger()
		l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))
		l.EditField(CPU, FieldQuantity, "abc")
		if _, ok := l.Line(CPU); ok {
			t.Errorf("slot should be evicted")
		}
	})

	t.Run("overflowing quantity is coerced to 0", func(t *testing.T) {
		l := NewLedger()
		l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))
		l.EditField(CPU, FieldQuantity, "99999999999999999999")
		if li, ok := l.Line(CPU); ok {
			t.Errorf("slot should be evicted, got quantity %d", li.Quantity)
		}
	})

	t.Run("adjusting stops at MaxQuantity", func(t *testing.T) {
		l := NewLedger()
		l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))
		l.EditField(CPU, FieldQuantity, "2147483647")
		l.AdjustQuantity(CPU, 10)
		if li, _ := l.Line(CPU); li.Quantity != MaxQuantity {
			t.Errorf("quantity = %d, want %d", li.Quantity, MaxQuantity)
		}
	})

	t.Run("negative price is coerced to 0 without eviction", func(t *testing.T) {
		l := NewLedger()
		l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))
		l.EditField(CPU, FieldPrice, "-12")
		li, ok := l.Line(CPU)
		if !ok {
			t.Fatal("partial edit evicted the slot")
		}
		assertMoney(t, "price", li.UnitPrice, Y(0))
		if li.Active() {
			t.Errorf("a line without price must not be active")
		}
	})

	t.Run("manual cost survives catalog name edits", func(t *testing.T) {
		l := NewLedger()
		l.UseCatalog(c)
		l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))
		l.EditField(CPU, FieldCost, "900")
		l.EditField(CPU, FieldName, "R5-7600X")
		li, _ := l.Line(CPU)
		assertMoney(t, "price", li.UnitPrice, Y(1699))
		assertMoney(t, "cost", li.UnitCost, Y(900))
		if !li.ManualCost || li.Custom {
			t.Errorf("unexpected flags %+v", li)
		}
	})

	t.Run("catalog name adopts catalog cost", func(t *testing.T) {
		l := NewLedger()
		l.UseCatalog(c)
		l.EditField(GPU, FieldName, "RTX 4060")
		li, _ := l.Line(GPU)
		assertMoney(t, "price", li.UnitPrice, Y(2499))
		assertMoney(t, "cost", li.UnitCost, Y(2100))
		if li.Custom {
			t.Errorf("line should come from the catalog")
		}
	})

	t.Run("without catalog names stay custom", func(t *testing.T) {
		l := NewLedger()
		l.EditField(GPU, FieldName, "RTX 4060")
		li, _ := l.Line(GPU)
		if !li.Custom || li.UnitPrice.IsPositive() {
			t.Errorf("unexpected line %+v", li)
		}
	})

	t.Run("empty name clears", func(t *testing.T) {
		l := NewLedger()
		l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))
		l.EditField(CPU, FieldName, "")
		if l.Len() != 0 {
			t.Errorf("slot should be cleared")
		}
	})

	t.Run("quantity 0 on empty slot is a no-op", func(t *testing.T) {
		l := NewLedger()
		calls := 0
		l.Subscribe(func(*Ledger) { calls++ })
		l.EditField(Memory, FieldQuantity, "0")
		if l.Len() != 0 || calls != 0 {
			t.Errorf("Len() = %d, calls = %d", l.Len(), calls)
		}
	})
}

func TestLedger_ClearSlotIsIdempotent(t *testing.T) {
	c := testCatalog()
	l := NewLedger()
	l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))
	l.SelectFromCatalog(GPU, mustFind(c, GPU, "RTX 4060"))

	l.ClearSlot(CPU)
	once := l.Snapshot()
	l.ClearSlot(CPU)
	twice := l.Snapshot()
	if len(once) != 1 || len(twice) != 1 {
		t.Errorf("got %d then %d lines, want 1 and 1", len(once), len(twice))
	}
	if _, ok := twice[GPU]; !ok {
		t.Errorf("GPU line was removed")
	}

	l.ClearAll()
	if l.Len() != 0 {
		t.Errorf("ClearAll left %d lines", l.Len())
	}
}

func TestLedger_ZeroQuantityIsNeverStored(t *testing.T) {
	c := testCatalog()
	l := NewLedger()
	check := func(l *Ledger) {
		for slot, li := range l.Lines() {
			if li.Quantity == 0 {
				t.Errorf("slot %s stored with a zero quantity", slot)
			}
		}
	}
	l.Subscribe(check)

	l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))
	l.AdjustQuantity(CPU, -1)
	l.EditField(Memory, FieldQuantity, "3")
	l.EditField(Memory, FieldQuantity, "-1")
	l.SetCustomLine(Other2, "fan", Y(30), nil, 0)
	l.Restore(Snapshot{GPU: {Name: "RTX 4060", UnitPrice: Y(2499), Quantity: 0}})
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestLedger_LinesOrder(t *testing.T) {
	c := testCatalog()
	l := NewLedger()
	l.SelectFromCatalog(GPU, mustFind(c, GPU, "RTX 4060"))
	l.SetCustomLine(Other1, "cable", Y(10), nil, 1)
	l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))

	var got []Slot
	for slot := range l.Lines() {
		got = append(got, slot)
	}
	want := []Slot{CPU, GPU, Other1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestLedger_Subscribe(t *testing.T) {
	c := testCatalog()
	l := NewLedger()
	var totals []Money
	l.Subscribe(func(l *Ledger) { totals = append(totals, ComputeTotals(l).Price) })

	l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))
	l.AdjustQuantity(CPU, 1)
	l.ClearSlot(CPU)

	want := []Money{Y(1299), Y(2598), Y(0)}
	if len(totals) != len(want) {
		t.Fatalf("got %d notifications, want %d", len(totals), len(want))
	}
	for i := range want {
		assertMoney(t, "total", totals[i], want[i])
	}
}

func TestParseField(t *testing.T) {
	for _, s := range []string{"name", "quantity", "qty", "cost", "price", " Price "} {
		if _, err := ParseField(s); err != nil {
			t.Errorf("ParseField(%q) error: %v", s, err)
		}
	}
	if _, err := ParseField("colour"); err == nil {
		t.Errorf("ParseField(colour) should fail")
	}
}
