package pcquote

import (
	"bytes"
	"strings"
	"testing"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	c := testCatalog()
	l := NewLedger()
	l.SelectFromCatalog(CPU, mustFind(c, CPU, "i5-13400F"))
	l.SelectFromCatalog(Memory, mustFind(c, Memory, "16GB DDR5"))
	l.AdjustQuantity(Memory, 1)
	l.SetCustomLine(Other1, "Extra Cable", M(12.5, ""), costOf(Y(5)), 3)
	l.EditField(Other2, FieldCost, "7") // pending, inactive line
	l.EditField(CPU, FieldCost, "990")

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, l.Snapshot()); err != nil {
		t.Fatalf("EncodeSnapshot() error: %v", err)
	}
	s, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error: %v", err)
	}
	r := NewLedger()
	r.Restore(s)

	if r.Len() != l.Len() {
		t.Fatalf("restored %d lines, want %d", r.Len(), l.Len())
	}
	for slot, li := range l.Lines() {
		got, ok := r.Line(slot)
		if !ok || !sameLine(got, li) {
			t.Errorf("slot %s: got %+v, want %+v", slot, got, li)
		}
	}
	want, got := ComputeTotals(l), ComputeTotals(r)
	assertMoney(t, "price", got.Price, want.Price)
	assertMoney(t, "profit", got.Profit, want.Profit)
}

func TestSnapshot_SlotOrder(t *testing.T) {
	s := Snapshot{
		Other1: {Name: "x", UnitPrice: Y(1), Quantity: 1, Custom: true},
		CPU:    {Name: "c", UnitCost: Y(1000), UnitPrice: Y(1299), Quantity: 1},
	}
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Index(out, `"CPU"`) > strings.Index(out, `"其它1"`) {
		t.Errorf("slots are not in canonical order:\n%s", out)
	}
	if !strings.Contains(out, `"price": 1299`) {
		t.Errorf("amounts should be bare numbers:\n%s", out)
	}
}

func TestDecodeSnapshot_Coercion(t *testing.T) {
	const input = `{
		"CPU": {"name": "i5-13400F", "cost": "1000", "price": 1299, "quantity": 1},
		"显卡": {"name": "broken", "cost": -5, "price": "abc", "quantity": "2"},
		"内存": {"name": "zero", "price": 10, "quantity": 0},
		"电源": {"name": "overflow", "price": 10, "quantity": 1e20},
		"机箱": {"name": "overflow", "price": 10, "quantity": "99999999999999999999"},
		"SoundCard": {"name": "legacy", "price": 10, "quantity": 1}
	}`
	s, err := DecodeSnapshot(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeSnapshot() error: %v", err)
	}
	l := NewLedger()
	l.Restore(s)

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	cpu, _ := l.Line(CPU)
	assertMoney(t, "cpu cost", cpu.UnitCost, Y(1000))
	gpu, ok := l.Line(GPU)
	if !ok || gpu.Quantity != 2 {
		t.Fatalf("gpu line = %+v", gpu)
	}
	assertMoney(t, "gpu cost", gpu.UnitCost, Y(0))
	assertMoney(t, "gpu price", gpu.UnitPrice, Y(0))
	if gpu.Active() {
		t.Errorf("a line without price must not be active")
	}
}

func TestDecodeSnapshot_Empty(t *testing.T) {
	s, err := DecodeSnapshot(strings.NewReader(""))
	if err != nil || len(s) != 0 {
		t.Errorf("got %v, %v", s, err)
	}
	if _, err := DecodeSnapshot(strings.NewReader("{not json")); err == nil {
		t.Errorf("malformed snapshot should fail")
	}
}
