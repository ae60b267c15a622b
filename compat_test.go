package pcquote

import "testing"

func TestCheckCompatibility(t *testing.T) {
	c := NewCatalog(
		CatalogEntry{Slot: CPU, Name: "intel cpu", Price: Y(1299), Brand: "intel"},
		CatalogEntry{Slot: CPU, Name: "amd cpu", Price: Y(1699), Brand: "amd", Socket: "AM5"},
		CatalogEntry{Slot: Motherboard, Name: "am5 board", Price: Y(999), Socket: "AM5"},
		CatalogEntry{Slot: Motherboard, Name: "lga board", Price: Y(899), Socket: "1700"},
		CatalogEntry{Slot: GPU, Name: "gpu", Price: Y(2499)},
		CatalogEntry{Slot: PSU, Name: "300W", Price: Y(199), Wattage: 300},
		CatalogEntry{Slot: PSU, Name: "650W", Price: Y(399), Wattage: 650},
	)
	testCases := []struct {
		name      string
		selection map[Slot]string
		want      []Slot // slots of the expected issues, in order
	}{
		{
			name:      "empty",
			selection: map[Slot]string{},
		},
		{
			name:      "brand fallback matches",
			selection: map[Slot]string{CPU: "intel cpu", Motherboard: "lga board"},
		},
		{
			name:      "brand fallback mismatch",
			selection: map[Slot]string{CPU: "intel cpu", Motherboard: "am5 board"},
			want:      []Slot{CPU},
		},
		{
			name:      "explicit sockets mismatch",
			selection: map[Slot]string{CPU: "amd cpu", Motherboard: "lga board"},
			want:      []Slot{CPU},
		},
		{
			name:      "power supply too small",
			selection: map[Slot]string{CPU: "amd cpu", Motherboard: "am5 board", GPU: "gpu", PSU: "300W"},
			want:      []Slot{PSU},
		},
		{
			name:      "power supply large enough",
			selection: map[Slot]string{CPU: "amd cpu", Motherboard: "am5 board", GPU: "gpu", PSU: "650W"},
		},
		{
			name:      "both",
			selection: map[Slot]string{CPU: "intel cpu", Motherboard: "am5 board", GPU: "gpu", PSU: "300W"},
			want:      []Slot{CPU, PSU},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			for slot, name := range tc.selection {
				l.SelectFromCatalog(slot, mustFind(c, slot, name))
			}
			issues := CheckCompatibility(l, c)
			if len(issues) != len(tc.want) {
				t.Fatalf("CheckCompatibility() = %v, want %d issues", issues, len(tc.want))
			}
			for i, issue := range issues {
				if issue.Slots[0] != tc.want[i] {
					t.Errorf("issue %d is about %v, want %s", i, issue.Slots, tc.want[i])
				}
			}
		})
	}
}

func TestCheckCompatibility_IgnoresCustomLines(t *testing.T) {
	c := NewCatalog(
		CatalogEntry{Slot: CPU, Name: "intel cpu", Price: Y(1299), Brand: "intel"},
		CatalogEntry{Slot: Motherboard, Name: "am5 board", Price: Y(999), Socket: "AM5"},
	)
	l := NewLedger()
	l.SelectFromCatalog(Motherboard, mustFind(c, Motherboard, "am5 board"))
	l.SetCustomLine(CPU, "intel cpu", Y(1299), nil, 1)
	if issues := CheckCompatibility(l, c); len(issues) != 0 {
		t.Errorf("custom lines should not be checked: %v", issues)
	}
}

func TestEstimatedPower(t *testing.T) {
	l := NewLedger()
	l.SetCustomLine(CPU, "cpu", Y(1), nil, 1)
	l.SetCustomLine(GPU, "gpu", Y(1), nil, 2)
	l.SetCustomLine(Monitor, "screen", Y(1), nil, 1)
	if got := EstimatedPower(l); got != 265 {
		t.Errorf("EstimatedPower() = %d, want 265", got)
	}
}
