package pcquote

import (
	"fmt"
	"strings"
)

// Slot is a fixed category of component. A configuration holds at most one
// line item per slot.
//
// The slot value is also its display label, and the key used in snapshots.
type Slot string

const (
	CPU           Slot = "CPU"
	Cooler        Slot = "散热器"
	Motherboard   Slot = "主板"
	Memory        Slot = "内存"
	Storage       Slot = "硬盘"
	GPU           Slot = "显卡"
	PSU           Slot = "电源"
	Case          Slot = "机箱"
	Monitor       Slot = "显示器"
	PeripheralKit Slot = "键鼠套装"
	Other1        Slot = "其它1"
	Other2        Slot = "其它2"
)

// slots is the canonical order, used for display and export.
var slots = []Slot{CPU, Cooler, Motherboard, Memory, Storage, GPU, PSU, Case, Monitor, PeripheralKit, Other1, Other2}

// slotAliases maps lower-cased aliases found in data files and on the command line.
var slotAliases = map[string]Slot{
	"cpu":         CPU,
	"processor":   CPU,
	"cooler":      Cooler,
	"motherboard": Motherboard,
	"mb":          Motherboard,
	"memory":      Memory,
	"ram":         Memory,
	"storage":     Storage,
	"ssd":         Storage,
	"disk":        Storage,
	"gpu":         GPU,
	"psu":         PSU,
	"power":       PSU,
	"case":        Case,
	"monitor":     Monitor,
	"kit":         PeripheralKit,
	"peripherals": PeripheralKit,
	"other1":      Other1,
	"other2":      Other2,
}

// Slots returns all slots in canonical order.
func Slots() []Slot {
	return append([]Slot(nil), slots...)
}

// ParseSlot parses a slot label or one of its English aliases, case-insensitively.
func ParseSlot(s string) (Slot, error) {
	s = strings.TrimSpace(s)
	for _, slot := range slots {
		if string(slot) == s || strings.EqualFold(string(slot), s) {
			return slot, nil
		}
	}
	if slot, ok := slotAliases[strings.ToLower(s)]; ok {
		return slot, nil
	}
	return "", fmt.Errorf("unknown slot: %q", s)
}

// Valid reports whether s is one of the fixed slots.
func (s Slot) Valid() bool {
	for _, slot := range slots {
		if slot == s {
			return true
		}
	}
	return false
}

// FreeText reports whether the slot has no catalog entries and is filled by
// typing a name and a price.
func (s Slot) FreeText() bool { return s == Other1 || s == Other2 }

// String returns the slot label.
func (s Slot) String() string { return string(s) }
