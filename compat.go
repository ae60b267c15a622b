package pcquote

import (
	"fmt"
	"strings"
)

// Issue is a compatibility warning about the current selection.
type Issue struct {
	Slots   []Slot
	Message string
}

func (i Issue) String() string { return i.Message }

// estimated power draw per selected part, in watts.
var powerDraw = map[Slot]int{
	CPU:         65,
	GPU:         200,
	Motherboard: 50,
	Memory:      15,
	Storage:     10,
}

// EstimatedPower returns the estimated power draw of the occupied slots.
// Quantities are ignored, the estimate is per selected part.
func EstimatedPower(l *Ledger) int {
	total := 0
	for slot := range l.Lines() {
		total += powerDraw[slot]
	}
	return total
}

// CheckCompatibility runs the few known compatibility rules on the ledger:
// processor and motherboard sockets, and power supply headroom.
//
// Part attributes come from the catalog, lines without a catalog entry are not
// checked. These are warnings: nothing prevents the selection.
func CheckCompatibility(l *Ledger, c *Catalog) []Issue {
	var issues []Issue
	entry := func(slot Slot) (CatalogEntry, bool) {
		li, ok := l.Line(slot)
		if !ok || li.Custom {
			return CatalogEntry{}, false
		}
		return c.Find(slot, li.Name)
	}

	cpu, hasCPU := entry(CPU)
	mb, hasMB := entry(Motherboard)
	if hasCPU && hasMB && !socketsMatch(cpu, mb) {
		issues = append(issues, Issue{
			Slots:   []Slot{CPU, Motherboard},
			Message: fmt.Sprintf("CPU与主板插槽不兼容: %s / %s", cpu.Name, mb.Name),
		})
	}

	if psu, ok := entry(PSU); ok && psu.Wattage > 0 {
		// keep 20% headroom.
		if need := EstimatedPower(l); need*10 > psu.Wattage*8 {
			issues = append(issues, Issue{
				Slots:   []Slot{PSU},
				Message: fmt.Sprintf("电源功率可能不足: 估算 %dW, 电源 %dW", need, psu.Wattage),
			})
		}
	}
	return issues
}

// socketsMatch compares explicit sockets when both are known, and otherwise
// falls back to the processor brand: intel boards are 1700, amd boards AM5.
func socketsMatch(cpu, mb CatalogEntry) bool {
	if mb.Socket == "" {
		return true
	}
	if cpu.Socket != "" {
		return strings.EqualFold(cpu.Socket, mb.Socket)
	}
	switch strings.ToLower(cpu.Brand) {
	case "intel":
		return mb.Socket == "1700"
	case "amd":
		return strings.EqualFold(mb.Socket, "AM5")
	}
	return true
}
