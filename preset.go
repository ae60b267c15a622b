package pcquote

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// PresetItem references a catalog entry by slot and name.
type PresetItem struct {
	Slot     Slot
	Name     string
	Quantity int // 0 means 1
}

// Preset is a named, hand-authored bundle of catalog references.
type Preset struct {
	Name        string
	Description string
	Items       []PresetItem
}

// ApplyPreset replaces the content of the ledger with the preset items.
//
// Items are resolved against the catalog by exact slot and name. Unresolved
// items are skipped, logged, and returned so that the caller can report them.
// The ledger is replaced in a single mutation: subscribers are called once.
func ApplyPreset(l *Ledger, p Preset, c *Catalog) (skipped []PresetItem) {
	lines := make(map[Slot]LineItem)
	for _, item := range p.Items {
		e, ok := c.Find(item.Slot, item.Name)
		if !ok {
			l.logger.Warn("preset item not found in catalog",
				zap.String("preset", p.Name),
				zap.String("slot", string(item.Slot)),
				zap.String("name", item.Name))
			skipped = append(skipped, item)
			continue
		}
		li := LineItem{Name: e.Name, UnitCost: e.Cost, UnitPrice: e.Price, Quantity: 1}
		if item.Quantity > 1 {
			li.Quantity = item.Quantity
		}
		lines[item.Slot] = li
	}
	l.lines = lines
	l.changed()
	return skipped
}

// FindPreset returns the preset with that name, case-insensitively.
func FindPreset(presets []Preset, name string) (Preset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}

// presetFile is the YAML layout of a presets file:
//
//	- name: 办公
//	  description: office desktop
//	  items:
//	    - {slot: cpu, name: Core i5-13400F}
//	    - {slot: ram, name: 金士顿 16GB DDR4, quantity: 2}
type presetFile []struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Items       []struct {
		Slot     string `yaml:"slot"`
		Name     string `yaml:"name"`
		Quantity *int   `yaml:"quantity"`
	} `yaml:"items"`
}

// DecodePresets reads presets from YAML.
//
// Items with an unknown slot are kept: they will not resolve and are skipped
// when the preset is applied. A quantity that is not positive is read as 1,
// one above MaxQuantity as MaxQuantity, and both are logged.
func DecodePresets(r io.Reader, logger *zap.Logger) ([]Preset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var file presetFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("could not decode presets: %w", err)
	}
	presets := make([]Preset, 0, len(file))
	for _, p := range file {
		preset := Preset{Name: p.Name, Description: p.Description}
		for _, item := range p.Items {
			slot, err := ParseSlot(item.Slot)
			if err != nil {
				slot = Slot(item.Slot)
			}
			preset.Items = append(preset.Items, PresetItem{Slot: slot, Name: item.Name, Quantity: presetQuantity(logger, p.Name, item.Name, item.Quantity)})
		}
		presets = append(presets, preset)
	}
	return presets, nil
}

// presetQuantity returns the quantity of a preset item, 0 when it is omitted.
func presetQuantity(logger *zap.Logger, preset, name string, q *int) int {
	switch {
	case q == nil:
		return 0
	case *q <= 0:
		logger.Warn("preset quantity is not positive, using 1",
			zap.String("preset", preset), zap.String("name", name), zap.Int("quantity", *q))
		return 1
	case *q > MaxQuantity:
		logger.Warn("preset quantity is too large",
			zap.String("preset", preset), zap.String("name", name), zap.Int("quantity", *q))
		return MaxQuantity
	}
	return *q
}

// CatalogPresets builds the presets declared inside the catalog: an entry
// listing index i in its presets belongs to the preset named "预设配置<i+1>".
func CatalogPresets(c *Catalog) []Preset {
	var presets []Preset
	for e := range c.All() {
		for _, i := range e.Presets {
			if i < 0 {
				continue
			}
			for len(presets) <= i {
				presets = append(presets, Preset{Name: fmt.Sprintf("预设配置%d", len(presets)+1)})
			}
			presets[i].Items = append(presets[i].Items, PresetItem{Slot: e.Slot, Name: e.Name})
		}
	}
	// drop holes in the numbering.
	res := presets[:0]
	for _, p := range presets {
		if len(p.Items) > 0 {
			res = append(res, p)
		}
	}
	return res
}
