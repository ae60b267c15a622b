package pcquote

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// catalogRecord is the JSON layout of a part, as published in catalog files.
//
// Different revisions of the data used different keys, all of them are read:
// "type" or "category" for the slot, "price" or "basePrice" for the sale price.
type catalogRecord map[string]any

func (r catalogRecord) str(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return strings.TrimSpace(fmt.Sprint(v))
		}
	}
	return ""
}

func (r catalogRecord) amount(keys ...string) (m Money, ok bool) {
	for _, k := range keys {
		if v, exists := r[k]; exists && v != nil {
			return ParseAmount(fmt.Sprint(v)), true
		}
	}
	return Money{}, false
}

func (r catalogRecord) entry(defaultSlot Slot) (CatalogEntry, error) {
	slot := defaultSlot
	if s := r.str("type", "category", "slot"); s != "" {
		var err error
		if slot, err = ParseSlot(s); err != nil {
			if defaultSlot == "" {
				return CatalogEntry{}, err
			}
			slot = defaultSlot
		}
	}
	if slot == "" {
		return CatalogEntry{}, errors.New("record has no slot")
	}
	name := r.str("name")
	if name == "" {
		return CatalogEntry{}, errors.New("record has no name")
	}
	e := CatalogEntry{Slot: slot, Name: name}
	e.Price, _ = r.amount("price", "basePrice")
	e.Cost, e.HasCost = r.amount("cost")
	e.Brand = r.str("brand")
	e.Socket = r.str("socket")
	e.Wattage = anyQuantity(r["wattage"])
	if presets, ok := r["preset"].([]any); ok {
		for _, p := range presets {
			e.Presets = append(e.Presets, anyQuantity(p))
		}
	}
	return e, nil
}

// DecodeCatalog reads a JSON catalog.
//
// The document is either a flat array of records, or an object grouping
// arrays of records by slot (e.g. {"cpu": [...], "gpu": [...]}). When the
// selector is not empty it is a JSONPath expression that selects the catalog
// inside a larger document, e.g. "$.data.parts".
//
// Records with an unknown slot or no name are skipped.
func DecodeCatalog(r io.Reader, selector string) (*Catalog, error) {
	var doc any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode catalog: %w", err)
	}
	if selector != "" {
		v, err := jsonpath.Get(selector, doc)
		if err != nil {
			return nil, fmt.Errorf("could not select %q in catalog: %w", selector, err)
		}
		// a filter or wildcard yields a list of one answer.
		if list, ok := v.([]any); ok && len(list) == 1 {
			if _, nested := list[0].([]any); nested {
				v = list[0]
			}
		}
		doc = v
	}

	var entries []CatalogEntry
	add := func(records []any, slot Slot) {
		for _, rec := range records {
			m, ok := rec.(map[string]any)
			if !ok {
				continue
			}
			if e, err := catalogRecord(m).entry(slot); err == nil {
				entries = append(entries, e)
			}
		}
	}
	switch v := doc.(type) {
	case []any:
		add(v, "")
	case map[string]any:
		// iterate in slot order, then in key order for aliases of the same
		// slot, and keep catalog order within a key.
		keys := slices.Sorted(maps.Keys(v))
		for _, slot := range slots {
			for _, key := range keys {
				s, err := ParseSlot(key)
				if err != nil || s != slot {
					continue
				}
				if list, ok := v[key].([]any); ok {
					add(list, slot)
				}
			}
		}
	default:
		return nil, fmt.Errorf("unsupported catalog document: %T", doc)
	}
	return NewCatalog(entries...), nil
}

// MarshalJSON writes the entry in the flat catalog layout.
func (e CatalogEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", string(e.Slot))
	w.Append("name", e.Name)
	if e.HasCost {
		w.Append("cost", e.Cost)
	}
	w.Append("price", e.Price)
	w.Optional("brand", e.Brand)
	w.Optional("socket", e.Socket)
	w.Optional("wattage", e.Wattage)
	if len(e.Presets) > 0 {
		w.Append("preset", e.Presets)
	}
	return w.MarshalJSON()
}

// EncodeCatalog writes the catalog as a flat JSON array, one entry per line.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	var b bytes.Buffer
	b.WriteString("[")
	first := true
	for e := range c.All() {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("could not encode %s %q: %w", e.Slot, e.Name, err)
		}
		if !first {
			b.WriteString(",")
		}
		first = false
		b.WriteString("\n  ")
		b.Write(data)
	}
	b.WriteString("\n]\n")
	_, err := w.Write(b.Bytes())
	return err
}
