package pcquote

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
)

// Snapshot is the flat, serializable form of a Ledger: one line item per slot.
type Snapshot map[Slot]LineItem

// MarshalJSON writes slots in canonical order, so that snapshots diff nicely.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, slot := range slots {
		if li, ok := s[slot]; ok {
			w.Append(string(slot), li)
		}
	}
	// unknown slots are kept as is, restoring ignores them anyway.
	var others []string
	for slot := range s {
		if !slot.Valid() {
			others = append(others, string(slot))
		}
	}
	slices.Sort(others)
	for _, slot := range others {
		w.Append(slot, s[Slot(slot)])
	}
	return w.MarshalJSON()
}

// EncodeSnapshot writes the snapshot as an indented JSON object.
func EncodeSnapshot(w io.Writer, s Snapshot) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// DecodeSnapshot reads a snapshot. An empty input is an empty snapshot.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot: %w", err)
	}
	s := make(Snapshot)
	if len(data) == 0 {
		return s, nil
	}
	if err := unmarshalJSON(data, &s); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}
	return s, nil
}

func unmarshalJSON(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// anyQuantity coerces a decoded JSON value into a quantity.
func anyQuantity(v any) int {
	switch q := v.(type) {
	case float64:
		if math.IsNaN(q) || q < 0 || q > MaxQuantity {
			return 0
		}
		return int(q)
	case string:
		return ParseQuantity(q)
	}
	return 0
}
