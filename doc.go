// Package pcquote provides the selection and pricing model of a PC-parts
// configurator used at a retail counter.
//
// The core functionalities include:
//   - Catalog: an immutable list of parts, each tagged with a slot, a display
//     name, a cost and a sale price. It can be decoded from JSON (flat or
//     grouped by slot), fetched over HTTP, or built from the default data.
//   - Ledger: the current selection, at most one line item per slot, with
//     quantity, unit cost and unit price. Every mutation notifies subscribers
//     so that a presentation layer can re-render.
//   - Pricing: stateless functions deriving line subtotals, line profits and
//     grand totals from a Ledger. Totals are never cached.
//   - Presets: named bundles of catalog references applied in one pass.
//   - Quote: the exported, human readable rendition of a Ledger.
//
// This package serves as the foundational logic for the `pcq` command-line
// tool, ensuring that every view (table, cards, exports) agrees on what is
// counted in the totals.
package pcquote
