package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/pcquote"
	"github.com/etnz/pcquote/sheet"
	"github.com/google/subcommands"
)

type catalogCmd struct {
	slot     string
	text     string
	maxPrice string
	input    string
	output   string
}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "search, import or export the catalog" }
func (*catalogCmd) Usage() string {
	return `pcq catalog [-slot <slot>] [-q <text>] [-max <price>] [-i <file>] [-o <file>]

  Lists the catalog parts matching the filters, in catalog order. -max keeps
  the parts within budget.

  -i reads another catalog instead of the configured one, a JSON file or an
  xlsx workbook. -o writes the matching parts instead of listing them, as
  JSON or as a workbook depending on the file extension.

Usage Examples:
$ pcq catalog -slot gpu -max 3000
$ pcq catalog -q 金士顿
$ pcq catalog -i prices.xlsx -o catalog.json
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.slot, "slot", "", "only list parts for this slot")
	f.StringVar(&c.text, "q", "", "only list parts whose name contains this text")
	f.StringVar(&c.maxPrice, "max", "", "only list parts up to this price")
	f.StringVar(&c.input, "i", "", "catalog file to read, JSON or xlsx")
	f.StringVar(&c.output, "o", "", "catalog file to write, JSON or xlsx")
}

func (c *catalogCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q := pcquote.CatalogQuery{
		Text:     c.text,
		MaxPrice: pcquote.ParseAmount(c.maxPrice),
	}
	if c.slot != "" {
		slot, err := pcquote.ParseSlot(c.slot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		q.Slot = slot
	}

	s, err := openCatalog(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	catalog := s.catalog
	if c.input != "" {
		if catalog, err = readCatalog(c.input); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	entries := catalog.Search(q)

	if c.output == "" {
		printMarkdown(catalogTable(entries, s.symbol()))
		return subcommands.ExitSuccess
	}
	if err := writeCatalog(c.output, pcquote.NewCatalog(entries...)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "%d parts written to %s\n", len(entries), c.output)
	return subcommands.ExitSuccess
}

func isWorkbook(path string) bool { return strings.EqualFold(filepath.Ext(path), ".xlsx") }

// readCatalog reads a JSON or xlsx catalog file.
func readCatalog(path string) (*pcquote.Catalog, error) {
	if isWorkbook(path) {
		return sheet.ImportCatalog(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open catalog: %w", err)
	}
	defer f.Close()
	return pcquote.DecodeCatalog(f, "")
}

// writeCatalog writes a JSON or xlsx catalog file.
func writeCatalog(path string, c *pcquote.Catalog) error {
	if isWorkbook(path) {
		return sheet.ExportCatalog(path, c)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create catalog: %w", err)
	}
	if err := pcquote.EncodeCatalog(f, c); err != nil {
		f.Close()
		return fmt.Errorf("could not write catalog: %w", err)
	}
	return f.Close()
}

// catalogTable renders catalog entries as a markdown table.
func catalogTable(entries []pcquote.CatalogEntry, symbol string) string {
	if len(entries) == 0 {
		return "没有符合条件的配件。\n"
	}
	var b strings.Builder
	b.WriteString("| 配件 | 名称 | 成本 | 价格 |\n")
	b.WriteString("|:---|:---|---:|---:|\n")
	for _, e := range entries {
		cost := symbol + e.Cost.Plain()
		if !e.HasCost {
			cost += " (估)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s%s |\n", e.Slot, e.Name, cost, symbol, e.Price.Plain())
	}
	return b.String()
}
