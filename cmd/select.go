package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/pcquote"
	"github.com/google/subcommands"
)

type selectCmd struct{}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "select a catalog part for a slot" }
func (*selectCmd) Usage() string {
	return `pcq select <slot> <part name>

  Replaces the line of the slot with the catalog part: its name, cost and
  price, with a quantity of 1.

  The part name is matched exactly first, then as a case-insensitive
  substring when a single part matches.

Usage Examples:
$ pcq select cpu Core i5-13400F
$ pcq select 内存 16GB
`
}

func (c *selectCmd) SetFlags(f *flag.FlagSet) {}

func (c *selectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: select requires a slot and a part name")
		return subcommands.ExitUsageError
	}
	slot, err := pcquote.ParseSlot(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	e, err := resolveEntry(s.catalog, slot, strings.Join(f.Args()[1:], " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s.ledger.SelectFromCatalog(slot, e)
	return commit(ctx, s)
}

// resolveEntry finds the catalog entry of a slot by exact name, or by a
// substring matching a single entry.
func resolveEntry(c *pcquote.Catalog, slot pcquote.Slot, name string) (pcquote.CatalogEntry, error) {
	name = strings.TrimSpace(name)
	if e, ok := c.Find(slot, name); ok {
		return e, nil
	}
	matches := c.Search(pcquote.CatalogQuery{Slot: slot, Text: name})
	switch len(matches) {
	case 0:
		if slot.FreeText() {
			return pcquote.CatalogEntry{}, fmt.Errorf("%s has no catalog parts, use 'pcq custom'", slot)
		}
		return pcquote.CatalogEntry{}, fmt.Errorf("no %s matches %q, use 'pcq custom' for parts not in the catalog", slot, name)
	case 1:
		return matches[0], nil
	}
	names := make([]string, 0, len(matches))
	for _, e := range matches {
		names = append(names, e.Name)
	}
	return pcquote.CatalogEntry{}, fmt.Errorf("%q matches several %s parts: %s", name, slot, strings.Join(names, ", "))
}
