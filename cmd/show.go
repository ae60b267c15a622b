package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pcquote"
	"github.com/etnz/pcquote/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	cards    bool
	noProfit bool
	snapshot bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show the current quote" }
func (*showCmd) Usage() string {
	return `pcq show [-cards] [-no-profit] [-snapshot]

  Shows every line with its cost, price, subtotal and profit, then the
  totals and the compatibility warnings. Lines without a price are listed
  but not counted.

  -cards shows one card per slot, selected or not, the compact layout for
  narrow terminals. -snapshot prints the saved JSON instead.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.cards, "cards", false, "show one card per slot")
	f.BoolVar(&c.noProfit, "no-profit", false, "hide the total profit, when the customer is watching")
	f.BoolVar(&c.snapshot, "snapshot", false, "print the saved JSON snapshot")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	switch {
	case c.snapshot:
		if err := pcquote.EncodeSnapshot(stdout, s.ledger.Snapshot()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	case c.cards:
		v := renderer.NewCards(s.ledger, s.catalog)
		v.ShowProfit = !c.noProfit
		printMarkdown(renderer.RenderCards(v))
	default:
		v := renderer.NewLedger(s.ledger, pcquote.CheckCompatibility(s.ledger, s.catalog))
		v.ShowProfit = !c.noProfit
		printMarkdown(renderer.RenderLedger(v))
	}
	return subcommands.ExitSuccess
}
