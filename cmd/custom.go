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

type customCmd struct {
	price    string
	cost     string
	quantity int
}

func (*customCmd) Name() string     { return "custom" }
func (*customCmd) Synopsis() string { return "set a part that is not in the catalog" }
func (*customCmd) Usage() string {
	return `pcq custom -price <amount> [-cost <amount>] [-qty <n>] <slot> <name>

  Sets a typed-in line for the slot, typically one of the free slots 其它1
  and 其它2. Without -cost, the cost is estimated at 80% of the price;
  "-cost 0" records a free part.

  A line without name, quantity or price is not kept: the slot is cleared.

Usage Examples:
$ pcq custom -price 99 other1 无线网卡
$ pcq custom -price 45 -cost 30 -qty 2 other2 机箱风扇
`
}

func (c *customCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.price, "price", "", "unit price")
	f.StringVar(&c.cost, "cost", "", "unit cost, estimated from the price by default")
	f.IntVar(&c.quantity, "qty", 1, "quantity")
}

func (c *customCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: custom requires a slot")
		return subcommands.ExitUsageError
	}
	slot, err := pcquote.ParseSlot(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	name := strings.TrimSpace(strings.Join(f.Args()[1:], " "))
	price := pcquote.ParseAmount(c.price)

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	// an empty -cost is no cost at all, "0" is a free part.
	var cost *pcquote.Money
	if strings.TrimSpace(c.cost) != "" {
		m := pcquote.ParseAmount(c.cost)
		cost = &m
	}
	s.ledger.SetCustomLine(slot, name, price, cost, c.quantity)
	if _, ok := s.ledger.Line(slot); !ok {
		fmt.Fprintf(os.Stderr, "Warning: %s cleared, a custom part needs a name, a quantity and a price\n", slot)
	}
	return commit(ctx, s)
}
