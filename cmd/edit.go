package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/pcquote"
	"github.com/google/subcommands"
)

type qtyCmd struct{}

func (*qtyCmd) Name() string     { return "qty" }
func (*qtyCmd) Synopsis() string { return "increase or decrease the quantity of a slot" }
func (*qtyCmd) Usage() string {
	return `pcq qty <slot> <delta>

  Adds delta to the quantity of the slot. A quantity that drops to zero
  clears the slot. An empty slot is left untouched.

Usage Examples:
$ pcq qty memory +1
$ pcq qty 硬盘 -1
`
}

func (c *qtyCmd) SetFlags(f *flag.FlagSet) {}

func (c *qtyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: qty requires a slot and a delta")
		return subcommands.ExitUsageError
	}
	slot, err := pcquote.ParseSlot(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	delta, err := strconv.Atoi(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid delta %q\n", f.Arg(1))
		return subcommands.ExitUsageError
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	if _, ok := s.ledger.Line(slot); !ok {
		fmt.Fprintf(os.Stderr, "Warning: %s is empty\n", slot)
	}
	s.ledger.AdjustQuantity(slot, delta)
	return commit(ctx, s)
}

type setCmd struct{}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "edit one field of a line" }
func (*setCmd) Usage() string {
	return `pcq set <slot> <field> <value>

  Edits the name, quantity, cost or price of a line. Malformed or negative
  numbers are read as 0.

  Setting the name to a catalog part adopts its price, and its cost unless
  the cost was typed in. Setting the name to "" or the quantity to 0 clears
  the slot. A typed cost is kept from then on.

Usage Examples:
$ pcq set cpu price 1250
$ pcq set memory qty 2
$ pcq set 其它1 name 无线网卡
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {}

func (c *setCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: set requires a slot, a field and a value")
		return subcommands.ExitUsageError
	}
	slot, err := pcquote.ParseSlot(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	field, err := pcquote.ParseField(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	value := strings.Join(f.Args()[2:], " ")

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	s.ledger.EditField(slot, field, value)
	if li, ok := s.ledger.Line(slot); ok && !li.Active() {
		fmt.Fprintf(os.Stderr, "Warning: %s is not counted until it has a name, a quantity and a price\n", slot)
	}
	return commit(ctx, s)
}
