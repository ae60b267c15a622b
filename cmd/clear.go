package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pcquote"
	"github.com/google/subcommands"
)

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "empty one or more slots" }
func (*clearCmd) Usage() string {
	return `pcq clear <slot>...

  Empties the slots. Clearing an empty slot does nothing.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: clear requires at least one slot, use 'pcq reset' to clear everything")
		return subcommands.ExitUsageError
	}
	var slots []pcquote.Slot
	for _, arg := range f.Args() {
		slot, err := pcquote.ParseSlot(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		slots = append(slots, slot)
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	for _, slot := range slots {
		s.ledger.ClearSlot(slot)
	}
	return commit(ctx, s)
}

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "start a new quote" }
func (*resetCmd) Usage() string {
	return `pcq reset

  Clears every slot and removes the saved quote.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	s.ledger.ClearAll()
	return commit(ctx, s)
}
