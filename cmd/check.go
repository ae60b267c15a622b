package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pcquote"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "check the compatibility of the selected parts" }
func (*checkCmd) Usage() string {
	return `pcq check

  Checks the CPU socket against the motherboard, and the estimated power
  draw against the power supply. Exits with a failure status when a check
  fails.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	fmt.Fprintf(stdout, "预计功耗: %dW\n", pcquote.EstimatedPower(s.ledger))
	issues := pcquote.CheckCompatibility(s.ledger, s.catalog)
	if len(issues) == 0 {
		fmt.Fprintln(stdout, "兼容性检查通过")
		return subcommands.ExitSuccess
	}
	for _, issue := range issues {
		fmt.Fprintf(stdout, "警告: %s\n", issue)
	}
	return subcommands.ExitFailure
}
