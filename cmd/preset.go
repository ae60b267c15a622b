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

type presetCmd struct {
	list bool
}

func (*presetCmd) Name() string     { return "preset" }
func (*presetCmd) Synopsis() string { return "load a predefined configuration" }
func (*presetCmd) Usage() string {
	return `pcq preset [-list] <name>

  Replaces the whole quote with the parts of the preset. Parts missing from
  the catalog are skipped and reported, the rest is loaded.

  Presets come from the presets file when configured, otherwise from the
  catalog and the built-in 办公, 游戏 and 设计 configurations.

Usage Examples:
$ pcq preset -list
$ pcq preset 游戏
`
}

func (c *presetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the available presets")
}

func (c *presetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.list && f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: preset requires a name, or -list")
		return subcommands.ExitUsageError
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	presets, err := s.presets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.list {
		printMarkdown(presetList(presets))
		return subcommands.ExitSuccess
	}

	p, err := pcquote.FindPreset(presets, strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, item := range pcquote.ApplyPreset(s.ledger, p, s.catalog) {
		fmt.Fprintf(os.Stderr, "Warning: %s %q is not in the catalog, skipped\n", item.Slot, item.Name)
	}
	return commit(ctx, s)
}

// presetList renders the presets as a markdown list.
func presetList(presets []pcquote.Preset) string {
	var b strings.Builder
	b.WriteString("# 预设配置\n\n")
	for _, p := range presets {
		fmt.Fprintf(&b, "* **%s**", p.Name)
		if p.Description != "" {
			fmt.Fprintf(&b, ": %s", p.Description)
		}
		b.WriteString("\n")
		for _, item := range p.Items {
			qty := ""
			if item.Quantity > 1 {
				qty = fmt.Sprintf(" ×%d", item.Quantity)
			}
			fmt.Fprintf(&b, "  * %s: %s%s\n", item.Slot, item.Name, qty)
		}
	}
	return b.String()
}
