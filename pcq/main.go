// Command pcq keeps the working quote of a PC shop clerk.
//
// Run `pcq topic` for the documentation. Shell completion is installed with
// `COMP_INSTALL=1 pcq`.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pcquote/cmd"
	"github.com/google/subcommands"
)

func main() {
	// exits when called by the shell to complete a command line.
	cmd.Completion().Complete("pcq")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// unknown subcommands are looked up as pcq-<name> executables.
	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
