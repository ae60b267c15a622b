// Package cmd implements the pcq command line.
//
// Every command works on the same session: it loads the working ledger from
// the store, applies one operation, prints the totals and saves it back.
package cmd

import (
	"flag"
	"io"
	"os"

	"github.com/etnz/pcquote/config"
	"github.com/etnz/pcquote/store"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&selectCmd{}, "selection")
	c.Register(&customCmd{}, "selection")
	c.Register(&qtyCmd{}, "selection")
	c.Register(&setCmd{}, "selection")
	c.Register(&clearCmd{}, "selection")
	c.Register(&resetCmd{}, "selection")
	c.Register(&presetCmd{}, "selection")

	c.Register(&showCmd{}, "quote")
	c.Register(&checkCmd{}, "quote")
	c.Register(&exportCmd{}, "quote")

	c.Register(&catalogCmd{}, "catalog")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the YAML configuration file, "+config.DefaultFile+" if it exists")
var sessionKey = flag.String("session", store.DefaultKey, "Name of the working quote in the store")
var Verbose = flag.Bool("v", false, "Log debug messages")
var plain = flag.Bool("plain", false, "Print markdown without terminal styling")

// stdout receives the command output.
var stdout io.Writer = os.Stdout
