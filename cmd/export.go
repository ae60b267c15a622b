package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/pcquote"
	"github.com/etnz/pcquote/renderer"
	"github.com/etnz/pcquote/sheet"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format        string
	output        string
	profit        bool
	omitTimestamp bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the quote as text, markdown, JSON or xlsx" }
func (*exportCmd) Usage() string {
	return `pcq export [-format text|md|json|xlsx] [-o <file or dir>] [-profit]

  Exports the priced lines of the quote, in slot order, with the total.
  Lines without a price are left out.

  The quote is printed unless -o is given. When -o is a directory, the file
  is named after the date and the quote id, e.g. 电脑配置单_2025-03-01_1a2b3c4d.txt.
  xlsx quotes are always written to a file, in the current directory by
  default.

  -profit adds the profit, for internal copies only.

Usage Examples:
$ pcq export
$ pcq export -format xlsx -o quotes/
$ pcq export -profit -o internal.txt
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "text", "output format: text, md, json or xlsx")
	f.StringVar(&c.output, "o", "", "output file or directory")
	f.BoolVar(&c.profit, "profit", false, "include the profit")
	f.BoolVar(&c.omitTimestamp, "no-time", false, "omit the generation time in text quotes")
}

// extensions of the export formats.
var exportExtensions = map[string]string{
	"text": "txt",
	"md":   "md",
	"json": "json",
	"xlsx": "xlsx",
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ext, ok := exportExtensions[c.format]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	q := pcquote.NewQuote(s.ledger)
	if q.IsEmpty() {
		fmt.Fprintln(os.Stderr, "Error: nothing to export, select some parts first")
		return subcommands.ExitFailure
	}

	path := exportPath(c.output, q, ext)
	if c.format == "xlsx" {
		if path == "" {
			path = q.FileName(ext)
		}
		if err := sheet.ExportQuote(path, q, c.profit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not export quote: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Quote written to %s\n", path)
		return subcommands.ExitSuccess
	}

	var buf bytes.Buffer
	switch c.format {
	case "text":
		err = q.WriteText(&buf, pcquote.TextOptions{
			Symbol:        s.symbol(),
			IncludeProfit: c.profit,
			OmitTimestamp: c.omitTimestamp,
		})
	case "md":
		buf.WriteString(renderer.RenderQuote(renderer.NewQuote(q, c.profit)))
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		err = enc.Encode(q)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not export quote: %v\n", err)
		return subcommands.ExitFailure
	}

	if path == "" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write quote: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Quote written to %s\n", path)
	return subcommands.ExitSuccess
}

// exportPath returns the file to write: output itself, or a generated name
// when output is a directory.
func exportPath(output string, q pcquote.Quote, ext string) string {
	if output == "" {
		return ""
	}
	if fi, err := os.Stat(output); err == nil && fi.IsDir() {
		return filepath.Join(output, q.FileName(ext))
	}
	return output
}
