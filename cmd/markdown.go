package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown prints a markdown document, styled for the terminal unless
// -plain is set.
func printMarkdown(doc string) {
	if *plain {
		fmt.Fprint(stdout, doc)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(stdout, doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Fprint(stdout, doc)
		return
	}
	fmt.Fprint(stdout, out)
}
