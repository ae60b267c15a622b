// Package renderer renders the ledger and quotes as markdown, using the
// embedded templates.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// templates holds the assemblies (e.g. "ledger.md") and their partials
// (e.g. "ledger_lines.md").
//
//go:embed *.md
var templates embed.FS

// RenderLedger renders the ledger table with its totals and warnings.
func RenderLedger(l *Ledger) string {
	partials := map[string]string{
		"ledger_title":  "ledger_title.md",
		"ledger_lines":  "ledger_lines.md",
		"ledger_totals": "ledger_totals.md",
		"ledger_issues": "ledger_issues.md",
	}
	return renderTemplate("ledger", "ledger.md", partials, l)
}

// RenderCards renders one card per slot, the layout used on narrow screens.
func RenderCards(c *Cards) string {
	partials := map[string]string{
		"card":   "cards_card.md",
		"totals": "ledger_totals.md",
	}
	return renderTemplate("cards", "cards.md", partials, c)
}

// RenderQuote renders an exported quote.
func RenderQuote(q *Quote) string {
	partials := map[string]string{
		"lines":  "quote_lines.md",
		"totals": "ledger_totals.md",
	}
	return renderTemplate("quote", "quote.md", partials, q)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
