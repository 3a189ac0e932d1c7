// Package render converts typed intermediate representations into canonical
// Markdown. Rendering is pure: the same input yields byte-identical output,
// and item order is the insertion order from parsing.
package render

import (
	"fmt"
	"strings"

	"github.com/dberrada/studyforge/internal/content"
)

// lineBreak marks embedded line breaks inside table cells, since Markdown
// cells cannot contain literal newlines.
const lineBreak = "<br>"

// Summary renders summary sections: H2 headings, paragraphs, bullet lists,
// and two-column key-point tables. Consecutive table rows share one table.
func Summary(sections []content.Section) string {
	var b strings.Builder
	for _, sec := range sections {
		fmt.Fprintf(&b, "## %s\n\n", sec.Heading)

		inTable := false
		for _, item := range sec.Items {
			if item.Kind == content.ItemTableRow && !inTable {
				b.WriteString("| Key Point | Details |\n|---|---|\n")
				inTable = true
			}
			if item.Kind != content.ItemTableRow && inTable {
				b.WriteString("\n")
				inTable = false
			}

			switch item.Kind {
			case content.ItemParagraph:
				b.WriteString(item.Text + "\n\n")
			case content.ItemList:
				for _, li := range item.List {
					b.WriteString("- " + li + "\n")
				}
				b.WriteString("\n")
			case content.ItemTableRow:
				fmt.Fprintf(&b, "| %s | %s |\n", cell(item.Row.KeyPoint), cell(item.Row.Details))
			case content.ItemUnparsed:
				fmt.Fprintf(&b, "[%s]\n\n", item.Text)
			}
		}
		if inTable {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Remake renders rewrite sections: H2 per section, then one table where
// every content item is exactly one row, regardless of its kind.
func Remake(sections []content.Section) string {
	var b strings.Builder
	for _, sec := range sections {
		fmt.Fprintf(&b, "## %s\n\n", sec.Heading)
		b.WriteString("| Key Point | Details |\n|---|---|\n")

		for _, item := range sec.Items {
			switch item.Kind {
			case content.ItemParagraph:
				fmt.Fprintf(&b, "| %s | %s |\n", "", cell(item.Text))
			case content.ItemList:
				fmt.Fprintf(&b, "| %s | %s |\n", "", cell(strings.Join(item.List, "\n")))
			case content.ItemTableRow:
				fmt.Fprintf(&b, "| %s | %s |\n", cell(item.Row.KeyPoint), cell(item.Row.Details))
			case content.ItemUnparsed:
				fmt.Fprintf(&b, "| %s | %s |\n", "", cell("["+item.Text+"]"))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// MCQTable renders question records as one table with a header row. Options
// are concatenated into the question cell with lettered prefixes.
func MCQTable(records []content.MCQRecord) string {
	var b strings.Builder
	b.WriteString("| # | Question | Answer |\n|---|---|---|\n")
	for _, rec := range records {
		var q strings.Builder
		q.WriteString(rec.Question)
		for i, opt := range rec.Options {
			q.WriteString("\n")
			fmt.Fprintf(&q, "%c) %s", 'a'+i, opt)
		}
		fmt.Fprintf(&b, "| %d | %s | %s |\n", rec.ID, cell(q.String()), cell(rec.Answer))
	}
	return b.String()
}

// cell escapes pipes and encodes embedded newlines for a table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", lineBreak)
}
