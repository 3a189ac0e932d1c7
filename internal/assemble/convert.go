package assemble

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Options control the visual treatment of converted content.
type Options struct {
	// Font is applied to every run. Empty leaves the document default.
	Font string
	// BoldKeyColumn bolds the first column of every table body row.
	BoldKeyColumn bool
	// BoldCellLead bolds the first line of multi-line table cells, so a
	// question stem stands out from the options beneath it.
	BoldCellLead bool
}

const tableWidth = 9026

// Half-point font sizes per heading level.
func headingSize(level int) string {
	switch level {
	case 1:
		return "36"
	case 2:
		return "32"
	case 3:
		return "28"
	default:
		return "26"
	}
}

// ConvertMarkdown appends the Markdown content to doc as native paragraphs
// and tables. Headings map to sized bold runs, lists to bulleted paragraphs,
// and pipe tables to bordered tables. Cell text containing encoded line
// breaks becomes one paragraph per line inside the cell.
func ConvertMarkdown(doc *docx.Docx, markdown string, opts Options) error {
	src := []byte(markdown)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(src))

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if err := convertBlock(doc, n, src, opts); err != nil {
			return &ConversionError{Err: err}
		}
	}
	return nil
}

func convertBlock(doc *docx.Docx, n ast.Node, src []byte, opts Options) error {
	switch node := n.(type) {
	case *ast.Heading:
		para := doc.AddParagraph()
		run := para.AddText(inlineText(node, src))
		run.Size(headingSize(node.Level)).Bold()
		applyFont(run, opts)

	case *ast.Paragraph, *ast.TextBlock:
		for _, line := range splitLines(inlineText(n, src)) {
			run := doc.AddParagraph().AddText(line)
			applyFont(run, opts)
		}

	case *ast.List:
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			for block := item.FirstChild(); block != nil; block = block.NextSibling() {
				if _, ok := block.(*ast.List); ok {
					if err := convertBlock(doc, block, src, opts); err != nil {
						return err
					}
					continue
				}
				for i, line := range splitLines(inlineText(block, src)) {
					txt := line
					if i == 0 {
						txt = "• " + line
					}
					run := doc.AddParagraph().AddText(txt)
					applyFont(run, opts)
				}
			}
		}

	case *east.Table:
		convertTable(doc, node, src, opts)

	default:
		if txt := inlineText(n, src); txt != "" {
			run := doc.AddParagraph().AddText(txt)
			applyFont(run, opts)
		}
	}
	return nil
}

func convertTable(doc *docx.Docx, tbl *east.Table, src []byte, opts Options) {
	var rows [][]string
	for section := tbl.FirstChild(); section != nil; section = section.NextSibling() {
		switch section.(type) {
		case *east.TableHeader, *east.TableRow:
			var cells []string
			for cell := section.FirstChild(); cell != nil; cell = cell.NextSibling() {
				cells = append(cells, inlineText(cell, src))
			}
			rows = append(rows, cells)
		}
	}
	if len(rows) == 0 {
		return
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	// Rows carry no header-repeat or split-across-pages marks, so a
	// multi-line question row stays on one page.
	table := doc.AddTable(len(rows), cols, tableWidth, nil)
	for r, row := range rows {
		for c, cellText := range row {
			cell := table.TableRows[r].TableCells[c]
			lines := splitLines(cellText)
			for i, line := range lines {
				run := cell.AddParagraph().AddText(line)
				applyFont(run, opts)
				switch {
				case r == 0:
					run.Bold()
				case c == 0 && opts.BoldKeyColumn:
					run.Bold()
				case i == 0 && len(lines) > 1 && opts.BoldCellLead:
					run.Bold()
				}
			}
		}
	}
}

func applyFont(run *docx.Run, opts Options) {
	if opts.Font != "" {
		run.Font(opts.Font, opts.Font, opts.Font, "")
	}
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) == 1 {
		return lines
	}
	out := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}

// inlineText flattens the inline content of a block node. Hard and soft
// breaks and <br> tags all become newlines; escaped pipes inside table
// cells come back as literal pipes.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(c ast.Node) {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.RawHTML:
			for i := 0; i < t.Segments.Len(); i++ {
				seg := t.Segments.At(i)
				if bytes.Contains(bytes.ToLower(seg.Value(src)), []byte("<br")) {
					buf.WriteByte('\n')
				}
			}
		default:
			for gc := c.FirstChild(); gc != nil; gc = gc.NextSibling() {
				walk(gc)
			}
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		walk(c)
	}
	return strings.ReplaceAll(buf.String(), `\|`, "|")
}
