// Package assemble turns generated Markdown into styled Word documents:
// a rendered cover template, a page break, then the converted content.
package assemble

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

// Assemble renders the cover template with ctx, appends a page break, and
// converts the Markdown content into the document body.
func Assemble(markdown, templatePath string, ctx map[string]string, opts Options) ([]byte, error) {
	doc, err := RenderTemplate(templatePath, ctx)
	if err != nil {
		return nil, err
	}
	doc.AddParagraph().AddPageBreaks()
	if err := ConvertMarkdown(doc, markdown, opts); err != nil {
		return nil, err
	}
	return writeDoc(doc)
}

func writeDoc(doc *docx.Docx) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	return buf.Bytes(), nil
}
