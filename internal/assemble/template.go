package assemble

import (
	"fmt"
	"os"
	"regexp"

	"github.com/fumiama/go-docx"
)

// Placeholders use the {{name}} form inside template run text. Each
// placeholder must sit inside a single run; the bundled templates are
// authored that way.
var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// RenderTemplate loads a cover-page template and substitutes every
// placeholder with its value from ctx. Every key in ctx must appear at
// least once in the template, otherwise a TemplateError is returned.
func RenderTemplate(path string, ctx map[string]string) (*docx.Docx, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat template: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}

	seen := make(map[string]bool)
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		substituteParagraph(para, ctx, seen)
	}

	for name := range ctx {
		if !seen[name] {
			return nil, &TemplateError{Path: path, Placeholder: name}
		}
	}

	return doc, nil
}

func substituteParagraph(para *docx.Paragraph, ctx map[string]string, seen map[string]bool) {
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			text, ok := rc.(*docx.Text)
			if !ok {
				continue
			}
			text.Text = placeholderRe.ReplaceAllStringFunc(text.Text, func(m string) string {
				name := placeholderRe.FindStringSubmatch(m)[1]
				value, ok := ctx[name]
				if !ok {
					return m
				}
				seen[name] = true
				return value
			})
		}
	}
}
