package parse

import (
	"encoding/json"
	"fmt"

	"github.com/dberrada/studyforge/internal/content"
)

// sectionJSON is the wire shape the model is asked to emit for summaries and
// remakes: a list of typed sections.
type sectionJSON struct {
	Title   string          `json:"title"`
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
}

type tableRowJSON struct {
	KeyPoint string `json:"key_point"`
	Details  string `json:"details"`
}

// Sections parses a model JSON payload into typed sections. A section that
// fails schema validation degrades to an unparsed placeholder; its siblings
// are unaffected. Returns the sections, the number of degraded units, and a
// SchemaError only when the payload as a whole is not a section list.
func Sections(raw string) ([]content.Section, int, error) {
	raw = StripCodeFence(raw)

	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		// Some models wrap the list in an object.
		var wrapper struct {
			Sections []json.RawMessage `json:"sections"`
		}
		if err2 := json.Unmarshal([]byte(raw), &wrapper); err2 != nil || wrapper.Sections == nil {
			return nil, 0, &SchemaError{Msg: "payload is not a JSON section list", Err: err}
		}
		arr = wrapper.Sections
	}

	degraded := 0
	sections := make([]content.Section, 0, len(arr))
	for i, rawSec := range arr {
		sec, bad := parseSection(rawSec, i)
		degraded += bad
		sections = append(sections, sec)
	}
	return sections, degraded, nil
}

func parseSection(raw json.RawMessage, idx int) (content.Section, int) {
	var head sectionJSON
	if err := json.Unmarshal(raw, &head); err != nil {
		return placeholderSection(fmt.Sprintf("Section %d", idx+1), "section could not be parsed"), 1
	}
	if head.Title == "" {
		return placeholderSection(fmt.Sprintf("Section %d", idx+1), "section is missing a title"), 1
	}

	sec := content.Section{Heading: head.Title}
	switch head.Type {
	case "paragraph":
		var text string
		if err := json.Unmarshal(head.Content, &text); err != nil || text == "" {
			sec.Items = []content.Item{placeholderItem("paragraph content was not a string")}
			return sec, 1
		}
		sec.Items = []content.Item{{Kind: content.ItemParagraph, Text: text}}

	case "list":
		var items []string
		if err := json.Unmarshal(head.Content, &items); err != nil || len(items) == 0 {
			sec.Items = []content.Item{placeholderItem("list content was not a string array")}
			return sec, 1
		}
		sec.Items = []content.Item{{Kind: content.ItemList, List: items}}

	case "table":
		var rows []tableRowJSON
		if err := json.Unmarshal(head.Content, &rows); err != nil || len(rows) == 0 {
			sec.Items = []content.Item{placeholderItem("table content was not a row array")}
			return sec, 1
		}
		for _, row := range rows {
			sec.Items = append(sec.Items, content.Item{
				Kind: content.ItemTableRow,
				Row:  content.TableRow{KeyPoint: row.KeyPoint, Details: row.Details},
			})
		}

	default:
		sec.Items = []content.Item{placeholderItem(fmt.Sprintf("unknown section type %q", head.Type))}
		return sec, 1
	}

	return sec, 0
}

func placeholderSection(heading, note string) content.Section {
	return content.Section{
		Heading: heading,
		Items:   []content.Item{placeholderItem(note)},
	}
}

func placeholderItem(note string) content.Item {
	return content.Item{Kind: content.ItemUnparsed, Text: note}
}

// EncodeSections serializes sections back into the wire shape, so an
// aggregated candidate can be embedded in a verification prompt. Placeholder
// items are encoded as bracketed paragraphs; the verifier may repair them.
func EncodeSections(sections []content.Section) (string, error) {
	out := make([]sectionJSON, 0, len(sections))
	for _, sec := range sections {
		enc := sectionJSON{Title: sec.Heading}

		var rows []tableRowJSON
		for _, item := range sec.Items {
			if item.Kind == content.ItemTableRow {
				rows = append(rows, tableRowJSON{KeyPoint: item.Row.KeyPoint, Details: item.Row.Details})
			}
		}

		switch {
		case len(rows) > 0:
			enc.Type = "table"
			b, err := json.Marshal(rows)
			if err != nil {
				return "", err
			}
			enc.Content = b
		case len(sec.Items) > 0 && sec.Items[0].Kind == content.ItemList:
			enc.Type = "list"
			b, err := json.Marshal(sec.Items[0].List)
			if err != nil {
				return "", err
			}
			enc.Content = b
		default:
			enc.Type = "paragraph"
			text := ""
			for _, item := range sec.Items {
				if item.Kind == content.ItemParagraph {
					text = item.Text
					break
				}
				if item.Kind == content.ItemUnparsed {
					text = "[" + item.Text + "]"
				}
			}
			b, err := json.Marshal(text)
			if err != nil {
				return "", err
			}
			enc.Content = b
		}
		out = append(out, enc)
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
