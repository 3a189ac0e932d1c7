package parse

import (
	"encoding/json"

	"github.com/dberrada/studyforge/internal/content"
)

// nodeJSON is the recursive wire shape for mind-map trees. Children stays raw
// so a malformed subtree can be degraded without losing its siblings.
type nodeJSON struct {
	Title    string          `json:"title"`
	Hint     string          `json:"hint"`
	Children json.RawMessage `json:"children"`
}

const (
	unparsedTopicTitle   = "[unparsed topic]"
	unparsedSubtreeTitle = "[unparsed subtree]"
)

// MindMap parses a model JSON payload into a mind-map node tree. A node
// missing its title degrades to a placeholder title; a node whose children
// field is not a sequence keeps the node and replaces the subtree with a
// single placeholder child. Sibling nodes are unaffected in both cases.
// Returns the root, the number of degraded units, and a SchemaError only
// when the payload is not a JSON object at all.
func MindMap(raw string) (*content.MindMapNode, int, error) {
	raw = StripCodeFence(raw)

	var rootRaw nodeJSON
	if err := json.Unmarshal([]byte(raw), &rootRaw); err != nil {
		return nil, 0, &SchemaError{Msg: "payload is not a JSON node object", Err: err}
	}

	degraded := 0
	root := decodeNode(rootRaw, &degraded)
	return &root, degraded, nil
}

func decodeNode(raw nodeJSON, degraded *int) content.MindMapNode {
	node := content.MindMapNode{Title: raw.Title, Hint: raw.Hint}
	if node.Title == "" {
		node.Title = unparsedTopicTitle
		*degraded++
	}

	if len(raw.Children) == 0 || string(raw.Children) == "null" {
		return node
	}

	var childRaws []json.RawMessage
	if err := json.Unmarshal(raw.Children, &childRaws); err != nil {
		node.Children = []content.MindMapNode{{Title: unparsedSubtreeTitle}}
		*degraded++
		return node
	}

	for _, childRaw := range childRaws {
		var child nodeJSON
		if err := json.Unmarshal(childRaw, &child); err != nil {
			node.Children = append(node.Children, content.MindMapNode{Title: unparsedTopicTitle})
			*degraded++
			continue
		}
		node.Children = append(node.Children, decodeNode(child, degraded))
	}
	return node
}
