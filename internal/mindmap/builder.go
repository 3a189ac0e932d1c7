// Package mindmap packages a mind-map node tree into the XMind container
// format: a zip archive holding a content description, a manifest, and
// metadata, each independently well-formed JSON.
package mindmap

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dberrada/studyforge/internal/content"
)

// CreatorName identifies this generator in container metadata.
const CreatorName = "studyforge"

const creatorVersion = "1.0"

type topicJSON struct {
	ID             string        `json:"id"`
	Class          string        `json:"class"`
	Title          string        `json:"title"`
	StructureClass string        `json:"structureClass"`
	Style          styleJSON     `json:"style"`
	Children       *childrenJSON `json:"children,omitempty"`
}

type childrenJSON struct {
	Attached []topicJSON `json:"attached"`
}

type styleJSON struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

type sheetJSON struct {
	ID        string    `json:"id"`
	Class     string    `json:"class"`
	Title     string    `json:"title"`
	RootTopic topicJSON `json:"rootTopic"`
	Theme     themeJSON `json:"theme"`
}

type themeJSON struct {
	Map          themeRefJSON `json:"map"`
	CentralTopic themeRefJSON `json:"centralTopic"`
	MainTopic    themeRefJSON `json:"mainTopic"`
	SubTopic     themeRefJSON `json:"subTopic"`
}

type themeRefJSON struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Build walks the node tree and returns the packaged .xmind bytes. Every
// input node appears exactly once in the output, in depth-first order with
// children in original order.
func Build(root *content.MindMapNode, sheetTitle string) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("mind map root is nil")
	}

	sheet := sheetJSON{
		ID:        newID(),
		Class:     "sheet",
		Title:     sheetTitle,
		RootTopic: buildTopic(root, 0, "", 0),
		Theme: themeJSON{
			Map: themeRefJSON{
				ID: newID(),
				Properties: map[string]string{
					"svg:fill":   "#c4fff9",
					"color-list": "#ffffff #c4fff9 #9ceaef #68d8d6 #06AFA9 #046562",
				},
			},
			CentralTopic: themeRefJSON{ID: newID()},
			MainTopic:    themeRefJSON{ID: newID()},
			SubTopic:     themeRefJSON{ID: newID()},
		},
	}

	contentData, err := json.MarshalIndent([]sheetJSON{sheet}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}

	manifestData, err := json.MarshalIndent(map[string]any{
		"file-entries": map[string]any{
			"content.json":  map[string]any{},
			"metadata.json": map[string]any{},
		},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}

	metadataData, err := json.MarshalIndent(map[string]any{
		"creator": map[string]string{
			"name":    CreatorName,
			"version": creatorVersion,
		},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := []struct {
		name string
		data []byte
	}{
		{"content.json", contentData},
		{"manifest.json", manifestData},
		{"metadata.json", metadataData},
	}
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", e.name, err)
		}
		if _, err := w.Write(e.data); err != nil {
			return nil, fmt.Errorf("write %s: %w", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}

	return buf.Bytes(), nil
}

// buildTopic converts one node and recurses into its children, threading the
// parent structure class so tree-table subtrees lay out as tables.
func buildTopic(node *content.MindMapNode, depth int, parentStructure string, siblingIndex int) topicJSON {
	structure := structureFor(depth, node.Hint == content.HintComparisonTable, parentStructure)

	topic := topicJSON{
		ID:             newID(),
		Class:          "topic",
		Title:          node.Title,
		StructureClass: structure,
		Style: styleJSON{
			ID:         newID(),
			Properties: styleFor(depth, parentStructure, siblingIndex),
		},
	}

	if len(node.Children) > 0 {
		attached := make([]topicJSON, 0, len(node.Children))
		for i := range node.Children {
			attached = append(attached, buildTopic(&node.Children[i], depth+1, structure, i))
		}
		topic.Children = &childrenJSON{Attached: attached}
	}

	return topic
}
