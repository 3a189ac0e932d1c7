package mindmap

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dberrada/studyforge/internal/content"
)

func readEntry(t *testing.T, zr *zip.Reader, name string) []byte {
	t.Helper()
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			return data
		}
	}
	t.Fatalf("entry %s not found in archive", name)
	return nil
}

func decodeSheets(t *testing.T, data []byte) []sheetJSON {
	t.Helper()
	var sheets []sheetJSON
	require.NoError(t, json.Unmarshal(data, &sheets))
	require.Len(t, sheets, 1)
	return sheets
}

func flattenTitles(topic topicJSON) []string {
	out := []string{topic.Title}
	if topic.Children != nil {
		for _, child := range topic.Children.Attached {
			out = append(out, flattenTitles(child)...)
		}
	}
	return out
}

func TestBuild_TwoNodeTree(t *testing.T) {
	root := &content.MindMapNode{
		Title:    "Heart",
		Children: []content.MindMapNode{{Title: "Valves"}},
	}

	data, err := Build(root, "cardiology")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 3)

	sheets := decodeSheets(t, readEntry(t, zr, "content.json"))
	assert.Equal(t, "cardiology", sheets[0].Title)

	titles := flattenTitles(sheets[0].RootTopic)
	assert.Equal(t, []string{"Heart", "Valves"}, titles)
}

func TestBuild_NodeCountAndOrderPreserved(t *testing.T) {
	root := &content.MindMapNode{
		Title: "AIH",
		Children: []content.MindMapNode{
			{Title: "Triad", Children: []content.MindMapNode{
				{Title: "Hypergammaglobulinemia"},
				{Title: "Autoantibodies"},
			}},
			{Title: "Epidemiology"},
			{Title: "Types", Hint: content.HintComparisonTable, Children: []content.MindMapNode{
				{Title: "Type 1", Children: []content.MindMapNode{{Title: "ANA & ASMA"}}},
				{Title: "Type 2", Children: []content.MindMapNode{{Title: "LKM-1 & LC-1"}}},
			}},
		},
	}

	data, err := Build(root, "hepatology")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	sheets := decodeSheets(t, readEntry(t, zr, "content.json"))

	titles := flattenTitles(sheets[0].RootTopic)
	assert.Len(t, titles, root.Count())
	assert.Equal(t, root.Titles(), titles)
}

func TestBuild_ComparisonHintUsesTreeTable(t *testing.T) {
	root := &content.MindMapNode{
		Title: "Root",
		Children: []content.MindMapNode{
			{Title: "Types", Hint: content.HintComparisonTable, Children: []content.MindMapNode{
				{Title: "Type 1", Children: []content.MindMapNode{{Title: "Cell"}}},
			}},
			{Title: "Plain"},
		},
	}

	data, err := Build(root, "sheet")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	sheets := decodeSheets(t, readEntry(t, zr, "content.json"))

	children := sheets[0].RootTopic.Children.Attached
	require.Len(t, children, 2)

	types := children[0]
	assert.Equal(t, structureTreeTable, types.StructureClass)
	header := types.Children.Attached[0]
	assert.Equal(t, structureTreeTableHead, header.StructureClass)
	assert.Equal(t, tableHeaderStyle, header.Style.Properties)

	assert.Equal(t, structureTreeRight, children[1].StructureClass)
}

func TestBuild_ManifestAndMetadataWellFormed(t *testing.T) {
	data, err := Build(&content.MindMapNode{Title: "Solo"}, "s")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var manifest struct {
		FileEntries map[string]any `json:"file-entries"`
	}
	require.NoError(t, json.Unmarshal(readEntry(t, zr, "manifest.json"), &manifest))
	assert.Contains(t, manifest.FileEntries, "content.json")
	assert.Contains(t, manifest.FileEntries, "metadata.json")

	var metadata struct {
		Creator struct {
			Name string `json:"name"`
		} `json:"creator"`
	}
	require.NoError(t, json.Unmarshal(readEntry(t, zr, "metadata.json"), &metadata))
	assert.Equal(t, CreatorName, metadata.Creator.Name)
}

func TestNewID_UniqueAndFixedLength(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := newID()
		assert.Len(t, id, 26)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
