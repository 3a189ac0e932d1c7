package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMindMap_ParsesTree(t *testing.T) {
	raw := `{"title":"Heart","children":[{"title":"Valves","children":[]}]}`

	root, degraded, err := MindMap(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, degraded)
	assert.Equal(t, 2, root.Count())
	assert.Equal(t, []string{"Heart", "Valves"}, root.Titles())
}

func TestMindMap_HintPreserved(t *testing.T) {
	raw := `{"title":"AIH","children":[{"title":"Types","hint":"comparison_table","children":[]}]}`

	root, _, err := MindMap(raw)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "comparison_table", root.Children[0].Hint)
}

func TestMindMap_MissingTitleDegradesNodeOnly(t *testing.T) {
	raw := `{"title":"Root","children":[{"children":[]},{"title":"Sibling","children":[]}]}`

	root, degraded, err := MindMap(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, degraded)
	require.Len(t, root.Children, 2)
	assert.Equal(t, unparsedTopicTitle, root.Children[0].Title)
	assert.Equal(t, "Sibling", root.Children[1].Title)
}

func TestMindMap_NonSequenceChildrenDegradesSubtree(t *testing.T) {
	raw := `{"title":"Root","children":[{"title":"Bad","children":"oops"},{"title":"Good","children":[]}]}`

	root, degraded, err := MindMap(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, degraded)
	require.Len(t, root.Children, 2)
	require.Len(t, root.Children[0].Children, 1)
	assert.Equal(t, unparsedSubtreeTitle, root.Children[0].Children[0].Title)
	assert.Equal(t, "Good", root.Children[1].Title)
}

func TestMindMap_FencedPayload(t *testing.T) {
	raw := "```json\n{\"title\":\"Lungs\",\"children\":[]}\n```"

	root, _, err := MindMap(raw)
	require.NoError(t, err)
	assert.Equal(t, "Lungs", root.Title)
}

func TestMindMap_GarbageFails(t *testing.T) {
	_, _, err := MindMap("[1,2,3]")
	var se *SchemaError
	require.ErrorAs(t, err, &se)
}
