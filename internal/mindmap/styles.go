package mindmap

// Topic styling is a static lookup keyed by depth, layout hint, and sibling
// parity. The palette is the fixed teal theme of the generated decks.

const (
	structureLogicRight    = "org.xmind.ui.logic.right"
	structureTreeRight     = "org.xmind.ui.tree.right"
	structureTreeTable     = "org.xmind.ui.treetable"
	structureTreeTableHead = "org.xmind.ui.treetable.toptitle"
)

var rootStyle = map[string]string{
	"fo:font-family":    "NeverMind",
	"fo:font-size":      "28pt",
	"fo:font-weight":    "600",
	"fo:color":          "#ffffff",
	"svg:fill":          "#046562",
	"shape-class":       "org.xmind.topicShape.roundedRect",
	"line-color":        "#046562",
	"border-line-width": "0pt",
}

var mainTopicStyle = map[string]string{
	"fo:font-family":      "NeverMind",
	"fo:font-size":        "24pt",
	"fo:font-weight":      "600",
	"fo:color":            "#FFFFFFFF",
	"svg:fill":            "#06AFA9",
	"shape-class":         "org.xmind.topicShape.roundedRect",
	"line-color":          "#046562",
	"border-line-width":   "2",
	"border-line-color":   "#046562",
	"line-class":          "org.xmind.branchConnection.roundedElbow",
	"border-line-pattern": "handdrawn-solid",
}

var subTopicStyle = map[string]string{
	"fo:font-family":      "NeverMind",
	"fo:font-size":        "20pt",
	"fo:font-weight":      "700",
	"fo:color":            "#046562",
	"svg:fill":            "#A6FEF500",
	"shape-class":         "org.xmind.topicShape.roundedRect",
	"line-color":          "#046562",
	"border-line-width":   "2",
	"border-line-color":   "#046562",
	"line-class":          "org.xmind.branchConnection.roundedfold",
	"border-line-pattern": "dash",
}

// Deep subtopics alternate between a light teal and a light green fill.
var deepTopicStyleA = map[string]string{
	"fo:font-family":      "NeverMind",
	"fo:font-size":        "18pt",
	"fo:font-weight":      "700",
	"fo:color":            "#046562",
	"svg:fill":            "#A6FEF500",
	"shape-class":         "org.xmind.topicShape.roundedRect",
	"line-color":          "#046562",
	"border-line-width":   "2",
	"border-line-color":   "#046562",
	"line-class":          "org.xmind.branchConnection.roundedfold",
	"border-line-pattern": "dash",
}

var deepTopicStyleB = map[string]string{
	"fo:font-family":      "NeverMind",
	"fo:font-size":        "18pt",
	"fo:font-weight":      "700",
	"fo:color":            "#046562",
	"svg:fill":            "#2CD55166",
	"shape-class":         "org.xmind.topicShape.roundedRect",
	"line-color":          "#046562",
	"border-line-width":   "2",
	"border-line-color":   "#046562",
	"line-class":          "org.xmind.branchConnection.roundedfold",
	"border-line-pattern": "dash",
}

var tableHeaderStyle = map[string]string{
	"fo:font-family":      "NeverMind",
	"fo:font-size":        "24pt",
	"fo:font-weight":      "600",
	"fo:color":            "#000000FF",
	"svg:fill":            "#06AFA94D",
	"shape-class":         "org.xmind.topicShape.roundedRect",
	"line-color":          "#046562",
	"border-line-width":   "2",
	"border-line-color":   "#046562",
	"line-class":          "org.xmind.branchConnection.roundedfold",
	"border-line-pattern": "handdrawn-solid",
}

// styleFor picks the preset for a topic. parentStructure is the structure
// class of the enclosing topic; siblingIndex drives the alternating fills.
func styleFor(depth int, parentStructure string, siblingIndex int) map[string]string {
	switch {
	case depth == 0:
		return rootStyle
	case parentStructure == structureTreeTable:
		return tableHeaderStyle
	case parentStructure == structureTreeTableHead:
		return alternating(siblingIndex)
	case depth == 1:
		return mainTopicStyle
	case depth == 2:
		return subTopicStyle
	default:
		return alternating(siblingIndex)
	}
}

func alternating(siblingIndex int) map[string]string {
	if siblingIndex%2 == 0 {
		return deepTopicStyleA
	}
	return deepTopicStyleB
}

// structureFor picks the structure class. A comparison-table hint on a main
// branch switches its subtree to the tree-table layout; children of a
// tree-table become column titles.
func structureFor(depth int, tableHint bool, parentStructure string) string {
	switch {
	case parentStructure == structureTreeTable:
		return structureTreeTableHead
	case depth == 1 && tableHint:
		return structureTreeTable
	case depth == 1:
		return structureTreeRight
	default:
		return structureLogicRight
	}
}
