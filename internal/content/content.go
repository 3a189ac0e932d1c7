package content

// TextChunk is a contiguous slice of source text ready for one generation
// request. Items is the number of questions (or sections) the chunk should
// yield, derived from its word count.
type TextChunk struct {
	Text  string
	Index int
	Items int
}

// MCQRecord is one parsed multiple-choice question. Answer holds the verbatim
// text of the correct option, which must be one of Options.
type MCQRecord struct {
	ID       int
	Question string
	Options  []string
	Answer   string
}

// AnswerLetter returns the a-e letter of the correct option, or "" if the
// answer does not match any option.
func (r MCQRecord) AnswerLetter() string {
	for i, opt := range r.Options {
		if opt == r.Answer {
			return string(rune('a' + i))
		}
	}
	return ""
}

// ItemKind tags the closed set of content item variants.
type ItemKind int

const (
	ItemParagraph ItemKind = iota
	ItemList
	ItemTableRow
	// ItemUnparsed marks a content unit that failed schema validation and was
	// degraded to a placeholder instead of aborting the artifact.
	ItemUnparsed
)

// TableRow is one two-column row of a key-point table.
type TableRow struct {
	KeyPoint string
	Details  string
}

// Item is one unit of section content. Exactly one of the payload fields is
// meaningful, selected by Kind; Text doubles as the placeholder note for
// ItemUnparsed.
type Item struct {
	Kind ItemKind
	Text string
	List []string
	Row  TableRow
}

// Section is a titled block of summary or remake content. Item order is the
// order the model produced.
type Section struct {
	Heading string
	Items   []Item
}

// MindMapNode is one topic in the mind-map tree. The tree is a pure forward
// tree: parents own children by value, there are no back-references.
type MindMapNode struct {
	Title    string
	Hint     string
	Children []MindMapNode
}

// HintComparisonTable asks for a tabular sub-layout instead of a plain
// outline branch.
const HintComparisonTable = "comparison_table"

// Count returns the number of nodes in the tree rooted at n, including n.
func (n *MindMapNode) Count() int {
	total := 1
	for i := range n.Children {
		total += n.Children[i].Count()
	}
	return total
}

// Titles returns every title in the tree in depth-first order, children in
// original order.
func (n *MindMapNode) Titles() []string {
	out := []string{n.Title}
	for i := range n.Children {
		out = append(out, n.Children[i].Titles()...)
	}
	return out
}
