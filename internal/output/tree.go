package output

import (
	"github.com/disiqueira/gotree/v3"
	"github.com/n2code/docwriter/internal/navtree"
)

const leafArrow = " → "
const unnamedSection = "(unnamed)"

// VisualNavTree renders a nav tree with one node per entry.
type VisualNavTree struct {
	tree        gotree.Tree
	style       Styler
	markIndexes bool
	indexName   string
}

// NewVisualNavTree prepares a rendering. With markIndexes the self-index entry of each section is flagged.
func NewVisualNavTree(rootLabel string, style Styler, markIndexes bool, indexName string) VisualNavTree {
	return VisualNavTree{tree: gotree.New(rootLabel), style: style, markIndexes: markIndexes, indexName: indexName}
}

func (t VisualNavTree) Insert(root *navtree.Section) {
	t.addLevel(t.tree, "", root)
}

func (t VisualNavTree) addLevel(node gotree.Tree, sectionName string, level *navtree.Section) {
	if level == nil {
		return
	}
	var self *navtree.Entry
	if t.markIndexes && sectionName != "" {
		self = level.SelfIndex(sectionName, t.indexName)
	}
	for _, entry := range level.Children {
		switch v := entry.Value.(type) {
		case navtree.Leaf:
			label := t.style.Dim(string(v))
			if !entry.IsBare() {
				label = entry.Name + leafArrow + label
			}
			if entry == self {
				label += " " + t.style.Marker("[index]")
			}
			node.Add(label)
		case *navtree.Section:
			name := entry.Name
			if entry.IsBare() {
				name = unnamedSection
			}
			t.addLevel(node.Add(t.style.Section(name)), entry.Name, v)
		}
	}
}

func (t VisualNavTree) Render() string {
	return t.tree.Print()
}
