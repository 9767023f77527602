package docwriter

import (
	"fmt"

	"github.com/n2code/docwriter/internal/navtree"
	"github.com/n2code/docwriter/internal/output"
)

func (d *docwriter) Tree() (*navtree.Section, error) {
	if err := d.load(); err != nil {
		return nil, err
	}
	return d.nav().Clone(), nil
}

func (d *docwriter) Lookup(navPath string) (navtree.Value, bool, error) {
	p, err := d.parse(navPath)
	if err != nil {
		return nil, false, err
	}
	value, exists := d.nav().Get(p)
	return value, exists, nil
}

func (d *docwriter) PrintTree(markIndexes bool) error {
	nav, err := d.Tree()
	if err != nil {
		return err
	}
	label := d.doc.Site.Name
	if label == "" {
		label = d.store.Location()
	}
	tree := output.NewVisualNavTree(label+" [nav]", d.printer.Style, markIndexes, d.mirror.IndexName())
	tree.Insert(nav)
	d.Print(output.Required, "%s", tree.Render())
	if len(nav.Children) == 0 {
		d.Print(output.Normal, "(nav is empty)\n")
	}
	return nil
}

// describe renders a nav value for messages.
func describe(value navtree.Value) string {
	switch v := value.(type) {
	case navtree.Leaf:
		return string(v)
	case *navtree.Section:
		if v == nil {
			return "a broken section"
		}
		return fmt.Sprintf("a section with %s", output.Counted(len(v.Children), "entry", "entries"))
	}
	return "nothing"
}
