package docwriter

import (
	"fmt"

	"github.com/n2code/docwriter/internal/mirror"
	"github.com/n2code/docwriter/internal/navtree"
	"github.com/n2code/docwriter/internal/output"
)

const (
	purgeOptionDelete = "Delete"
	purgeOptionKeep   = "Keep"
)

func (d *docwriter) PurgeSection(navPath string, confirm RequestChoice) (bool, error) {
	p, err := d.parse(navPath)
	if err != nil {
		return false, err
	}
	value, exists := d.nav().Get(p)
	if !exists {
		d.Print(output.Normal, "%s is not indexed\n", navPath)
		return false, nil
	}
	section, isSection := value.(*navtree.Section)
	if !isSection {
		return false, newCommandError(fmt.Sprintf("cannot purge document %s (use unindex)", navPath), ErrNotASection)
	}

	dir := []string(p)
	if documents := countDocuments(section); documents > 0 && confirm != nil {
		question := fmt.Sprintf("Delete section %s with %s from nav and directory %s with all its files?",
			navPath, output.Counted(documents, "document", "documents"), d.displayableDocument(mirror.StoragePath(dir)))
		if confirm(question, []string{purgeOptionDelete, purgeOptionKeep}, false) != purgeOptionDelete {
			d.Print(output.Normal, "Kept %s\n", navPath)
			return false, nil
		}
	}

	d.nav().Remove(p)
	if err := d.persist(); err != nil {
		return false, err
	}
	if d.mirror.IsSectionDir(dir) {
		if err := d.mirror.PurgeSection(dir); err != nil {
			d.reportIncompleteMirror(navPath)
			return false, newCommandError("section removed from nav but directory not deleted", err)
		}
	}

	d.Print(output.Normal, "Purged %s\n", navPath)
	return true, nil
}

func countDocuments(section *navtree.Section) (count int) {
	section.Walk(func(_ navtree.Path, entry *navtree.Entry) {
		if _, isLeaf := entry.Value.(navtree.Leaf); isLeaf {
			count++
		}
	})
	return
}
