package docwriter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/n2code/docwriter/internal/mirror"
	"github.com/n2code/docwriter/internal/navtree"
	"github.com/n2code/docwriter/internal/output"
)

func (d *docwriter) Unindex(navPath string, sourceFile string) (bool, error) {
	p, err := d.parse(navPath)
	if err != nil {
		return false, err
	}
	if _, exists := d.nav().Get(p); !exists {
		d.Print(output.Normal, "%s is not indexed\n", navPath)
		return false, nil
	}

	before := d.nav().Clone()
	d.nav().Remove(p)
	if sourceFile != "" {
		dir := storageDir(p)
		dirRemoved, err := d.mirror.RemoveDocument(dir, filepath.Base(sourceFile))
		if err != nil {
			d.doc.Nav = before
			return false, newCommandError(fmt.Sprintf("document not removed, %s stays indexed", navPath), err)
		}
		if dirRemoved {
			d.Print(output.Verbose, "removed empty directory %s\n", d.displayableDocument(mirror.StoragePath(dir)))
		}
	}
	if err := d.persist(); err != nil {
		return false, err
	}

	d.Print(output.Normal, "Removed %s from nav\n", navPath)
	return true, nil
}

func (d *docwriter) Update(navPath string, newFile string) (bool, error) {
	p, err := d.parse(navPath)
	if err != nil {
		return false, err
	}
	if !d.nav().Update(p, navtree.Leaf(newFile)) {
		d.Print(output.Normal, "%s is not indexed, nothing to update\n", navPath)
		return false, nil
	}
	if err := d.persist(); err != nil {
		return false, err
	}
	d.Print(output.Normal, "%s now points to %s\n", navPath, newFile)
	return true, nil
}

func (d *docwriter) Rename(navPath string, newName string) (bool, error) {
	p, err := d.parse(navPath)
	if err != nil {
		return false, err
	}
	value, exists := d.nav().Get(p)
	if !exists {
		d.Print(output.Normal, "%s is not indexed, nothing to rename\n", navPath)
		return false, nil
	}
	if newName == p.Last() {
		return false, nil
	}

	if _, err := d.nav().Rename(p, newName); err != nil {
		return false, newCommandError(fmt.Sprintf("cannot rename %s", navPath), err)
	}
	renamed := p.Parent().Child(newName)

	var oldDir, newDir []string
	if _, isSection := value.(*navtree.Section); isSection {
		oldDir, newDir = p, renamed
	} else {
		oldDir, newDir = storageDir(p), storageDir(renamed)
	}
	moveDir := len(oldDir) == len(p) && len(newDir) == len(renamed) && d.mirror.IsSectionDir(oldDir)
	if moveDir {
		if err := d.mirror.RenameSection(oldDir, newDir); err != nil {
			_, revertErr := d.nav().Rename(renamed, p.Last())
			if revertErr != nil {
				err = fmt.Errorf("%w (nav not reverted: %s)", err, revertErr)
			}
			return false, newCommandError("section directory not renamed", err)
		}
		oldPrefix := mirror.StoragePath(oldDir) + "/"
		newPrefix := mirror.StoragePath(newDir) + "/"
		rewritten := 0
		d.nav().Walk(func(_ navtree.Path, entry *navtree.Entry) {
			if leaf, isLeaf := entry.Value.(navtree.Leaf); isLeaf && strings.HasPrefix(string(leaf), oldPrefix) {
				entry.Value = navtree.Leaf(newPrefix + strings.TrimPrefix(string(leaf), oldPrefix))
				rewritten++
			}
		})
		d.Print(output.Verbose, "moved directory %s to %s, %s rewritten\n", oldPrefix, newPrefix, output.Counted(rewritten, "document path", "document paths"))
	}
	if section, isSection := value.(*navtree.Section); isSection {
		d.renameSelfIndex(section, p.Last(), newName)
	}
	if err := d.persist(); err != nil {
		return false, err
	}

	d.Print(output.Normal, "Renamed %s to %s\n", navPath, renamed)
	return true, nil
}

// renameSelfIndex keeps the keyed self-index entry of a renamed section named like the section.
func (d *docwriter) renameSelfIndex(section *navtree.Section, oldName string, newName string) {
	self := section.SelfIndex(oldName, d.mirror.IndexName())
	if self == nil || self.IsBare() || self.Name != oldName {
		return
	}
	if _, taken := section.Get(navtree.Path{newName}); taken {
		return
	}
	self.Name = newName
}

func (d *docwriter) Tidy() error {
	before := d.nav().Clone()
	navtree.Normalize(d.nav(), d.mirror.IndexName())
	if d.nav().Equal(before) {
		d.Print(output.Normal, "Nav is tidy already\n")
		return nil
	}
	if err := d.persist(); err != nil {
		return err
	}
	d.Print(output.Normal, "Moved index entries to the top of their sections\n")
	return nil
}
