package docwriter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/n2code/docwriter/internal"
	"github.com/n2code/docwriter/internal/mirror"
	"github.com/n2code/docwriter/internal/navtree"
	"github.com/n2code/docwriter/internal/output"
)

func (d *docwriter) Index(navPath string, sourceFile string) (bool, error) {
	p, err := d.parse(navPath)
	if err != nil {
		return false, err
	}
	if !d.mirror.SourceExists(sourceFile) {
		return false, newCommandError(fmt.Sprintf("cannot index %s", sourceFile), internal.ErrDocumentNotFound)
	}

	if value, exists := d.nav().Get(p); exists {
		switch v := value.(type) {
		case *navtree.Section:
			return false, newCommandError(fmt.Sprintf("cannot index %s at %s", sourceFile, navPath), internal.ErrPathIsSection)
		case navtree.Leaf:
			if strings.HasSuffix(string(v), d.settings.DocumentSuffix) {
				d.Print(output.Normal, "%s is already indexed (%s)\n", navPath, d.displayableDocument(string(v)))
				return false, nil
			}
		}
	}

	dir := storageDir(p)
	stored := mirror.StoragePath(dir, filepath.Base(sourceFile))
	if err := d.nav().Add(p, navtree.Leaf(stored)); err != nil {
		return false, newCommandError(fmt.Sprintf("cannot index %s at %s", sourceFile, navPath), err)
	}
	if err := d.persist(); err != nil {
		return false, err
	}

	created, err := d.mirror.EnsureSectionDirs(p[:len(p)-1])
	for _, dir := range created {
		d.Print(output.Verbose, "created section directory %s\n", d.displayableDocument(dir))
	}
	if err != nil {
		d.reportIncompleteMirror(navPath)
		return false, newCommandError("section directories incomplete", err)
	}
	placed, err := d.mirror.PlaceDocument(dir, sourceFile)
	if err != nil {
		d.reportIncompleteMirror(navPath)
		return false, newCommandError("document not copied", err)
	}

	d.Print(output.Normal, "Indexed %s as %s\n", d.displayableDocument(placed), navPath)
	return true, nil
}

func (d *docwriter) IndexFolder(navPath string) error {
	p, err := d.parse(navPath)
	if err != nil {
		return err
	}
	dir := []string(p)
	if !d.mirror.IsSectionDir(dir) {
		return newCommandError(fmt.Sprintf("no directory %s in documentation root", mirror.StoragePath(dir)), internal.ErrDocumentNotFound)
	}

	stubCreated, err := d.mirror.EnsureIndexStub(dir)
	if err != nil {
		return newCommandError("index document not written", err)
	}
	indexDocument := navtree.Leaf(d.mirror.IndexDocument(dir))
	if stubCreated {
		d.Print(output.Verbose, "created stub %s\n", d.displayableDocument(string(indexDocument)))
	}

	selfPath := p.Child(p.Last())
	if value, exists := d.nav().Get(p); exists {
		if section, isSection := value.(*navtree.Section); isSection {
			if current, occupied := section.Get(navtree.Path{p.Last()}); occupied {
				if leaf, isLeaf := current.(navtree.Leaf); !isLeaf || !navtree.IsIndexDocument(leaf, d.mirror.IndexName()) {
					return newCommandError(fmt.Sprintf("entry %s is taken by %s", selfPath, describe(current)), navtree.ErrNameTaken)
				}
			}
			section.RemoveBareLeaves(func(leaf navtree.Leaf) bool { return leaf == indexDocument })
		}
	}
	if err := d.nav().Add(selfPath, indexDocument); err != nil {
		return newCommandError(fmt.Sprintf("cannot index folder %s", navPath), err)
	}
	navtree.Normalize(d.nav(), d.mirror.IndexName())
	if err := d.persist(); err != nil {
		return err
	}

	d.Print(output.Normal, "Indexed %s as landing document of %s\n", d.displayableDocument(string(indexDocument)), navPath)
	return nil
}
