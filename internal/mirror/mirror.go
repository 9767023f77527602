package mirror

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/n2code/docwriter/internal/navtree"
	"github.com/spf13/afero"
)

const dirMode = 0755
const fileMode = 0644

// StubText supplies the body of a generated index document for the named section.
type StubText func(section string) string

// Mirror keeps one directory per nav section below the documentation root.
// Directories are addressed by their segment chain, results use storage-relative slash-separated paths.
type Mirror struct {
	docs      afero.Fs
	sources   afero.Fs
	indexName string
	stubText  StubText
}

// New creates a mirror writing into docs and copying from sources.
func New(docs afero.Fs, sources afero.Fs, indexName string, stubText StubText) *Mirror {
	if indexName == "" {
		indexName = navtree.DefaultIndexName
	}
	if stubText == nil {
		stubText = func(string) string { return "" }
	}
	return &Mirror{docs: docs, sources: sources, indexName: indexName, stubText: stubText}
}

func onDisk(dir []string, name ...string) string {
	parts := append([]string{string(filepath.Separator)}, dir...)
	return filepath.Join(append(parts, name...)...)
}

// StoragePath joins segments and an optional file name into a storage-relative path.
func StoragePath(dir []string, name ...string) string {
	parts := append(append(make([]string, 0, len(dir)+len(name)), dir...), name...)
	return path.Join(parts...)
}

func (m *Mirror) IndexName() string {
	return m.indexName
}

// IndexDocument is the storage-relative path of the directory's index document.
func (m *Mirror) IndexDocument(dir []string) string {
	return StoragePath(dir, m.indexName)
}

// StubContent renders a generated index document: a heading with the section name followed by the default text.
func (m *Mirror) StubContent(section string) string {
	return fmt.Sprintf("# %s\n\n%s", section, m.stubText(section))
}

// EnsureSectionDirs creates every directory along segments which is still missing and gives each directory lacking
// an index document a stub. Returns the storage-relative directories that were created.
func (m *Mirror) EnsureSectionDirs(segments []string) (created []string, err error) {
	for depth := 1; depth <= len(segments); depth++ {
		dir := segments[:depth]
		isDir, statErr := afero.DirExists(m.docs, onDisk(dir))
		if statErr != nil {
			return created, fail(OpInspectPath, StoragePath(dir), statErr)
		}
		if !isDir {
			if mkErr := m.docs.Mkdir(onDisk(dir), dirMode); mkErr != nil {
				return created, fail(OpCreateDir, StoragePath(dir), mkErr)
			}
			created = append(created, StoragePath(dir))
		}
		if _, err = m.EnsureIndexStub(dir); err != nil {
			return
		}
	}
	return
}

// EnsureIndexStub writes a stub index document into an existing directory unless one is present.
func (m *Mirror) EnsureIndexStub(dir []string) (created bool, err error) {
	stub := onDisk(dir, m.indexName)
	exists, err := afero.Exists(m.docs, stub)
	if err != nil {
		return false, fail(OpInspectPath, m.IndexDocument(dir), err)
	}
	if exists {
		return false, nil
	}
	section := ""
	if len(dir) > 0 {
		section = dir[len(dir)-1]
	}
	if err = afero.WriteFile(m.docs, stub, []byte(m.StubContent(section)), fileMode); err != nil {
		return false, fail(OpWriteStub, m.IndexDocument(dir), err)
	}
	return true, nil
}

// PlaceDocument copies the source file into finalDir, creating the directory if needed and replacing a document
// of the same name. Returns the storage-relative path of the copy.
func (m *Mirror) PlaceDocument(finalDir []string, sourceFile string) (string, error) {
	if err := m.docs.MkdirAll(onDisk(finalDir), dirMode); err != nil {
		return "", fail(OpCreateDir, StoragePath(finalDir), err)
	}
	content, err := afero.ReadFile(m.sources, sourceFile)
	if err != nil {
		return "", fail(OpReadSource, sourceFile, err)
	}
	name := filepath.Base(sourceFile)
	target := StoragePath(finalDir, name)
	if err = afero.WriteFile(m.docs, onDisk(finalDir, name), content, fileMode); err != nil {
		return "", fail(OpCopy, target, err)
	}
	return target, nil
}

// RemoveDocument deletes the named file from finalDir if present and then the directory itself if nothing is left in it.
func (m *Mirror) RemoveDocument(finalDir []string, fileName string) (dirRemoved bool, err error) {
	if err = m.docs.Remove(onDisk(finalDir, fileName)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fail(OpRemove, StoragePath(finalDir, fileName), err)
	}
	if len(finalDir) == 0 || !m.IsSectionDir(finalDir) {
		return false, nil
	}
	empty, err := afero.IsEmpty(m.docs, onDisk(finalDir))
	if err != nil {
		return false, fail(OpInspectPath, StoragePath(finalDir), err)
	}
	if !empty {
		return false, nil
	}
	if err = m.docs.Remove(onDisk(finalDir)); err != nil {
		return false, fail(OpRemove, StoragePath(finalDir), err)
	}
	return true, nil
}

// RenameSection moves a section directory. The target must not exist yet.
func (m *Mirror) RenameSection(oldDir []string, newDir []string) error {
	if exists, _ := afero.Exists(m.docs, onDisk(newDir)); exists {
		return fail(OpRename, StoragePath(newDir), os.ErrExist)
	}
	if err := m.docs.Rename(onDisk(oldDir), onDisk(newDir)); err != nil {
		return fail(OpRename, StoragePath(oldDir), err)
	}
	return nil
}

// PurgeSection deletes a section directory with everything in it.
func (m *Mirror) PurgeSection(dir []string) error {
	if len(dir) == 0 {
		return fail(OpPurge, "", errors.New("refusing to delete the documentation root"))
	}
	if err := m.docs.RemoveAll(onDisk(dir)); err != nil {
		return fail(OpPurge, StoragePath(dir), err)
	}
	return nil
}

func (m *Mirror) IsSectionDir(dir []string) bool {
	isDir, _ := afero.DirExists(m.docs, onDisk(dir))
	return isDir
}

func (m *Mirror) SourceExists(sourceFile string) bool {
	info, err := m.sources.Stat(sourceFile)
	return err == nil && !info.IsDir()
}
