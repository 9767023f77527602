package docwriter

import (
	"context"

	"github.com/n2code/docwriter/internal/navtree"
)

// Docwriter maintains the nav of an mkdocs.yml together with the documentation directory it describes.
// A handle is retrieved using Open. Navigation paths are dotted section names, e.g. "Apps.Demo".
// Every successful mutation is saved to mkdocs.yml immediately. Disk changes are not rolled back if the save fails.
type Docwriter interface {

	// Index registers the source file at the navigation path and copies it into the matching directory.
	// Missing sections and their directories (each with a stub index document) are created on the way.
	// A path already pointing to a document is left alone and false is returned.
	Index(navPath string, sourceFile string) (indexed bool, err error)

	// Unindex removes the navigation entry and, if a source file is given, its copy in the documentation directory.
	// Sections emptied by the removal disappear from the nav. Directories are only deleted if nothing is left in them.
	// An unknown path is a no-op returning false.
	Unindex(navPath string, sourceFile string) (removed bool, err error)

	// IndexFolder makes the index document of an existing section directory the section's first entry.
	// A stub index document is written if the directory has none.
	// Only bare entries pointing to this very index document are replaced, other bare index leaves stay.
	IndexFolder(navPath string) error

	// Tree reloads mkdocs.yml and returns a copy of its nav.
	Tree() (*navtree.Section, error)

	// Lookup returns the document path or section found at the navigation path.
	Lookup(navPath string) (value navtree.Value, exists bool, err error)

	// Update points an existing navigation entry to another document. Unknown paths return false.
	Update(navPath string, newFile string) (updated bool, err error)

	// Rename changes the last segment of the navigation path and moves the section directory along.
	// Document paths below the old directory are rewritten.
	Rename(navPath string, newName string) (renamed bool, err error)

	// PurgeSection removes a section from the nav and deletes its directory with all contents.
	// Non-empty sections are only purged if confirm picks the first option.
	PurgeSection(navPath string, confirm RequestChoice) (purged bool, err error)

	// Tidy moves the index entry of every section to the top.
	Tidy() error

	// PrintTree outputs the nav as a tree, optionally marking each section's index entry.
	PrintTree(markIndexes bool) error

	// WatchTree calls onChange once right away and then whenever mkdocs.yml changes on disk, until ctx is done.
	WatchTree(ctx context.Context, onChange func()) error
}

// RequestChoice represents a single-choice decision callback, the first option is considered the default "yes"-like choice.
// If the choice is aborted an empty string must be returned.
// If cleanup is set the implementation is recommended to remove the choice presentation after selection.
type RequestChoice func(request string, options []string, cleanup bool) (choice string)

const ChoiceAborted = ""
