package docwriter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/n2code/docwriter/internal"
	"github.com/n2code/docwriter/internal/mirror"
	"github.com/n2code/docwriter/internal/navtree"
)

// StoragePath derives where a source file is stored for a navigation path, relative to the documentation root.
// Each segment is a directory, except that a last segment repeating its parent shares the parent's directory:
//
//	Apps.Demo + local/readme.md -> Apps/Demo/readme.md
//	Apps.Apps + local/readme.md -> Apps/readme.md
func StoragePath(navPath string, sourceFile string) (string, error) {
	p, err := navtree.ParsePath(navPath)
	if err != nil {
		return "", err
	}
	return mirror.StoragePath(storageDir(p), filepath.Base(sourceFile)), nil
}

func storageDir(p navtree.Path) []string {
	n := len(p)
	if n < 2 || p[n-1] != p[n-2] {
		return append([]string(nil), p...)
	}
	collapsed := make([]string, 0, n-1)
	collapsed = append(collapsed, p[:n-2]...)
	return append(collapsed, p[n-1])
}

const docRootScheme = "docs:" + string(filepath.Separator) + string(filepath.Separator)

func (d *docwriter) displayablePath(absolutePath string, shortenDocRoot bool, omitDotSlash bool) string {
	pleasant := pleasantPath(filepath.Clean(absolutePath), d.docRoot, mustGetwd(), shortenDocRoot, omitDotSlash)
	if strings.HasPrefix(pleasant, docRootScheme) {
		pleasant = strings.Replace(pleasant, docRootScheme, d.printer.Style.Dim(docRootScheme), 1)
	}
	return pleasant
}

// displayableDocument shows a storage-relative document path.
func (d *docwriter) displayableDocument(stored string) string {
	return d.displayablePath(filepath.Join(d.docRoot, filepath.FromSlash(stored)), true, false)
}

const dot string = "."
const dirSeparator = string(filepath.Separator)
const dotDirSeparator = dot + dirSeparator
const doubleDot = dot + dot
const doubleDotDirSeparator = doubleDot + dirSeparator

func isChildOf(child string, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	internal.AssertNoError(err, "paths should both be nice and not of mixed nature")
	return !(rel == dot || rel == doubleDot || strings.HasPrefix(rel, doubleDotDirSeparator))
}

// pleasantPath turns an absolute path into something easily understandable from the current context.
// If the working directory is inside the documentation root a relative path is emitted, with leading "./" to stress relativity (opt-out possible).
// If the current location is outside the documentation root an anchored path is printed and the root is abbreviated.
// If the [absolute] input path is a target outside the documentation root it is reflected unchanged.
func pleasantPath(absolute string, root string, wd string, collapseRoot bool, omitDotSlash bool) string {
	if wdAboveRoot := isChildOf(root, wd); wdAboveRoot {
		if !collapseRoot || !isChildOf(absolute, root) {
			return absolute
		}
		anchored, _ := filepath.Rel(root, absolute) //error impossible because both are rooted
		return docRootScheme + anchored
	}

	prefix := ""
	relative, _ := filepath.Rel(wd, absolute) //error impossible because both are rooted
	if !omitDotSlash && !strings.HasPrefix(relative, doubleDotDirSeparator) {
		prefix = dotDirSeparator
	}
	return prefix + relative
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return wd
}
