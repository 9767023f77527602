package docwriter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/n2code/docwriter/internal"
	"github.com/n2code/docwriter/internal/config"
	"github.com/n2code/docwriter/internal/mirror"
	"github.com/n2code/docwriter/internal/mkdocs"
	"github.com/n2code/docwriter/internal/navtree"
	"github.com/n2code/docwriter/internal/output"
	"github.com/spf13/afero"
)

type VerbosityLevel int

const (
	DefaultVerbosity VerbosityLevel = iota
	VerboseMode
	QuietMode
)

// CreateConfig holds a set of common switches that concern all calls to the docwriter API.
// The zero value is a sensible default.
type CreateConfig struct {
	Verbosity     VerbosityLevel
	FancyTerminal bool      //styled output with escape sequences
	Out           io.Writer //defaults to stdout
	ErrOut        io.Writer //defaults to stderr
}

type docwriter struct {
	settings config.Config
	store    *mkdocs.Store
	doc      *mkdocs.RootDocument
	mirror   *mirror.Mirror
	docRoot  string //absolute, system-native path
	printer  output.Printer
}

// Open loads the nav of the configured mkdocs.yml and prepares the documentation directory for mirroring.
// Missing locations fail with ErrBackingStoreMissing.
func Open(settings *config.Config, options CreateConfig) (Docwriter, error) {
	system := afero.NewOsFs()
	return open(system, system, settings, options)
}

func open(system afero.Fs, sources afero.Fs, settings *config.Config, options CreateConfig) (*docwriter, error) {
	if settings.MkdocsConfigPath == "" {
		return nil, newCommandError("no mkdocs.yml configured", internal.ErrBackingStoreMissing)
	}
	d := makeDocwriter(options)
	d.settings = *settings

	d.store = mkdocs.NewStore(system, settings.MkdocsConfigPath, settings.ResolveBackupDir(), settings.BackupCount)
	if err := d.load(); err != nil {
		return nil, err
	}

	d.docRoot = settings.ResolveDocRoot(d.doc.Site.DocsDir)
	if isDir, _ := afero.DirExists(system, d.docRoot); !isDir {
		return nil, newCommandError(fmt.Sprintf("documentation root %s not found", d.docRoot), internal.ErrBackingStoreMissing)
	}
	stubText := func(string) string { return settings.DefaultSectionText }
	d.mirror = mirror.New(afero.NewBasePathFs(system, d.docRoot), sources, settings.IndexName, stubText)

	d.Print(output.Verbose, "nav loaded from %s, documents in %s\n", d.store.Location(), d.docRoot)
	return d, nil
}

func makeDocwriter(options CreateConfig) (instance *docwriter) {
	terminal, diagnosis := options.Out, options.ErrOut
	if terminal == nil {
		terminal = os.Stdout
	}
	if diagnosis == nil {
		diagnosis = os.Stderr
	}
	classes := []output.Class{output.Required, output.Error}
	switch options.Verbosity {
	case VerboseMode:
		classes = append(classes, output.Verbose)
		fallthrough
	case DefaultVerbosity:
		classes = append(classes, output.Normal)
	}
	return &docwriter{printer: output.NewPrinterTo(terminal, diagnosis, classes, options.FancyTerminal)}
}

func (d *docwriter) Print(class output.Class, format string, a ...interface{}) {
	d.printer.Out(class, format, a...)
}

func (d *docwriter) load() error {
	doc, err := d.store.Load()
	if err != nil {
		return newCommandError("loading nav failed", err)
	}
	d.doc = doc
	return nil
}

// persist saves the nav, the in-memory state is kept even if that fails.
func (d *docwriter) persist() error {
	change, err := d.store.Save(d.doc)
	if err != nil {
		return newCommandError("nav could not be saved", err)
	}
	if change.Backup != "" {
		d.Print(output.Verbose, "backup of previous nav: %s\n", d.displayablePath(change.Backup, false, true))
	}
	if d.printer.Includes(output.Verbose) {
		if diff := d.printer.Style.LineDiff(string(change.Before), string(change.After)); diff != "" {
			d.Print(output.Verbose, "changes to %s:\n%s\n", d.store.Location(), output.Indent(2, strings.TrimSuffix(diff, "\n")))
		}
	}
	return nil
}

// reportIncompleteMirror flags a nav change which is saved although the documentation directory lags behind.
func (d *docwriter) reportIncompleteMirror(navPath string) {
	d.Print(output.Error, "%s is saved in %s but the documentation directory was not updated completely\n", navPath, d.store.Location())
}

func (d *docwriter) nav() *navtree.Section {
	return d.doc.Nav
}

func (d *docwriter) parse(navPath string) (navtree.Path, error) {
	p, err := navtree.ParsePath(navPath)
	if err != nil {
		return nil, newCommandError(fmt.Sprintf("bad navigation path %q", navPath), err)
	}
	return p, nil
}
