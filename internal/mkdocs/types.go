package mkdocs

import (
	"github.com/n2code/docwriter/internal/navtree"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const navKey = "nav"

// RootDocument is a loaded mkdocs.yml. Only the nav is interpreted, everything else is kept as loaded.
type RootDocument struct {
	Nav  *navtree.Section
	Site SiteInfo

	document *yaml.Node //document node, root mapping is its only content
}

// SiteInfo carries the top-level settings which concern the documentation layout.
type SiteInfo struct {
	Name    string `mapstructure:"site_name"`
	DocsDir string `mapstructure:"docs_dir"`
}

// Change holds the serialized root document before and after a save.
type Change struct {
	Before []byte
	After  []byte
	Backup string //path of the defensive copy, empty if there was nothing to back up
}

// Store reads and writes the root document at a fixed location.
type Store struct {
	fs          afero.Fs
	location    string
	backupDir   string
	backupCount int //0 keeps all backups
}

// origin ties a nav entry to the YAML nodes it was loaded from so that formatting survives a save.
type origin struct {
	item  *yaml.Node //sequence item: a single-key mapping for named entries, the value itself for bare ones
	key   *yaml.Node
	value *yaml.Node
}
