package navtree

import "path"

const DefaultIndexName = "index.md"

// IsIndexDocument reports whether the leaf points to a landing document, e.g. "Apps/Demo/index.md".
func IsIndexDocument(leaf Leaf, indexName string) bool {
	return path.Base(string(leaf)) == indexName
}

// Normalize moves the self-index entry of every section of the tree to the front.
// A self-index entry is named like its section and points to an index document. Without such an entry the first
// bare index leaf is promoted instead. All other children keep their relative order. The root level has no name and
// is only descended into. Applying Normalize repeatedly yields the same structure.
func Normalize(root *Section, indexName string) {
	root.normalize("", indexName)
}

func (s *Section) normalize(name string, indexName string) {
	if s == nil {
		return
	}
	keyed, bare := -1, -1
	for i, entry := range s.Children {
		switch v := entry.Value.(type) {
		case *Section:
			v.normalize(entry.Name, indexName)
		case Leaf:
			if !IsIndexDocument(v, indexName) {
				continue
			}
			if keyed < 0 && !entry.IsBare() && entry.Name == name {
				keyed = i
			}
			if bare < 0 && entry.IsBare() {
				bare = i
			}
		}
	}
	if name == "" {
		return
	}
	chosen := keyed
	if chosen < 0 {
		chosen = bare
	}
	if chosen <= 0 {
		return //absent or already first
	}
	self := s.Children[chosen]
	copy(s.Children[1:chosen+1], s.Children[:chosen])
	s.Children[0] = self
}

// SelfIndex returns the entry Normalize would pin first for a section with the given name.
func (s *Section) SelfIndex(name string, indexName string) *Entry {
	var bare *Entry
	for _, entry := range s.Children {
		leaf, isLeaf := entry.Value.(Leaf)
		if !isLeaf || !IsIndexDocument(leaf, indexName) {
			continue
		}
		if !entry.IsBare() && entry.Name == name {
			return entry
		}
		if entry.IsBare() && bare == nil {
			bare = entry
		}
	}
	return bare
}
