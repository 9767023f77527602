package navtree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/n2code/docwriter/internal"
)

var ErrNameTaken = errors.New("name already taken")

// find returns the first named entry on this level matching the segment. Bare leaves never match.
func (s *Section) find(segment string) *Entry {
	for _, entry := range s.Children {
		if !entry.IsBare() && entry.Name == segment {
			return entry
		}
	}
	return nil
}

// detach removes the entry by identity, keeping the order of all others.
func (s *Section) detach(target *Entry) {
	for i, entry := range s.Children {
		if entry == target {
			s.Children = append(s.Children[:i:i], s.Children[i+1:]...)
			return
		}
	}
}

// lookup walks the exact path without creating anything.
func (s *Section) lookup(p Path) (level *Section, entry *Entry) {
	level = s
	for i, segment := range p {
		if level == nil {
			return nil, nil
		}
		entry = level.find(segment)
		if entry == nil {
			return nil, nil
		}
		if i == len(p)-1 {
			return level, entry
		}
		sub, isSection := entry.Value.(*Section)
		if !isSection {
			return nil, nil
		}
		level = sub
	}
	return nil, nil
}

// Get resolves the path to a Leaf or a *Section. Absence is reported via the flag.
func (s *Section) Get(p Path) (value Value, exists bool) {
	_, entry := s.lookup(p)
	if entry == nil {
		return nil, false
	}
	return entry.Value, true
}

// Add places the leaf at the given path, creating missing sections on the way.
// A leaf sitting where an intermediate section is required is replaced by an empty section (explicit overwrite).
// An existing leaf at the final segment is overwritten, an existing section there is refused with internal.ErrPathIsSection.
func (s *Section) Add(p Path, leaf Leaf) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	level := s
	for i, segment := range p {
		if level == nil {
			return fmt.Errorf("%w: level %s is not a section", internal.ErrInvalidTreeShape, p[:i])
		}
		entry := level.find(segment)
		if i == len(p)-1 {
			if entry == nil {
				level.Children = append(level.Children, &Entry{Name: segment, Value: leaf})
				return nil
			}
			if entry.IsSection() {
				return fmt.Errorf("%w: %s", internal.ErrPathIsSection, p)
			}
			entry.Value = leaf
			return nil
		}
		if entry == nil {
			entry = &Entry{Name: segment, Value: NewSection()}
			level.Children = append(level.Children, entry)
		} else if !entry.IsSection() {
			entry.Value = NewSection()
		}
		level = entry.Value.(*Section)
	}
	return nil
}

// Remove deletes the entry at the given path and prunes every ancestor section which became empty because of it.
// A path which does not resolve is a no-op reported as false.
func (s *Section) Remove(p Path) bool {
	type frame struct {
		level *Section
		entry *Entry
	}
	if len(p) == 0 {
		return false
	}
	frames := make([]frame, 0, len(p))
	level := s
	for i, segment := range p {
		if level == nil {
			return false
		}
		entry := level.find(segment)
		if entry == nil {
			return false
		}
		frames = append(frames, frame{level: level, entry: entry})
		if i == len(p)-1 {
			break
		}
		sub, isSection := entry.Value.(*Section)
		if !isSection {
			return false
		}
		level = sub
	}

	removed := frames[len(frames)-1]
	removed.level.detach(removed.entry)
	for i := len(frames) - 2; i >= 0; i-- {
		if len(frames[i+1].level.Children) > 0 {
			break
		}
		frames[i].level.detach(frames[i].entry)
	}
	return true
}

// Update replaces the value of an existing entry. Nothing is created, a missing path yields false.
func (s *Section) Update(p Path, value Value) bool {
	_, entry := s.lookup(p)
	if entry == nil {
		return false
	}
	entry.Value = value
	return true
}

// Rename changes the name of the addressed entry in place.
func (s *Section) Rename(p Path, newName string) (bool, error) {
	if newName == "" || strings.Contains(newName, Separator) {
		return false, fmt.Errorf(`%w: bad name "%s"`, ErrInvalidPath, newName)
	}
	level, entry := s.lookup(p)
	if entry == nil {
		return false, nil
	}
	if entry.Name == newName {
		return true, nil
	}
	if level.find(newName) != nil {
		return false, fmt.Errorf(`%w: "%s" next to %s`, ErrNameTaken, newName, p)
	}
	entry.Name = newName
	return true, nil
}

// RemoveBareLeaves drops all unnamed leaves on this level (not recursively) which satisfy the predicate.
func (s *Section) RemoveBareLeaves(match func(Leaf) bool) (removed int) {
	kept := s.Children[:0]
	for _, entry := range s.Children {
		if leaf, isLeaf := entry.Value.(Leaf); isLeaf && entry.IsBare() && match(leaf) {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	for i := len(kept); i < len(s.Children); i++ {
		s.Children[i] = nil
	}
	s.Children = kept
	return
}

// Walk visits all entries depth-first in order. The parent path of bare entries is their only address.
func (s *Section) Walk(visit func(parent Path, entry *Entry)) {
	s.walk(nil, visit)
}

func (s *Section) walk(parent Path, visit func(Path, *Entry)) {
	if s == nil {
		return
	}
	for _, entry := range s.Children {
		visit(parent, entry)
		if sub, isSection := entry.Value.(*Section); isSection && !entry.IsBare() {
			sub.walk(parent.Child(entry.Name), visit)
		}
	}
}

// Clone creates a deep copy of the structure. Annotations are shared, not copied.
func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}
	clone := &Section{Children: make([]*Entry, 0, len(s.Children))}
	for _, entry := range s.Children {
		copied := &Entry{Name: entry.Name, Annotation: entry.Annotation}
		switch v := entry.Value.(type) {
		case Leaf:
			copied.Value = v
		case *Section:
			copied.Value = v.Clone()
		}
		clone.Children = append(clone.Children, copied)
	}
	return clone
}

// Equal compares names, order and values. Annotations are ignored.
func (s *Section) Equal(other *Section) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Children) != len(other.Children) {
		return false
	}
	for i, entry := range s.Children {
		counterpart := other.Children[i]
		if entry.Name != counterpart.Name {
			return false
		}
		switch v := entry.Value.(type) {
		case Leaf:
			if w, ok := counterpart.Value.(Leaf); !ok || v != w {
				return false
			}
		case *Section:
			if w, ok := counterpart.Value.(*Section); !ok || !v.Equal(w) {
				return false
			}
		default:
			if counterpart.Value != nil {
				return false
			}
		}
	}
	return true
}
