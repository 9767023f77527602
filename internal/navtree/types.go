package navtree

// Value is the payload of a nav entry: either a Leaf or a *Section.
type Value interface {
	isValue()
}

// Leaf references a document by its path relative to the documentation root (slash separated).
type Leaf string

// Section is an ordered tree level. The root of the nav is a Section without a name.
type Section struct {
	Children []*Entry
}

// Entry is one element of a tree level.
// Entries without a name are bare leaves: they are listed but cannot be addressed by path.
type Entry struct {
	Name  string
	Value Value
	// Annotation is owned by the backing store (e.g. source formatting) and carried along untouched.
	Annotation interface{}
}

func (Leaf) isValue()     {}
func (*Section) isValue() {}

// Path is a parsed dotted nav path, one element per segment.
type Path []string

const Separator = "."

func NewSection(children ...*Entry) *Section {
	return &Section{Children: children}
}

func (e *Entry) IsBare() bool {
	return e.Name == ""
}

// IsSection reports whether the entry holds a subtree.
func (e *Entry) IsSection() bool {
	_, ok := e.Value.(*Section)
	return ok
}
