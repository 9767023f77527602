package mkdocs

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/n2code/docwriter/internal"
	"github.com/n2code/docwriter/internal/navtree"
	"gopkg.in/yaml.v3"
)

var ErrMalformed = errors.New("malformed root document")

func malformed(node *yaml.Node, format string, args ...interface{}) error {
	return fmt.Errorf("%w (%w): line %d: %s", ErrMalformed, internal.ErrInvalidTreeShape, node.Line, fmt.Sprintf(format, args...))
}

// Parse reads a root document. An empty input is an empty document without nav.
func Parse(data []byte) (*RootDocument, error) {
	doc := &RootDocument{Nav: navtree.NewSection()}
	if len(bytes.TrimSpace(data)) == 0 {
		doc.document = &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{newMapping()}}
		return doc, nil
	}

	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	if document.Kind != yaml.DocumentNode || len(document.Content) != 1 {
		return nil, fmt.Errorf("%w: expected a single YAML document", ErrMalformed)
	}
	root := document.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrMalformed)
	}
	doc.document = &document

	site, err := decodeSite(root)
	if err != nil {
		return nil, err
	}
	doc.Site = site

	if _, nav := findKey(root, navKey); nav != nil {
		switch nav.Kind {
		case yaml.SequenceNode:
			if doc.Nav, err = decodeLevel(nav); err != nil {
				return nil, err
			}
		case yaml.ScalarNode:
			if nav.Tag != "!!null" {
				return nil, malformed(nav, "nav is not a list")
			}
		default:
			return nil, malformed(nav, "nav is not a list")
		}
	}
	return doc, nil
}

// Marshal writes the nav back into the loaded document and serializes it.
func (doc *RootDocument) Marshal() ([]byte, error) {
	root := doc.document.Content[0]
	keyIndex, current := findKey(root, navKey)
	nav := encodeLevel(doc.Nav, current)
	if keyIndex < 0 {
		root.Content = append(root.Content, newScalar(navKey), nav)
	} else {
		root.Content[keyIndex+1] = nav
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc.document); err != nil {
		return nil, fmt.Errorf("encoding root document failed: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encoding root document failed: %w", err)
	}
	return out.Bytes(), nil
}

func decodeSite(root *yaml.Node) (site SiteInfo, err error) {
	scalars := make(map[string]interface{})
	for i := 0; i+1 < len(root.Content); i += 2 {
		if key, value := root.Content[i], root.Content[i+1]; value.Kind == yaml.ScalarNode && value.Tag != "!!null" {
			scalars[key.Value] = value.Value
		}
	}
	if err = mapstructure.Decode(scalars, &site); err != nil {
		err = fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	return
}

func decodeLevel(sequence *yaml.Node) (*navtree.Section, error) {
	section := &navtree.Section{Children: make([]*navtree.Entry, 0, len(sequence.Content))}
	for _, item := range sequence.Content {
		entry, err := decodeEntry(item)
		if err != nil {
			return nil, err
		}
		section.Children = append(section.Children, entry)
	}
	return section, nil
}

func decodeEntry(item *yaml.Node) (*navtree.Entry, error) {
	if item.Kind == yaml.AliasNode {
		//aliased content is inlined on save, no formatting to keep
		entry, err := decodeEntry(item.Alias)
		if err == nil {
			entry.Annotation = nil
		}
		return entry, err
	}
	switch item.Kind {
	case yaml.MappingNode:
		if len(item.Content) != 2 {
			return nil, malformed(item, "nav entry must have exactly one name, found %d", len(item.Content)/2)
		}
		key, value := item.Content[0], item.Content[1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, malformed(key, "nav entry name must be a non-empty text")
		}
		decoded, err := decodeValue(value)
		if err != nil {
			return nil, err
		}
		return &navtree.Entry{Name: key.Value, Value: decoded, Annotation: &origin{item: item, key: key, value: value}}, nil
	default:
		decoded, err := decodeValue(item)
		if err != nil {
			return nil, err
		}
		return &navtree.Entry{Value: decoded, Annotation: &origin{item: item, value: item}}, nil
	}
}

func decodeValue(node *yaml.Node) (navtree.Value, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.ScalarNode:
		return navtree.Leaf(node.Value), nil
	case yaml.SequenceNode:
		return decodeLevel(node)
	default:
		return nil, malformed(node, "nav value must be a document path or a list")
	}
}

func encodeLevel(section *navtree.Section, original *yaml.Node) *yaml.Node {
	sequence := original
	if sequence == nil || sequence.Kind != yaml.SequenceNode {
		sequence = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	}
	content := make([]*yaml.Node, 0, len(section.Children))
	for _, entry := range section.Children {
		content = append(content, encodeEntry(entry))
	}
	sequence.Content = content
	return sequence
}

func encodeEntry(entry *navtree.Entry) *yaml.Node {
	known, _ := entry.Annotation.(*origin)
	if known == nil {
		known = &origin{}
	}
	if entry.IsBare() {
		return encodeValue(entry.Value, known.value)
	}

	item := known.item
	if item == nil || item.Kind != yaml.MappingNode {
		item = newMapping()
	}
	key := known.key
	if key == nil {
		key = newScalar(entry.Name)
	} else {
		setScalar(key, entry.Name)
	}
	item.Content = []*yaml.Node{key, encodeValue(entry.Value, known.value)}
	return item
}

func encodeValue(value navtree.Value, original *yaml.Node) *yaml.Node {
	switch v := value.(type) {
	case *navtree.Section:
		if v == nil {
			v = navtree.NewSection()
		}
		return encodeLevel(v, original)
	case navtree.Leaf:
		if original == nil || original.Kind != yaml.ScalarNode {
			return newScalar(string(v))
		}
		setScalar(original, string(v))
		return original
	default:
		panic(fmt.Sprintf("unknown nav value type %T", value))
	}
}

// setScalar changes the text but keeps quoting style and comments.
func setScalar(node *yaml.Node, text string) {
	if node.Value == text {
		return
	}
	node.Value = text
	node.Tag = "!!str"
	if node.Style&(yaml.TaggedStyle|yaml.LiteralStyle|yaml.FoldedStyle) != 0 {
		node.Style = 0
	}
}

func newScalar(text string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: text}
}

func newMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func findKey(mapping *yaml.Node, key string) (keyIndex int, value *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return i, mapping.Content[i+1]
		}
	}
	return -1, nil
}
