package navtree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlacesSelfIndexFirst(t *testing.T) {
	others := []string{"Alpha", "Beta", "Gamma"}
	for position := 0; position <= len(others); position++ {
		t.Run(fmt.Sprintf("at_%d", position), func(t *testing.T) {
			children := make([]*Entry, 0, len(others)+1)
			for i, name := range others {
				if i == position {
					children = append(children, named("N", Leaf("docs/N/index.md")))
				}
				children = append(children, named(name, Leaf("N/"+name+"/x.md")))
			}
			if position == len(others) {
				children = append(children, named("N", Leaf("docs/N/index.md")))
			}
			root := NewSection(named("N", NewSection(children...)))

			Normalize(root, DefaultIndexName)

			section := root.Children[0].Value.(*Section)
			require.Len(t, section.Children, 4)
			assert.Equal(t, "N", section.Children[0].Name)
			assert.Equal(t, Leaf("docs/N/index.md"), section.Children[0].Value)
			for i, name := range others {
				assert.Equal(t, name, section.Children[i+1].Name, "relative order of the rest is preserved")
			}
		})
	}
}

func TestNormalizePrefersKeyedOverBare(t *testing.T) {
	section := NewSection(named("A", Leaf("A/a.md")), bare("A/index.md"), named("S", Leaf("S/index.md")))
	root := NewSection(named("S", section))
	Normalize(root, DefaultIndexName)
	assert.True(t, section.Equal(NewSection(named("S", Leaf("S/index.md")), named("A", Leaf("A/a.md")), bare("A/index.md"))))
}

func TestNormalizePromotesBareIndexWithoutKeyedForm(t *testing.T) {
	section := NewSection(named("A", Leaf("S/A/a.md")), bare("S/index.md"))
	root := NewSection(named("S", section))
	Normalize(root, DefaultIndexName)
	assert.True(t, section.Equal(NewSection(bare("S/index.md"), named("A", Leaf("S/A/a.md")))))
}

func TestNormalizeIgnoresForeignIndexes(t *testing.T) {
	section := NewSection(
		named("A", Leaf("S/A/a.md")),
		named("Other", Leaf("Other/index.md")), //named differently than the section
		named("S", Leaf("S/readme.md")),        //not an index document
	)
	root := NewSection(named("S", section))
	before := root.Clone()
	Normalize(root, DefaultIndexName)
	assert.True(t, root.Equal(before))
}

func TestNormalizeRecursesAndLeavesRootOrder(t *testing.T) {
	inner := NewSection(named("X", Leaf("Outer/Inner/X/x.md")), named("Inner", Leaf("Outer/Inner/index.md")))
	outer := NewSection(named("Inner", inner), named("Outer", Leaf("Outer/index.md")))
	root := NewSection(named("Home", Leaf("home.md")), bare("index.md"), named("Outer", outer))

	Normalize(root, DefaultIndexName)

	assert.Equal(t, "Home", root.Children[0].Name, "root level has no self-index")
	assert.Equal(t, "Outer", outer.Children[0].Name)
	assert.Equal(t, "Inner", inner.Children[0].Name)
	assert.Equal(t, Leaf("Outer/Inner/index.md"), inner.Children[0].Value)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	trees := map[string]*Section{
		"empty": NewSection(),
		"flat":  NewSection(named("A", Leaf("a.md")), bare("index.md")),
		"nested": NewSection(
			named("S", NewSection(
				named("T", NewSection(bare("S/T/index.md"), named("U", Leaf("S/T/U/u.md")), named("T", Leaf("S/T/index.md")))),
				named("x", Leaf("S/x.md")),
				named("S", Leaf("S/index.md")),
			)),
		),
		"duplicates": NewSection(named("D", NewSection(named("D", Leaf("D/index.md")), named("y", Leaf("y.md")), named("D", Leaf("D2/index.md"))))),
	}
	for name, tree := range trees {
		t.Run(name, func(t *testing.T) {
			once := tree.Clone()
			Normalize(once, DefaultIndexName)
			twice := once.Clone()
			Normalize(twice, DefaultIndexName)
			assert.True(t, once.Equal(twice))
		})
	}
}

func TestSelfIndex(t *testing.T) {
	section := NewSection(named("A", Leaf("A/a.md")), bare("S/index.md"))
	assert.Equal(t, Leaf("S/index.md"), section.SelfIndex("S", DefaultIndexName).Value)
	section.Children = append(section.Children, named("S", Leaf("S/index.md")))
	assert.Equal(t, "S", section.SelfIndex("S", DefaultIndexName).Name)
	assert.Nil(t, NewSection().SelfIndex("S", DefaultIndexName))
}

func TestIsIndexDocument(t *testing.T) {
	assert.True(t, IsIndexDocument("index.md", DefaultIndexName))
	assert.True(t, IsIndexDocument("Apps/Demo/index.md", DefaultIndexName))
	assert.False(t, IsIndexDocument("Apps/Demo/myindex.md", DefaultIndexName))
	assert.False(t, IsIndexDocument("Apps/index.md/readme.md", DefaultIndexName))
}
