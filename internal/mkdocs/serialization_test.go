package mkdocs

import (
	"testing"

	"github.com/n2code/docwriter/internal"
	"github.com/n2code/docwriter/internal/navtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `site_name: "My Docs" # the title
theme:
  name: material
markdown_extensions:
  - pymdownx.superfences:
      custom_fences:
        - name: mermaid
          format: !!python/name:pymdownx.superfences.fence_code_format
nav:
  # landing page
  - "Home": 'index.md'
  - Apps:
      - Apps: Apps/index.md
      - Demo: Apps/Demo/readme.md
  - about.md
`

func sampleNav() *navtree.Section {
	return navtree.NewSection(
		&navtree.Entry{Name: "Home", Value: navtree.Leaf("index.md")},
		&navtree.Entry{Name: "Apps", Value: navtree.NewSection(
			&navtree.Entry{Name: "Apps", Value: navtree.Leaf("Apps/index.md")},
			&navtree.Entry{Name: "Demo", Value: navtree.Leaf("Apps/Demo/readme.md")},
		)},
		&navtree.Entry{Value: navtree.Leaf("about.md")},
	)
}

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	assert.True(t, doc.Nav.Equal(sampleNav()))
	assert.Equal(t, "My Docs", doc.Site.Name)
	assert.Empty(t, doc.Site.DocsDir)
}

func TestParseSiteInfo(t *testing.T) {
	doc, err := Parse([]byte("site_name: Handbook\ndocs_dir: content\n"))
	require.NoError(t, err)
	assert.Equal(t, SiteInfo{Name: "Handbook", DocsDir: "content"}, doc.Site)
	assert.Empty(t, doc.Nav.Children)
}

func TestParseWithoutNav(t *testing.T) {
	for name, input := range map[string]string{
		"empty":    "",
		"blank":    "\n  \n",
		"no key":   "site_name: x\n",
		"null nav": "nav:\n",
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := Parse([]byte(input))
			require.NoError(t, err)
			assert.NotNil(t, doc.Nav)
			assert.Empty(t, doc.Nav.Children)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		treeShape bool
	}{
		{name: "top level list", input: "- a\n- b\n"},
		{name: "broken yaml", input: "site_name: [unclosed\n"},
		{name: "nav scalar", input: "nav: text\n", treeShape: true},
		{name: "two keys in item", input: "nav:\n  - A: a.md\n    B: b.md\n", treeShape: true},
		{name: "mapping value", input: "nav:\n  - A:\n      x: y\n", treeShape: true},
		{name: "empty name", input: "nav:\n  - \"\": a.md\n", treeShape: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.ErrorIs(t, err, ErrMalformed)
			if tt.treeShape {
				assert.ErrorIs(t, err, internal.ErrInvalidTreeShape)
			}
		})
	}
}

func TestMarshalPreservesFormatting(t *testing.T) {
	doc, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	require.NoError(t, doc.Nav.Add(navtree.Path{"Apps", "New"}, "Apps/New/new.md"))

	out, err := doc.Marshal()
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "# the title")
	assert.Contains(t, text, "# landing page")
	assert.Contains(t, text, `"Home": 'index.md'`)
	assert.Contains(t, text, "python/name:pymdownx.superfences.fence_code_format")
	assert.Contains(t, text, "New: Apps/New/new.md")

	reloaded, err := Parse(out)
	require.NoError(t, err)
	assert.True(t, reloaded.Nav.Equal(doc.Nav))
	assert.Equal(t, "My Docs", reloaded.Site.Name)
}

func TestMarshalReflectsRenameAndRemoval(t *testing.T) {
	doc, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	renamed, err := doc.Nav.Rename(navtree.Path{"Apps"}, "Applications")
	require.NoError(t, err)
	require.True(t, renamed)
	require.True(t, doc.Nav.Remove(navtree.Path{"Home"}))

	out, err := doc.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Home")

	reloaded, err := Parse(out)
	require.NoError(t, err)
	value, exists := reloaded.Nav.Get(navtree.Path{"Applications", "Demo"})
	require.True(t, exists)
	assert.Equal(t, navtree.Leaf("Apps/Demo/readme.md"), value)
}

func TestMarshalAddsMissingNav(t *testing.T) {
	doc, err := Parse([]byte("site_name: x\n"))
	require.NoError(t, err)
	require.NoError(t, doc.Nav.Add(navtree.Path{"A"}, "a.md"))

	out, err := doc.Marshal()
	require.NoError(t, err)
	reloaded, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, "x", reloaded.Site.Name)
	assert.True(t, reloaded.Nav.Equal(navtree.NewSection(&navtree.Entry{Name: "A", Value: navtree.Leaf("a.md")})))
}

func TestMarshalQuotesAmbiguousScalars(t *testing.T) {
	doc, err := Parse([]byte("nav:\n  - A: a.md\n"))
	require.NoError(t, err)
	require.True(t, doc.Nav.Update(navtree.Path{"A"}, navtree.Leaf("true")))

	out, err := doc.Marshal()
	require.NoError(t, err)
	reloaded, err := Parse(out)
	require.NoError(t, err)
	value, _ := reloaded.Nav.Get(navtree.Path{"A"})
	assert.Equal(t, navtree.Leaf("true"), value)
}

func TestAliasedEntriesAreInlined(t *testing.T) {
	doc, err := Parse([]byte("shared: &home index.md\nnav:\n  - Home: *home\n"))
	require.NoError(t, err)
	value, exists := doc.Nav.Get(navtree.Path{"Home"})
	require.True(t, exists)
	assert.Equal(t, navtree.Leaf("index.md"), value)

	out, err := doc.Marshal()
	require.NoError(t, err)
	reloaded, err := Parse(out)
	require.NoError(t, err)
	assert.True(t, reloaded.Nav.Equal(doc.Nav))
}
