package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/n2code/docwriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI in-process and resets the global mode flags afterwards.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		verbose, quiet, plain = false, false, false
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestArgumentValidation(t *testing.T) {
	for name, args := range map[string][]string{
		"index without file":   {"index", "Apps.Demo"},
		"unindex without path": {"unindex"},
		"tree with argument":   {"tree", "Apps"},
		"rename without name":  {"rename", "Apps"},
		"unknown command":      {"publish"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestVerboseAndQuietAreExclusive(t *testing.T) {
	_, err := run(t, "-v", "-q", "tree")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "docwriter dev")
}

func TestMissingRootDocumentIsFatal(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "--env", filepath.Join(dir, "none.env"), "--mkdocs-config", filepath.Join(dir, "mkdocs.yml"), "tree")
	assert.ErrorIs(t, err, docwriter.ErrBackingStoreMissing)
}

func TestIndexCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0755))
	mkdocsPath := filepath.Join(dir, "mkdocs.yml")
	require.NoError(t, os.WriteFile(mkdocsPath, []byte("site_name: Test\n"), 0644))
	source := filepath.Join(dir, "readme.md")
	require.NoError(t, os.WriteFile(source, []byte("# Readme\n"), 0644))

	_, err := run(t, "--plain", "--env", filepath.Join(dir, "none.env"), "--mkdocs-config", mkdocsPath, "index", "Apps.Demo", source)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "docs", "Apps", "Demo", "readme.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Readme\n", string(content))

	out, err := run(t, "--plain", "--env", filepath.Join(dir, "none.env"), "--mkdocs-config", mkdocsPath, "get", "Apps.Demo")
	require.NoError(t, err)
	assert.Equal(t, "Apps/Demo/readme.md\n", out)
}
