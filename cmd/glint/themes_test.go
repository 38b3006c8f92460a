package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThemesListsBuiltins(t *testing.T) {
	root, buf := newTestRoot(t)
	root.SetArgs([]string{"themes"})
	require.NoError(t, root.Execute())

	out := buf.String()
	require.Contains(t, out, "default")
	require.Contains(t, out, "dark")
	require.Contains(t, out, "NAME")
}

func TestThemesCheckAcceptsValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brand.yaml")
	contents := "name: brand\nbase: default\npalette:\n  primary:\n    light: \"#336699\"\n    dark: \"#6699cc\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	root, buf := newTestRoot(t)
	root.SetArgs([]string{"themes", "--check", path})
	require.NoError(t, root.Execute())

	out := buf.String()
	require.Contains(t, out, "brand")
	require.Contains(t, out, "#336699")
}

func TestThemesCheckRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	contents := "name: Broken Theme\nbase: default\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	root, _ := newTestRoot(t)
	root.SetArgs([]string{"themes", "--check", path})

	require.Error(t, root.Execute())
}
