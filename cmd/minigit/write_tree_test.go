package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestWriteTreeAndLsTreeCmd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	fs := afero.NewOsFs()

	run(t, fs, "init")
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "a.txt"), []byte("a\n"), 0o644))

	treeID := run(t, fs, "write-tree")
	treeID = treeID[:len(treeID)-1]

	out := run(t, fs, "ls-tree", "--name-only", treeID)
	require.Equal(t, "a.txt\n", out)
}

func TestCommitTreeCmd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	fs := afero.NewOsFs()

	run(t, fs, "init")
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "a.txt"), []byte("a\n"), 0o644))
	treeID := run(t, fs, "write-tree")
	treeID = treeID[:len(treeID)-1]

	commitID := run(t, fs, "commit-tree", treeID, "-m", "initial commit")
	commitID = commitID[:len(commitID)-1]

	out := run(t, fs, "cat-file", "-p", commitID)
	require.Contains(t, out, "tree "+treeID)
	require.Contains(t, out, "initial commit")
}
