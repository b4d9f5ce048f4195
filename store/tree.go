package store

import (
	"os"
	"path/filepath"

	"github.com/halvorne/minigit/internal/gitpath"
	"github.com/halvorne/minigit/object"
	"github.com/halvorne/minigit/oid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// KeepFunc decides whether a path found while walking a working tree
// should be included in a tree object. WriteTree calls it with the path of
// every directory entry it considers, including directories themselves
// (so a directory can be pruned before it's recursed into).
type KeepFunc func(path string) bool

// SkipGitDir is the KeepFunc every CLI write-tree invocation uses: it
// excludes .git itself and nothing else.
func SkipGitDir(path string) bool {
	return filepath.Base(path) != gitpath.DotGitPath
}

// WriteTree recursively snapshots dir into tree objects and returns the id
// of the top-level tree. Entries for which keep returns false are skipped
// entirely. Unlike a nested subtree, the top-level call always persists
// its tree object, even when dir contributes no entries at all: a caller
// asking for dir's tree gets dir's tree, empty or not.
func (s *Store) WriteTree(dir string, keep KeepFunc) (oid.Oid, error) {
	entries, err := s.collectEntries(dir, keep)
	if err != nil {
		return oid.Null, err
	}
	return s.WriteObject(object.NewTree(entries).ToObject())
}

// writeSubtree is WriteTree's recursive counterpart. A directory whose
// kept children are all themselves skipped (or that has none) produces no
// entry in its parent: this store elides empty directories rather than
// recording them.
func (s *Store) writeSubtree(dir string, keep KeepFunc) (oid.Oid, error) {
	entries, err := s.collectEntries(dir, keep)
	if err != nil {
		return oid.Null, err
	}
	if len(entries) == 0 {
		return oid.Null, nil
	}
	return s.WriteObject(object.NewTree(entries).ToObject())
}

// collectEntries lists dir and builds the (unsorted-input, canonically
// sorted-output) entry set shared by WriteTree and writeSubtree.
func (s *Store) collectEntries(dir string, keep KeepFunc) ([]object.Entry, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not list %s", dir)
	}

	entries := make([]object.Entry, 0, len(infos))
	for _, info := range infos {
		entryPath := filepath.Join(dir, info.Name())
		if !keep(entryPath) {
			continue
		}

		mode, isDir, err := entryMode(entryPath, info)
		if err != nil {
			return nil, err
		}

		var id oid.Oid
		if isDir {
			id, err = s.writeSubtree(entryPath, keep)
			if err != nil {
				return nil, err
			}
			if id.IsZero() {
				continue // empty subtree: elide it
			}
		} else if mode == object.ModeSymlink {
			id, err = s.writeSymlinkBlob(entryPath)
			if err != nil {
				return nil, err
			}
		} else {
			id, err = s.WriteBlob(entryPath)
			if err != nil {
				return nil, err
			}
		}

		entries = append(entries, object.Entry{
			Name: info.Name(),
			Mode: mode,
			ID:   id,
		})
	}

	object.SortEntries(entries)
	return entries, nil
}

// entryMode classifies a directory entry into the tree-entry mode it
// should carry. Symlink detection reads the mode bits of info as returned
// by the directory listing, which on the real filesystem describes the
// link itself rather than its target; afero's in-memory filesystem has no
// symlinks, so there every entry is a directory or a regular file.
func entryMode(path string, info os.FileInfo) (mode object.Mode, isDir bool, err error) {
	if info.Mode()&os.ModeSymlink != 0 {
		return object.ModeSymlink, false, nil
	}
	if info.IsDir() {
		return object.ModeDirectory, true, nil
	}
	if info.Mode()&0o111 != 0 {
		return object.ModeExecutable, false, nil
	}
	return object.ModeFile, false, nil
}

// writeSymlinkBlob captures a symlink's target path as a blob's content:
// the link itself is recorded, not the file it points to.
func (s *Store) writeSymlinkBlob(path string) (oid.Oid, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return oid.Null, errors.Wrapf(err, "could not read symlink %s", path)
	}
	return s.WriteObject(object.NewBlob([]byte(target)).ToObject())
}

// ReadTree resolves id and returns it as a Tree.
func (s *Store) ReadTree(id string) (*object.Tree, error) {
	o, err := s.ReadObject(id)
	if err != nil {
		return nil, err
	}
	return o.AsTree()
}
