// Package store implements the object store: the content-addressed,
// zlib-compressed blob/tree/commit database that lives under a
// repository's .git directory. It owns object reading and writing,
// identifier resolution, and repository bootstrap.
package store

import (
	"path/filepath"

	"github.com/halvorne/minigit/internal/gitpath"
	"github.com/spf13/afero"
)

// Store is a handle onto a single repository's object database. It is safe
// for concurrent use: every operation is self-contained and loose objects
// are content-addressed and write-once, so concurrent writers of the same
// object race harmlessly to the same final path.
type Store struct {
	fs     afero.Fs
	gitDir string
}

// Open returns a Store rooted at an existing .git directory. Use
// pathutil.RepoRoot (or RepoRootFromPath) to locate gitDir first; Open
// itself does not validate that gitDir is well-formed.
func Open(fs afero.Fs, gitDir string) *Store {
	return &Store{fs: fs, gitDir: gitDir}
}

func (s *Store) objectsDir() string {
	return filepath.Join(s.gitDir, gitpath.ObjectsPath)
}

// Init creates a new, empty repository at dir: dir/.git,
// dir/.git/objects, dir/.git/refs, and dir/.git/HEAD pointing at the
// (not yet existing) refs/heads/master. It fails with
// ErrAlreadyInitialized if dir/.git already exists.
func Init(fs afero.Fs, dir string) (*Store, error) {
	gitDir := filepath.Join(dir, gitpath.DotGitPath)

	if exists, err := afero.Exists(fs, gitDir); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrAlreadyInitialized
	}

	if err := fs.MkdirAll(filepath.Join(gitDir, gitpath.ObjectsPath), 0o755); err != nil {
		return nil, err
	}
	if err := fs.MkdirAll(filepath.Join(gitDir, gitpath.RefsPath), 0o755); err != nil {
		return nil, err
	}
	if err := afero.WriteFile(fs, filepath.Join(gitDir, gitpath.HEADPath), []byte(gitpath.HEADContents), 0o644); err != nil {
		return nil, err
	}

	return Open(fs, gitDir), nil
}
