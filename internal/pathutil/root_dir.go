// Package pathutil locates the repository root relative to the current
// working directory.
package pathutil

import (
	"os"
	"path/filepath"

	"github.com/halvorne/minigit/internal/gitpath"
	"github.com/pkg/errors"
)

// ErrNoRepo is returned when the current directory is not the root of a
// git repository.
var ErrNoRepo = errors.New("not a git repository")

// RepoRoot returns the absolute path to .git under the current working
// directory.
//
// Discovery is deliberately non-recursive: it never walks up to parent
// directories. Recursive discovery from nested working directories is
// out of scope.
func RepoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "could not get current working directory")
	}
	return RepoRootFromPath(wd)
}

// RepoRootFromPath validates that dir contains a well-formed .git
// directory (.git, .git/objects, and .git/refs must all exist) and
// returns the absolute path to .git.
func RepoRootFromPath(dir string) (string, error) {
	dotGit := filepath.Join(dir, gitpath.DotGitPath)
	for _, required := range []string{
		dotGit,
		filepath.Join(dotGit, gitpath.ObjectsPath),
		filepath.Join(dotGit, gitpath.RefsPath),
	} {
		info, statErr := os.Stat(required)
		if statErr != nil || !info.IsDir() {
			return "", ErrNoRepo
		}
	}
	return dotGit, nil
}
