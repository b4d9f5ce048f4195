package main

import (
	stderrors "errors"

	"github.com/halvorne/minigit/internal/pathutil"
	"github.com/halvorne/minigit/store"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// openStore locates the repository root from the current working
// directory (non-recursively) and returns a Store handle onto it.
// pathutil's own not-a-repo error is translated to store.ErrNotARepository
// so every caller can check for a single sentinel regardless of which
// layer noticed the repository was missing.
func openStore(fs afero.Fs) (*store.Store, error) {
	gitDir, err := pathutil.RepoRoot()
	if err != nil {
		if stderrors.Is(err, pathutil.ErrNoRepo) {
			return nil, store.ErrNotARepository
		}
		return nil, errors.Wrap(err, "fatal")
	}
	return store.Open(fs, gitDir), nil
}
