package store

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/halvorne/minigit/oid"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// resolve turns a user-supplied identifier (full 40-char hex, or a 4-39
// char hex prefix) into the single Oid it names. Exactly one loose object
// must match; zero or more than one both resolve to
// ErrAmbiguousOrUnknownObject, mirroring the source's get_object_path,
// which makes no distinction between "not found" and "ambiguous".
func (s *Store) resolve(id string) (oid.Oid, error) {
	id = strings.ToLower(id)

	if oid.ValidFull(id) {
		full, err := oid.FromHex(id)
		if err != nil {
			return oid.Null, xerrors.Errorf("%s: %w", id, ErrInvalidIdentifier)
		}
		found, err := afero.Exists(s.fs, s.looseObjectPath(full))
		if err != nil {
			return oid.Null, xerrors.Errorf("could not check object %s: %w", id, err)
		}
		if !found {
			return oid.Null, xerrors.Errorf("%s: %w", id, ErrAmbiguousOrUnknownObject)
		}
		return full, nil
	}

	if !oid.ValidPartial(id) {
		return oid.Null, xerrors.Errorf("%s: %w", id, ErrInvalidIdentifier)
	}

	prefix, rest := id[:2], id[2:]
	dir := filepath.Join(s.objectsDir(), prefix)

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return oid.Null, xerrors.Errorf("%s: %w", id, ErrAmbiguousOrUnknownObject)
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), rest) {
			matches = append(matches, prefix+e.Name())
		}
	}
	sort.Strings(matches)

	if len(matches) != 1 {
		return oid.Null, xerrors.Errorf("%s: %w", id, ErrAmbiguousOrUnknownObject)
	}
	return oid.FromHex(matches[0])
}

// looseObjectPath returns the on-disk path of a fully-qualified object id.
func (s *Store) looseObjectPath(id oid.Oid) string {
	hex := id.String()
	return filepath.Join(s.objectsDir(), hex[:2], hex[2:])
}
