package store

import (
	"fmt"
	"os"

	"github.com/halvorne/minigit/object"
	"github.com/halvorne/minigit/oid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// HasObject reports whether id names an object already present in the
// store.
func (s *Store) HasObject(id oid.Oid) (bool, error) {
	return afero.Exists(s.fs, s.looseObjectPath(id))
}

// WriteObject persists o if it isn't already present, and returns its id.
// Loose objects are write-once and content-addressed, so a write of an
// object that already exists is a no-op rather than an error.
func (s *Store) WriteObject(o *object.Object) (oid.Oid, error) {
	id := o.ID()
	found, err := s.HasObject(id)
	if err != nil {
		return oid.Null, errors.Wrapf(err, "could not check for existing object %s", id)
	}
	if found {
		return id, nil
	}

	w, err := newObjectWriter(s.fs, s.objectsDir())
	if err != nil {
		return oid.Null, err
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			fmt.Fprintln(os.Stderr, closeErr)
		}
	}()

	if _, err := w.Write(o.Serialize()); err != nil {
		return oid.Null, errors.Wrapf(err, "could not write object %s", id)
	}

	written, err := w.Finalize()
	if err != nil {
		return oid.Null, errors.Wrapf(err, "could not finalize object %s", id)
	}
	return written, nil
}

// ReadObject resolves id and returns the Object it names.
func (s *Store) ReadObject(id string) (*object.Object, error) {
	full, err := s.resolve(id)
	if err != nil {
		return nil, err
	}
	return s.readObject(full)
}

// Resolve exposes identifier resolution (full id or unambiguous prefix) to
// callers that need an Oid without reading the object itself.
func (s *Store) Resolve(id string) (oid.Oid, error) {
	return s.resolve(id)
}
