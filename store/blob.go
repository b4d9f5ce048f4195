package store

import (
	"fmt"
	"io/ioutil"

	"github.com/halvorne/minigit/internal/errutil"
	"github.com/halvorne/minigit/object"
	"github.com/halvorne/minigit/oid"
	"github.com/pkg/errors"
)

// readFileChecked reads path in full and fails with ErrSizeDrift if the
// number of bytes read doesn't match what Stat reported moments earlier.
// Grounded on the source's hash_blob/write_blob, which both bail with the
// same disparity check.
func (s *Store) readFileChecked(path string) (content []byte, err error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", path)
	}
	defer errutil.Close(f, &err)

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "could not stat %s", path)
	}
	wantSize := info.Size()

	content, err = ioutil.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}
	if int64(len(content)) != wantSize {
		return nil, fmt.Errorf("%s: stat reported %d bytes, read %d: %w", path, wantSize, len(content), ErrSizeDrift)
	}
	return content, nil
}

// HashBlob computes the id a file at path would have as a blob, without
// writing anything.
func (s *Store) HashBlob(path string) (oid.Oid, error) {
	content, err := s.readFileChecked(path)
	if err != nil {
		return oid.Null, err
	}
	return object.NewBlob(content).ID(), nil
}

// WriteBlob reads the file at path, persists it as a blob, and returns its
// id.
func (s *Store) WriteBlob(path string) (oid.Oid, error) {
	content, err := s.readFileChecked(path)
	if err != nil {
		return oid.Null, err
	}
	return s.WriteObject(object.NewBlob(content).ToObject())
}

// ReadBlob resolves id and returns it as a Blob.
func (s *Store) ReadBlob(id string) (*object.Blob, error) {
	o, err := s.ReadObject(id)
	if err != nil {
		return nil, err
	}
	return o.AsBlob()
}
