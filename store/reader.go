package store

import (
	"compress/zlib"
	"io/ioutil"
	"path/filepath"

	"github.com/halvorne/minigit/internal/errutil"
	"github.com/halvorne/minigit/object"
	"github.com/halvorne/minigit/oid"
	"golang.org/x/xerrors"
)

// readObject opens the loose object at objects/<xx>/<rest>, inflates it,
// and parses its header: open, zlib-decompress the whole thing, then
// split on the header's delimiters.
func (s *Store) readObject(id oid.Oid) (o *object.Object, err error) {
	hex := id.String()
	p := filepath.Join(s.objectsDir(), hex[:2], hex[2:])

	f, err := s.fs.Open(p)
	if err != nil {
		return nil, xerrors.Errorf("could not open object %s at %s: %w", hex, p, err)
	}
	defer errutil.Close(f, &err)

	zr, err := zlib.NewReader(f)
	if err != nil {
		return nil, xerrors.Errorf("could not decompress object %s: %w", hex, ErrCorruptObject)
	}
	defer errutil.Close(zr, &err)

	raw, err := ioutil.ReadAll(zr)
	if err != nil {
		return nil, xerrors.Errorf("could not read object %s: %w", hex, ErrCorruptObject)
	}

	o, parseErr := object.NewFromLoose(raw)
	if parseErr != nil {
		return nil, xerrors.Errorf("object %s: %w", hex, ErrCorruptObject)
	}
	return o, nil
}
