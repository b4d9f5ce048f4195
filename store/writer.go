package store

import (
	"compress/zlib"
	"crypto/sha1" //nolint:gosec // fixed by the on-disk format, not a security boundary
	"fmt"
	"hash"
	"io"
	"path/filepath"

	"github.com/halvorne/minigit/oid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// objectWriter hashes and zlib-compresses an object's on-disk bytes into a
// temporary file under objects/, then atomically publishes it to its final
// content-addressed path on Finalize. If Finalize is never called the
// temporary file is removed on Close.
//
// Hashing happens on the uncompressed stream, ahead of the zlib encoder, so
// the resulting id matches object.Object.ID() exactly.
type objectWriter struct {
	fs       afero.Fs
	objectDir string

	tmp      afero.File
	tmpPath  string
	zw       *zlib.Writer
	hasher   hash.Hash
	finalized bool
}

// newObjectWriter opens a temporary file inside objectDir and wraps it with
// a level-9 zlib encoder, matching the compression level every loose object
// in this store is written with.
func newObjectWriter(fs afero.Fs, objectDir string) (*objectWriter, error) {
	tmp, err := afero.TempFile(fs, objectDir, "tmp-obj-")
	if err != nil {
		return nil, errors.Wrap(err, "could not create temporary object file")
	}

	zw, err := zlib.NewWriterLevel(tmp, zlib.BestCompression)
	if err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmp.Name())
		return nil, errors.Wrap(err, "could not create compressor")
	}

	return &objectWriter{
		fs:        fs,
		objectDir: objectDir,
		tmp:       tmp,
		tmpPath:   tmp.Name(),
		zw:        zw,
		hasher:    sha1.New(), //nolint:gosec
	}, nil
}

// Write feeds b through both the hasher and the compressor.
func (w *objectWriter) Write(b []byte) (int, error) {
	w.hasher.Write(b) // hash.Hash never returns an error
	return w.zw.Write(b)
}

// Finalize flushes the compressor, derives the object's id from everything
// written so far, and atomically renames the temporary file to
// objects/<xx>/<rest>. Write after Finalize returns an error, since the
// compressor is already closed.
func (w *objectWriter) Finalize() (oid.Oid, error) {
	if err := w.zw.Close(); err != nil {
		return oid.Oid{}, errors.Wrap(err, "could not flush compressed object")
	}
	if err := w.tmp.Close(); err != nil {
		return oid.Oid{}, errors.Wrap(err, "could not close temporary object file")
	}

	id, err := oid.FromRawBytes(w.hasher.Sum(nil))
	if err != nil {
		return oid.Oid{}, errors.Wrap(err, "could not derive object id")
	}

	hex := id.String()
	destDir := filepath.Join(w.objectDir, hex[:2])
	if err := w.fs.MkdirAll(destDir, 0o755); err != nil {
		return oid.Oid{}, errors.Wrapf(err, "could not create object directory %s", destDir)
	}
	dest := filepath.Join(destDir, hex[2:])

	if err := w.fs.Rename(w.tmpPath, dest); err != nil {
		return oid.Oid{}, errors.Wrapf(err, "could not publish object at %s", dest)
	}
	w.finalized = true
	return id, nil
}

// Close removes the temporary file if Finalize was never called. Callers
// are expected to `defer w.Close()` immediately after newObjectWriter
// succeeds, so cleanup runs regardless of the success path.
func (w *objectWriter) Close() error {
	if w.finalized {
		return nil
	}
	if err := w.fs.Remove(w.tmpPath); err != nil {
		return fmt.Errorf("could not remove temporary object file %s: %w", w.tmpPath, err)
	}
	return nil
}

var _ io.Writer = (*objectWriter)(nil)
var _ io.Closer = (*objectWriter)(nil)
