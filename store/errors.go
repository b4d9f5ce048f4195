package store

import "errors"

// ErrNotARepository is returned when an operation is attempted outside of
// (or against) a directory that isn't a well-formed git repository.
var ErrNotARepository = errors.New("not a git repository")

// ErrAlreadyInitialized is returned by Init when .git already exists.
var ErrAlreadyInitialized = errors.New("repository already initialized")

// ErrInvalidIdentifier is returned when a string handed to the resolver is
// neither a full 40-character hex id nor a valid 4-to-39-character hex
// prefix.
var ErrInvalidIdentifier = errors.New("invalid object identifier")

// ErrAmbiguousOrUnknownObject is returned when a partial identifier matches
// zero or more than one object on disk. The store makes no distinction
// between "not found" and "ambiguous": both mean the prefix failed to name
// exactly one object.
var ErrAmbiguousOrUnknownObject = errors.New("ambiguous or unknown object identifier")

// ErrCorruptObject is returned when a loose object's zlib stream, header,
// or declared size doesn't match its stored bytes.
var ErrCorruptObject = errors.New("corrupt object")

// ErrSizeDrift is returned when the number of bytes read from a file for a
// blob doesn't match the size Stat reported for it, e.g. because the source
// file changed while it was being read.
var ErrSizeDrift = errors.New("size drift while writing object")
