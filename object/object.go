// Package object contains the types and codecs for git objects: blobs,
// trees, and commits, plus the shared header framing used to store and
// hash all three.
package object

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/halvorne/minigit/internal/readutil"
	"github.com/halvorne/minigit/oid"
	"golang.org/x/xerrors"
)

// ErrObjectUnknown is returned when a type string doesn't match blob, tree,
// or commit.
var ErrObjectUnknown = errors.New("unknown object type")

// ErrObjectInvalid is returned when an object contains unexpected data, or
// the wrong kind of object is handed to a type-specific parser.
var ErrObjectInvalid = errors.New("invalid object")

// Type represents the kind of a git object.
type Type int8

// The three object kinds this store knows how to produce and parse.
const (
	TypeBlob Type = iota + 1
	TypeTree
	TypeCommit
)

func (t Type) String() string {
	switch t {
	case TypeBlob:
		return "blob"
	case TypeTree:
		return "tree"
	case TypeCommit:
		return "commit"
	default:
		panic(fmt.Sprintf("unknown object type %d", t))
	}
}

// NewTypeFromString parses the ASCII type token found in an object header.
func NewTypeFromString(s string) (Type, error) {
	switch s {
	case "blob":
		return TypeBlob, nil
	case "tree":
		return TypeTree, nil
	case "commit":
		return TypeCommit, nil
	default:
		return 0, ErrObjectUnknown
	}
}

// Object is a git object: a type tag plus an uncompressed payload. Its ID
// is the SHA-1 of the header ("<type> <len>\0") concatenated with the
// payload.
type Object struct {
	typ     Type
	content []byte

	id         oid.Oid
	idComputed sync.Once
}

// New creates an in-memory object of the given type and content. The ID is
// computed lazily, on first call to ID().
func New(typ Type, content []byte) *Object {
	return &Object{typ: typ, content: content}
}

// Type returns the object's kind.
func (o *Object) Type() Type {
	return o.typ
}

// Size returns the length of the payload, in bytes.
func (o *Object) Size() int {
	return len(o.content)
}

// Bytes returns the object's payload, verbatim.
func (o *Object) Bytes() []byte {
	return o.content
}

// ID returns the object's identifier, computing it on first use.
func (o *Object) ID() oid.Oid {
	o.idComputed.Do(func() {
		o.id = oid.Sum(o.header())
	})
	return o.id
}

// header builds "<type> <size>\0<content>", the byte sequence that is
// hashed to produce the object's ID and, once zlib-compressed, stored
// on disk.
func (o *Object) header() []byte {
	buf := new(bytes.Buffer)
	buf.WriteString(o.typ.String())
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(o.Size()))
	buf.WriteByte(0)
	buf.Write(o.content)
	return buf.Bytes()
}

// Serialize returns the uncompressed on-disk form of the object: the
// header followed by the payload. This is what an Object Writer feeds
// through the compressor, and what an Object Reader reconstructs.
func (o *Object) Serialize() []byte {
	return o.header()
}

// NewFromLoose parses the decompressed on-disk form of an object:
// "<type> <size>\0<content>". It is the inverse of Serialize, and does not
// re-derive the ID from raw; callers that need ID validation compare it
// against oid.Sum(raw) themselves.
func NewFromLoose(raw []byte) (*Object, error) {
	typTok := readutil.ReadTo(raw, ' ')
	if typTok == nil {
		return nil, xerrors.Errorf("could not find object type: %w", ErrObjectInvalid)
	}
	typ, err := NewTypeFromString(string(typTok))
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", string(typTok), err)
	}
	offset := len(typTok) + 1

	sizeTok := readutil.ReadTo(raw[offset:], 0)
	if sizeTok == nil {
		return nil, xerrors.Errorf("could not find object size: %w", ErrObjectInvalid)
	}
	size, err := strconv.Atoi(string(sizeTok))
	if err != nil {
		return nil, xerrors.Errorf("invalid object size %q: %w", sizeTok, ErrObjectInvalid)
	}
	offset += len(sizeTok) + 1

	content := raw[offset:]
	if len(content) != size {
		return nil, xerrors.Errorf("object declares size %d but has %d bytes: %w", size, len(content), ErrObjectInvalid)
	}

	return New(typ, content), nil
}

// AsBlob returns the object interpreted as a Blob.
func (o *Object) AsBlob() (*Blob, error) {
	if o.typ != TypeBlob {
		return nil, xerrors.Errorf("type %s is not a blob: %w", o.typ, ErrObjectInvalid)
	}
	return &Blob{rawObject: o}, nil
}

// AsTree returns the object interpreted as a Tree.
func (o *Object) AsTree() (*Tree, error) {
	return newTreeFromObject(o)
}

// AsCommit returns the object interpreted as a Commit.
func (o *Object) AsCommit() (*Commit, error) {
	return newCommitFromObject(o)
}
