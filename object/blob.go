package object

import "github.com/halvorne/minigit/oid"

// Blob is an object whose payload is opaque: the verbatim contents of a
// file.
type Blob struct {
	rawObject *Object
}

// NewBlob wraps content as a Blob-typed Object.
func NewBlob(content []byte) *Blob {
	return &Blob{rawObject: New(TypeBlob, content)}
}

// ID returns the blob's identifier.
func (b *Blob) ID() oid.Oid {
	return b.rawObject.ID()
}

// Bytes returns the blob's contents.
func (b *Blob) Bytes() []byte {
	return b.rawObject.content
}

// Size returns the length of the blob's contents, in bytes.
func (b *Blob) Size() int {
	return len(b.rawObject.content)
}

// ToObject returns the Blob's underlying Object.
func (b *Blob) ToObject() *Object {
	return b.rawObject
}
