package object

import (
	"bytes"
	"sort"

	"github.com/halvorne/minigit/internal/readutil"
	"github.com/halvorne/minigit/oid"
	"golang.org/x/xerrors"
)

// ErrTreeInvalid is returned when a tree object's payload can't be parsed.
var ErrTreeInvalid = xerrors.New("invalid tree")

// Mode is the octal mode string stored alongside each tree entry. Unlike
// POSIX file modes, a git mode is rendered with no leading zero.
type Mode string

// The fixed set of modes a tree entry may carry.
const (
	ModeDirectory  Mode = "40000"
	ModeSymlink    Mode = "120000"
	ModeExecutable Mode = "100755"
	ModeFile       Mode = "100644"
)

// IsValid returns whether m is one of the modes this store understands.
func (m Mode) IsValid() bool {
	switch m {
	case ModeDirectory, ModeSymlink, ModeExecutable, ModeFile:
		return true
	default:
		return false
	}
}

// ObjectType returns the kind of object a tree entry with this mode points
// to.
func (m Mode) ObjectType() Type {
	if m == ModeDirectory {
		return TypeTree
	}
	return TypeBlob
}

// Entry is one record inside a tree: a name, a mode, and the id of the
// object (blob or tree) it points to.
type Entry struct {
	Name string
	Mode Mode
	ID   oid.Oid
}

// Tree is an object whose payload is an ordered, canonically-sorted list
// of Entry records, one per file or sub-directory.
type Tree struct {
	rawObject *Object
	entries   []Entry
}

// NewTree builds a Tree from entries, which must already be in canonical
// (byte-lexicographic by Name) order; callers needing to build one from
// unsorted data should sort first, e.g. via SortEntries.
func NewTree(entries []Entry) *Tree {
	t := &Tree{entries: entries}
	t.rawObject = t.encode()
	return t
}

// SortEntries sorts entries in place into canonical tree order.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

// newTreeFromObject parses o's payload into a Tree.
//
// A tree entry has the binary layout:
//
//	<mode-ascii> <space> <name-bytes> \0 <20 raw digest bytes>
//
// repeated back-to-back until the payload is exhausted.
func newTreeFromObject(o *Object) (*Tree, error) {
	if o.typ != TypeTree {
		return nil, xerrors.Errorf("type %s is not a tree: %w", o.typ, ErrObjectInvalid)
	}

	data := o.Bytes()
	entries := make([]Entry, 0)
	offset := 0
	for i := 1; offset < len(data); i++ {
		modeAndName := readutil.ReadTo(data[offset:], 0)
		if modeAndName == nil {
			return nil, xerrors.Errorf("entry %d: missing NUL terminator: %w", i, ErrTreeInvalid)
		}
		sp := bytes.IndexByte(modeAndName, ' ')
		if sp < 0 {
			return nil, xerrors.Errorf("entry %d: missing mode/name separator: %w", i, ErrTreeInvalid)
		}
		offset += len(modeAndName) + 1 // +1 for the NUL

		entry := Entry{
			Mode: Mode(modeAndName[:sp]),
			Name: string(modeAndName[sp+1:]),
		}
		if !entry.Mode.IsValid() {
			return nil, xerrors.Errorf("entry %d: invalid mode %q: %w", i, entry.Mode, ErrTreeInvalid)
		}

		if offset+oid.Size > len(data) {
			return nil, xerrors.Errorf("entry %d: truncated digest: %w", i, ErrTreeInvalid)
		}
		var err error
		entry.ID, err = oid.FromRawBytes(data[offset : offset+oid.Size])
		if err != nil {
			return nil, xerrors.Errorf("entry %d: %s: %w", i, err.Error(), ErrTreeInvalid)
		}
		offset += oid.Size

		entries = append(entries, entry)
	}

	return &Tree{rawObject: o, entries: entries}, nil
}

// Entries returns a copy of the tree's entries, in on-disk (canonical)
// order.
func (t *Tree) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// ID returns the tree's identifier.
func (t *Tree) ID() oid.Oid {
	return t.rawObject.ID()
}

// ToObject returns the Tree's underlying Object.
func (t *Tree) ToObject() *Object {
	return t.rawObject
}

// encode serializes the entries into a tree Object's payload.
func (t *Tree) encode() *Object {
	buf := new(bytes.Buffer)
	for _, e := range t.entries {
		buf.WriteString(string(e.Mode))
		buf.WriteByte(' ')
		buf.WriteString(e.Name)
		buf.WriteByte(0)
		buf.Write(e.ID.Bytes())
	}
	return New(TypeTree, buf.Bytes())
}

// EncodedEntryLen returns the number of bytes e occupies in a tree's
// payload: mode + space + name + NUL + raw digest.
func EncodedEntryLen(e Entry) int {
	return len(e.Mode) + 1 + len(e.Name) + 1 + oid.Size
}
