package object_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/halvorne/minigit/object"
	"github.com/halvorne/minigit/oid"
	"github.com/stretchr/testify/require"
)

func mustOid(t *testing.T, s string) oid.Oid {
	t.Helper()
	o, err := oid.FromHex(s)
	require.NoError(t, err)
	return o
}

func TestTreeEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	entries := []object.Entry{
		{Name: "a.txt", Mode: object.ModeFile, ID: mustOid(t, "8baef1b4abc478178b004d62031cf7fe6db6f903")},
		{Name: "b.txt", Mode: object.ModeFile, ID: mustOid(t, "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391")},
		{Name: "bin", Mode: object.ModeExecutable, ID: mustOid(t, "8baef1b4abc478178b004d62031cf7fe6db6f903")},
		{Name: "sub", Mode: object.ModeDirectory, ID: mustOid(t, "4b825dc642cb6eb9a060e54bf8d69288fbee4904")},
	}

	tree := object.NewTree(entries)
	decoded, err := tree.ToObject().AsTree()
	require.NoError(t, err)

	if diff := cmp.Diff(entries, decoded.Entries()); diff != "" {
		t.Fatalf("round-tripped entries differ (-want +got):\n%s", diff)
	}
}

func TestTreeDecodeOrdering(t *testing.T) {
	t.Parallel()

	// entries here are already canonically sorted: a, aa, b
	entries := []object.Entry{
		{Name: "a", Mode: object.ModeFile, ID: mustOid(t, "8baef1b4abc478178b004d62031cf7fe6db6f903")},
		{Name: "aa", Mode: object.ModeFile, ID: mustOid(t, "8baef1b4abc478178b004d62031cf7fe6db6f903")},
		{Name: "b", Mode: object.ModeFile, ID: mustOid(t, "8baef1b4abc478178b004d62031cf7fe6db6f903")},
	}
	tree := object.NewTree(entries)
	decoded, err := tree.ToObject().AsTree()
	require.NoError(t, err)

	names := make([]string, 0, 3)
	for _, e := range decoded.Entries() {
		names = append(names, e.Name)
	}
	require.Equal(t, []string{"a", "aa", "b"}, names)
}

func TestTreeDecodeEmptyPayload(t *testing.T) {
	t.Parallel()

	tree := object.NewTree(nil)
	decoded, err := tree.ToObject().AsTree()
	require.NoError(t, err)
	require.Empty(t, decoded.Entries())
}

func TestTreeDecodeCorrupt(t *testing.T) {
	t.Parallel()

	o := object.New(object.TypeTree, []byte("not a valid tree payload"))
	_, err := o.AsTree()
	require.ErrorIs(t, err, object.ErrTreeInvalid)
}

func TestTreeDecodeWrongType(t *testing.T) {
	t.Parallel()

	o := object.New(object.TypeBlob, []byte("hello\n"))
	_, err := o.AsTree()
	require.ErrorIs(t, err, object.ErrObjectInvalid)
}

func TestSortEntries(t *testing.T) {
	t.Parallel()

	entries := []object.Entry{
		{Name: "b"},
		{Name: "aa"},
		{Name: "a"},
	}
	object.SortEntries(entries)

	names := make([]string, 0, 3)
	for _, e := range entries {
		names = append(names, e.Name)
	}
	require.Equal(t, []string{"a", "aa", "b"}, names)
}
