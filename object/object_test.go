package object_test

import (
	"testing"

	"github.com/halvorne/minigit/object"
	"github.com/stretchr/testify/require"
)

func TestObjectSerializeHeader(t *testing.T) {
	t.Parallel()

	o := object.New(object.TypeBlob, []byte("hello\n"))
	require.Equal(t, "blob 6\x00hello\n", string(o.Serialize()))
}

func TestObjectIDIsStableAcrossCalls(t *testing.T) {
	t.Parallel()

	o := object.New(object.TypeBlob, []byte("hello\n"))
	first := o.ID()
	second := o.ID()
	require.Equal(t, first, second)
}

func TestNewTypeFromString(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"blob", "tree", "commit"} {
		typ, err := object.NewTypeFromString(s)
		require.NoError(t, err)
		require.Equal(t, s, typ.String())
	}

	_, err := object.NewTypeFromString("tag")
	require.ErrorIs(t, err, object.ErrObjectUnknown)
}
