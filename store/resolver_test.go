package store_test

import (
	"testing"

	"github.com/halvorne/minigit/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestResolvePrefix(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s, err := store.Init(fs, "/repo")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "/repo/hello.txt", []byte("hello\n"), 0o644))

	full, err := s.WriteBlob("/repo/hello.txt")
	require.NoError(t, err)

	t.Run("unambiguous prefix resolves", func(t *testing.T) {
		t.Parallel()
		got, err := s.Resolve(full.String()[:6])
		require.NoError(t, err)
		require.Equal(t, full, got)
	})

	t.Run("full id resolves", func(t *testing.T) {
		t.Parallel()
		got, err := s.Resolve(full.String())
		require.NoError(t, err)
		require.Equal(t, full, got)
	})

	t.Run("too-short prefix is invalid", func(t *testing.T) {
		t.Parallel()
		_, err := s.Resolve(full.String()[:3])
		require.ErrorIs(t, err, store.ErrInvalidIdentifier)
	})

	t.Run("unknown prefix is ambiguous-or-unknown", func(t *testing.T) {
		t.Parallel()
		_, err := s.Resolve("deadbeef")
		require.ErrorIs(t, err, store.ErrAmbiguousOrUnknownObject)
	})

	t.Run("uppercase is lowercased before validation", func(t *testing.T) {
		t.Parallel()
		got, err := s.Resolve(toUpper(full.String()[:6]))
		require.NoError(t, err)
		require.Equal(t, full, got)
	})
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
