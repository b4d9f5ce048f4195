package oid_test

import (
	"fmt"
	"testing"

	"github.com/halvorne/minigit/oid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	testCases := []struct {
		desc        string
		id          string
		expectError bool
	}{
		{
			desc: "valid oid should work",
			id:   "0eaf966ff79d8f61958aaefe163620d952606516",
		},
		{
			desc:        "invalid char should fail",
			id:          "0eaf96 ff79d8f61958aaefe163620d952606516",
			expectError: true,
		},
		{
			desc:        "invalid size should fail",
			id:          "0eaf96ff79d8f61958aaefe163620d952606",
			expectError: true,
		},
	}
	for i, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("%d/%s", i, tc.desc), func(t *testing.T) {
			t.Parallel()

			o, err := oid.FromHex(tc.id)
			if tc.expectError {
				require.ErrorIs(t, err, oid.ErrInvalid)
				assert.Equal(t, oid.Null, o)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, o.String())
		})
	}
}

func TestFromRawBytes(t *testing.T) {
	id := []byte{0x0e, 0xaf, 0x96, 0x6f, 0xf7, 0x9d, 0x8f, 0x61, 0x95, 0x8a, 0xae, 0xfe, 0x16, 0x36, 0x20, 0xd9, 0x52, 0x60, 0x65, 0x16}

	o, err := oid.FromRawBytes(id)
	require.NoError(t, err)
	assert.Equal(t, id, o.Bytes())
	assert.Equal(t, "0eaf966ff79d8f61958aaefe163620d952606516", o.String())

	_, err = oid.FromRawBytes(id[:19])
	require.ErrorIs(t, err, oid.ErrInvalid)
}

func TestSum(t *testing.T) {
	o := oid.Sum([]byte("123456789"))
	assert.Equal(t, "f7c3bc1d808e04732adf679965ccc34ca7ae3441", o.String())
}

func TestIsZero(t *testing.T) {
	sha, err := oid.FromHex("f7c3bc1d808e04732adf679965ccc34ca7ae3441")
	require.NoError(t, err)
	assert.False(t, sha.IsZero())

	zero, err := oid.FromHex("0000000000000000000000000000000000000000")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	assert.True(t, oid.Null.IsZero())
}

func TestValidPartial(t *testing.T) {
	testCases := []struct {
		id    string
		valid bool
	}{
		{"ce01", true},
		{"ce013625030ba8dba906f756967f9e9ca394464a", true},
		{"ce0", false},                                           // too short
		{"ce013625030ba8dba906f756967f9e9ca394464ab", false},     // too long
		{"ce0g", false},                                          // non-hex char
		{"CE01", false},                                          // must be lowercase
		{"zzzz", false},                                          // source leniency (a-z) is intentionally not accepted
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.id, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.valid, oid.ValidPartial(tc.id))
		})
	}
}

func TestValidFull(t *testing.T) {
	assert.True(t, oid.ValidFull("ce013625030ba8dba906f756967f9e9ca394464a"))
	assert.False(t, oid.ValidFull("ce01"))
}
