package bytesutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomBytesFillsFully(t *testing.T) {
	buf := make([]byte, 64)
	RandomBytes(buf)
	require.NotEqual(t, make([]byte, 64), buf, "random fill should not leave an all-zero buffer")
}

func TestRandomBytesVaries(t *testing.T) {
	a := make([]byte, 32)
	b := make([]byte, 32)
	RandomBytes(a)
	RandomBytes(b)
	require.False(t, bytes.Equal(a, b), "two independent random fills should not collide")
}

func TestClearBytesZeroesBuffer(t *testing.T) {
	buf := []byte("super-secret-key-material-12345")
	ClearBytes(buf)
	for i, b := range buf {
		require.Equalf(t, byte(0), b, "byte %d not wiped", i)
	}
}

func TestClearBytesEmptyIsNoop(t *testing.T) {
	require.NotPanics(t, func() { ClearBytes(nil) })
}

func TestPaddingIndex(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want int
	}{
		{"no padding, ends non-zero", []byte{0x01, 0x02, 0x03}, -1},
		{"exact padding byte at end", []byte{0x01, 0x02, 0x80}, 2},
		{"padding byte followed by zeros", []byte{0x01, 0x80, 0x00, 0x00}, 1},
		{"trailing zero with no 0x80", []byte{0x01, 0x02, 0x00}, -1},
		{"all zero", []byte{0x00, 0x00, 0x00}, -1},
		{"empty", []byte{}, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, PaddingIndex(c.data))
		})
	}
}

func TestCompareBytes(t *testing.T) {
	require.True(t, CompareBytes([]byte("abc"), []byte("abc")))
	require.False(t, CompareBytes([]byte("abc"), []byte("abd")))
	require.False(t, CompareBytes([]byte("abc"), []byte("ab")))
	require.True(t, CompareBytes(nil, nil))
}
