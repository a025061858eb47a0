package blowfish

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func wordsToBlock(w0, w1 uint32) []byte {
	buf := make([]byte, BlockSize)
	binary.LittleEndian.PutUint32(buf[0:4], w0)
	binary.LittleEndian.PutUint32(buf[4:8], w1)
	return buf
}

func blockToWords(b []byte) (uint32, uint32) {
	return binary.LittleEndian.Uint32(b[0:4]), binary.LittleEndian.Uint32(b[4:8])
}

func TestNewRejectsInvalidKeySize(t *testing.T) {
	_, err := New(make([]byte, 3))
	require.ErrorIs(t, err, ErrInvalidKeySize)

	_, err = New(make([]byte, 57))
	require.ErrorIs(t, err, ErrInvalidKeySize)

	_, err = New(make([]byte, 4))
	require.NoError(t, err)

	_, err = New(make([]byte, 56))
	require.NoError(t, err)
}

func TestSingleBlockKnownAnswer(t *testing.T) {
	c, err := New([]byte("TESTKEY"))
	require.NoError(t, err)

	src := wordsToBlock(1, 2)
	dst := make([]byte, BlockSize)
	c.EncryptBlock(dst, src)

	w0, w1 := blockToWords(dst)
	require.Equal(t, uint32(0xdf333fd2), w0)
	require.Equal(t, uint32(0x30a71bb4), w1)

	plain := make([]byte, BlockSize)
	c.DecryptBlock(plain, dst)
	require.Equal(t, src, plain)
}

func TestECBKnownAnswerVectors(t *testing.T) {
	cases := []struct {
		key, plain, cipher string
	}{
		{"0000000000000000", "0000000000000000", "4597f94e78dd9861"},
		{"ffffffffffffffff", "ffffffffffffffff", "d56f86518acb5eb8"},
		{"0123456789abcdef", "1111111111111111", "80c3f96196b08122"},
		{"fedcba9876543210", "ffffffffffffffff", "9c5a5c6b5a0a9e5d"},
	}
	for _, tc := range cases {
		key, err := hex.DecodeString(tc.key)
		require.NoError(t, err)
		plain, err := hex.DecodeString(tc.plain)
		require.NoError(t, err)
		wantCipher, err := hex.DecodeString(tc.cipher)
		require.NoError(t, err)

		c, err := New(key)
		require.NoError(t, err)

		got := make([]byte, BlockSize)
		c.EncryptBlock(got, plain)
		require.Equal(t, wantCipher, got, "key=%x", key)

		back := make([]byte, BlockSize)
		c.DecryptBlock(back, got)
		require.Equal(t, plain, back, "key=%x", key)
	}
}

func TestBlockSize(t *testing.T) {
	c, err := New([]byte("abcd"))
	require.NoError(t, err)
	require.Equal(t, 8, c.BlockSize())
}

func TestDestroyWipesSchedule(t *testing.T) {
	c, err := New([]byte("some-key"))
	require.NoError(t, err)
	c.Destroy()
	for _, w := range c.p {
		require.Equal(t, uint32(0), w)
	}
	for _, box := range c.s {
		for _, w := range box {
			require.Equal(t, uint32(0), w)
		}
	}
}
