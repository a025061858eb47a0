package gost

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piotrpsz/crypto/bytesutil"
)

func testKey() []byte {
	key := make([]byte, KeySize)
	pattern := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 0}
	for i := range key {
		key[i] = pattern[i%len(pattern)]
	}
	return key
}

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
	_, err := New(make([]byte, 16))
	require.ErrorIs(t, err, ErrInvalidKeySize)

	_, err = New(make([]byte, KeySize))
	require.NoError(t, err)
}

func TestKnownAnswerVectors(t *testing.T) {
	c, err := New(testKey())
	require.NoError(t, err)

	cases := []struct {
		w0, w1   uint32
		outW0    uint32
		outW1    uint32
	}{
		{0, 0, 0x9b717f65, 0x32b884d0},
		{0xaabbccdd, 0xeeff1122, 0xc9379503, 0x626e5b08},
		{0xffffffff, 0xffffffff, 0xef9c8b90, 0x70dbbfbf},
	}
	for _, tc := range cases {
		src := wordsToBlock(tc.w0, tc.w1)
		dst := make([]byte, BlockSize)
		c.EncryptBlock(dst, src)

		gotW0, gotW1 := blockToWords(dst)
		require.Equal(t, tc.outW0, gotW0)
		require.Equal(t, tc.outW1, gotW1)

		plain := make([]byte, BlockSize)
		c.DecryptBlock(plain, dst)
		require.Equal(t, src, plain)
	}
}

func TestBlockSize(t *testing.T) {
	c, err := New(testKey())
	require.NoError(t, err)
	require.Equal(t, 8, c.BlockSize())
}

func TestRoundTripRandomKeys(t *testing.T) {
	for i := 0; i < 20; i++ {
		key := make([]byte, KeySize)
		bytesutil.RandomBytes(key)
		c, err := New(key)
		require.NoError(t, err)

		plain := make([]byte, BlockSize)
		bytesutil.RandomBytes(plain)

		cipher := make([]byte, BlockSize)
		c.EncryptBlock(cipher, plain)
		back := make([]byte, BlockSize)
		c.DecryptBlock(back, cipher)
		require.Equal(t, plain, back)
	}
}

func TestDestroyWipesSchedule(t *testing.T) {
	c, err := New(testKey())
	require.NoError(t, err)
	c.Destroy()
	for _, w := range c.k {
		require.Equal(t, uint32(0), w)
	}
	for _, b := range c.k87 {
		require.Equal(t, byte(0), b)
	}
}
