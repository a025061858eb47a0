package threeway

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piotrpsz/crypto/bytesutil"
)

func wordsToBlock(w0, w1, w2 uint32) []byte {
	buf := make([]byte, BlockSize)
	binary.LittleEndian.PutUint32(buf[0:4], w0)
	binary.LittleEndian.PutUint32(buf[4:8], w1)
	binary.LittleEndian.PutUint32(buf[8:12], w2)
	return buf
}

func blockToWords(b []byte) (uint32, uint32, uint32) {
	return binary.LittleEndian.Uint32(b[0:4]),
		binary.LittleEndian.Uint32(b[4:8]),
		binary.LittleEndian.Uint32(b[8:12])
}

func keyFromWords(w0, w1, w2 uint32) []byte {
	return wordsToBlock(w0, w1, w2)
}

func TestNewRejectsInvalidKeySize(t *testing.T) {
	_, err := New(make([]byte, 8))
	require.ErrorIs(t, err, ErrInvalidKeySize)

	_, err = New(make([]byte, KeySize))
	require.NoError(t, err)
}

func TestGamma(t *testing.T) {
	c := &Cipher{}

	a := [3]uint32{0, 0, 0}
	c.gamma(&a)
	require.Equal(t, [3]uint32{0xffffffff, 0xffffffff, 0xffffffff}, a)

	b := [3]uint32{0x01234567, 0x89abcdef, 0xfedcba98}
	c.gamma(&b)
	require.Equal(t, [3]uint32{0x88888888, 0x77777777, 0x89abcdef}, b)
}

func TestMu(t *testing.T) {
	c := &Cipher{}
	a := [3]uint32{0x01010101, 0x02020202, 0x03030303}
	c.mu(&a)
	require.Equal(t, [3]uint32{0xc0c0c0c0, 0x40404040, 0x80808080}, a)
}

func TestSingleBlockKnownAnswerVectors(t *testing.T) {
	cases := []struct {
		key             []byte
		plain           []byte
		w0, w1, w2 uint32
	}{
		{
			key:   keyFromWords(0, 0, 0),
			plain: wordsToBlock(1, 1, 1),
			w0:    0x4059c76e, w1: 0x83ae9dc4, w2: 0xad21ecf7,
		},
		{
			key:   keyFromWords(0xdef01234, 0x456789ab, 0xbcdef012),
			plain: wordsToBlock(0x23456789, 0x9abcdef0, 0x01234567),
			w0:    0x0aa55dbb, w1: 0x9cdddb6d, w2: 0x7cdb76b2,
		},
	}

	for _, tc := range cases {
		c, err := New(tc.key)
		require.NoError(t, err)

		got := make([]byte, BlockSize)
		c.EncryptBlock(got, tc.plain)
		w0, w1, w2 := blockToWords(got)
		require.Equal(t, tc.w0, w0)
		require.Equal(t, tc.w1, w1)
		require.Equal(t, tc.w2, w2)

		back := make([]byte, BlockSize)
		c.DecryptBlock(back, got)
		require.Equal(t, tc.plain, back)
	}
}

func TestBlockSize(t *testing.T) {
	c, err := New(make([]byte, KeySize))
	require.NoError(t, err)
	require.Equal(t, 12, c.BlockSize())
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
	c, err := New(make([]byte, KeySize))
	require.NoError(t, err)
	c.Destroy()
	require.Equal(t, [3]uint32{0, 0, 0}, c.k)
	require.Equal(t, [3]uint32{0, 0, 0}, c.ki)
}
