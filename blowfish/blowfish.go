// Package blowfish implements the Blowfish block cipher: a 64-bit
// block, variable-length key (4-56 bytes), 16-round Feistel network.
//
// Grounded on original_source/Crypto/Blowfish/Blowfish.{h,cpp}, with the
// key-dependent S-box/P-array schedule and the round function ported
// bit-for-bit; the Go rendering follows the interface shape of
// Qwertymart-crypto/lab_1 (SetupKeys/EncryptBlock/DecryptBlock on a
// value receiver type) generalized to the shared cipher.Block capability.
package blowfish

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/piotrpsz/crypto/bytesutil"
)

const (
	// BlockSize is the Blowfish block size in bytes.
	BlockSize = 8
	// RoundCount is the number of Feistel rounds.
	RoundCount = 16
	// MinKeySize and MaxKeySize bound the accepted key length in bytes.
	MinKeySize = 4
	MaxKeySize = 56
)

// ErrInvalidKeySize is wrapped into the error New returns when the key
// length falls outside [MinKeySize, MaxKeySize].
var ErrInvalidKeySize = errors.New("blowfish: invalid key size")

// Cipher holds a Blowfish key schedule. It is immutable once built and
// safe for concurrent use across instances operating on disjoint
// buffers.
type Cipher struct {
	p [RoundCount + 2]uint32
	s [4][256]uint32
}

// New builds a Blowfish cipher from a 4-56 byte key, expanding P and S
// via repeated self-encryption as the original key schedule does.
func New(key []byte) (*Cipher, error) {
	if len(key) < MinKeySize || len(key) > MaxKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want [%d,%d]", ErrInvalidKeySize, len(key), MinKeySize, MaxKeySize)
	}

	c := &Cipher{
		p: piP,
		s: [4][256]uint32{piS0, piS1, piS2, piS3},
	}

	k := 0
	for i := range c.p {
		var d uint32
		for j := 0; j < 4; j++ {
			d = (d << 8) | uint32(key[k])
			k++
			if k >= len(key) {
				k = 0
			}
		}
		c.p[i] ^= d
	}

	var l, r uint32
	for i := 0; i < RoundCount+2; i += 2 {
		l, r = c.encryptWords(l, r)
		c.p[i], c.p[i+1] = l, r
	}
	for box := 0; box < 4; box++ {
		for i := 0; i < 256; i += 2 {
			l, r = c.encryptWords(l, r)
			c.s[box][i], c.s[box][i+1] = l, r
		}
	}
	return c, nil
}

// BlockSize returns the Blowfish block size (8 bytes).
func (c *Cipher) BlockSize() int { return BlockSize }

func (c *Cipher) f(x uint32) uint32 {
	d := x & 0xff
	x >>= 8
	cc := x & 0xff
	x >>= 8
	b := x & 0xff
	x >>= 8
	a := x & 0xff
	return ((c.s[0][a] + c.s[1][b]) ^ c.s[2][cc]) + c.s[3][d]
}

func (c *Cipher) encryptWords(xl, xr uint32) (uint32, uint32) {
	for i := 0; i < RoundCount; i += 2 {
		xl ^= c.p[i]
		xr = c.f(xl) ^ xr
		xr ^= c.p[i+1]
		xl = c.f(xr) ^ xl
	}
	return xr ^ c.p[17], xl ^ c.p[16]
}

func (c *Cipher) decryptWords(xl, xr uint32) (uint32, uint32) {
	for i := RoundCount + 1; i > 1; i -= 2 {
		xl ^= c.p[i]
		xr = c.f(xl) ^ xr
		xr ^= c.p[i-1]
		xl = c.f(xr) ^ xl
	}
	return xr ^ c.p[0], xl ^ c.p[1]
}

// EncryptBlock encrypts the 8-byte block src into dst. src and dst may
// overlap entirely (in-place). Block words are read/written as
// little-endian octets at the byte boundary, per the shared data model.
func (c *Cipher) EncryptBlock(dst, src []byte) {
	xl := binary.LittleEndian.Uint32(src[0:4])
	xr := binary.LittleEndian.Uint32(src[4:8])
	xl, xr = c.encryptWords(xl, xr)
	binary.LittleEndian.PutUint32(dst[0:4], xl)
	binary.LittleEndian.PutUint32(dst[4:8], xr)
}

// DecryptBlock decrypts the 8-byte block src into dst. src and dst may
// overlap entirely (in-place).
func (c *Cipher) DecryptBlock(dst, src []byte) {
	xl := binary.LittleEndian.Uint32(src[0:4])
	xr := binary.LittleEndian.Uint32(src[4:8])
	xl, xr = c.decryptWords(xl, xr)
	binary.LittleEndian.PutUint32(dst[0:4], xl)
	binary.LittleEndian.PutUint32(dst[4:8], xr)
}

// Destroy wipes the key schedule so it cannot be recovered from freed
// memory. The cipher must not be used afterwards.
func (c *Cipher) Destroy() {
	for i := range c.p {
		c.p[i] = 0
	}
	var scratch [4]byte
	for box := range c.s {
		for i := range c.s[box] {
			c.s[box][i] = 0
		}
	}
	bytesutil.ClearBytes(scratch[:])
}
