// Package gost implements the GOST 28147-89 block cipher: a 64-bit
// block, 256-bit key, 32-round Feistel network over four packed 4-bit
// substitution tables.
//
// Grounded on original_source/Crypto/Gost/Gost.{h,cpp}: the S-box
// packing and the round function are ported bit-for-bit, generalized
// to the shared cipher.Block capability the way blowfish.Cipher is.
package gost

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/piotrpsz/crypto/bytesutil"
)

const (
	// BlockSize is the GOST block size in bytes.
	BlockSize = 8
	// KeySize is the required GOST key size in bytes (8 x 32-bit words).
	KeySize = 32
)

// ErrInvalidKeySize is wrapped into the error New returns when the key
// is not exactly KeySize bytes long.
var ErrInvalidKeySize = errors.New("gost: invalid key size")

// Cipher holds an expanded GOST key schedule together with the four
// byte-wide substitution tables built from the standard 4-bit S-boxes.
type Cipher struct {
	k                  [8]uint32
	k87, k65, k43, k21 [256]byte
}

// New builds a GOST cipher from a 32-byte key.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	c := &Cipher{}
	for i := 0; i < 8; i++ {
		c.k[i] = binary.LittleEndian.Uint32(key[i*4 : i*4+4])
	}
	for i := 0; i < 256; i++ {
		p1 := i >> 4
		p2 := i & 15
		c.k87[i] = k8[p1]<<4 | k7[p2]
		c.k65[i] = k6[p1]<<4 | k5[p2]
		c.k43[i] = k4[p1]<<4 | k3[p2]
		c.k21[i] = k2[p1]<<4 | k1[p2]
	}
	return c, nil
}

// BlockSize returns the GOST block size (8 bytes).
func (c *Cipher) BlockSize() int { return BlockSize }

func (c *Cipher) f(x uint32) uint32 {
	w := uint32(c.k87[(x>>24)&0xff])<<24 |
		uint32(c.k65[(x>>16)&0xff])<<16 |
		uint32(c.k43[(x>>8)&0xff])<<8 |
		uint32(c.k21[x&0xff])
	return w<<11 | w>>(32-11)
}

// forwardOrder and reverseOrder are the round-key indices used by one
// 8-step pass, in the two directions the standard calls for.
var forwardOrder = [8]int{0, 1, 2, 3, 4, 5, 6, 7}
var reverseOrder = [8]int{7, 6, 5, 4, 3, 2, 1, 0}

// pass runs one 8-step half-round sequence: n2 ^= f(n1+k), n1 ^= f(n2+k),
// alternating, in the given key-index order. It mirrors the unrolled
// line pairs of the original encrypt_block/decrypt_block bodies.
func (c *Cipher) pass(n1, n2 uint32, order [8]int) (uint32, uint32) {
	for i, idx := range order {
		if i%2 == 0 {
			n2 ^= c.f(n1 + c.k[idx])
		} else {
			n1 ^= c.f(n2 + c.k[idx])
		}
	}
	return n1, n2
}

func (c *Cipher) encryptWords(n1, n2 uint32) (uint32, uint32) {
	n1, n2 = c.pass(n1, n2, forwardOrder)
	n1, n2 = c.pass(n1, n2, forwardOrder)
	n1, n2 = c.pass(n1, n2, forwardOrder)
	n1, n2 = c.pass(n1, n2, reverseOrder)
	return n2, n1
}

func (c *Cipher) decryptWords(n1, n2 uint32) (uint32, uint32) {
	n1, n2 = c.pass(n1, n2, forwardOrder)
	n1, n2 = c.pass(n1, n2, reverseOrder)
	n1, n2 = c.pass(n1, n2, reverseOrder)
	n1, n2 = c.pass(n1, n2, reverseOrder)
	return n2, n1
}

// EncryptBlock encrypts the 8-byte block src into dst. src and dst may
// overlap entirely (in-place). Block words are read/written as
// little-endian octets at the byte boundary, per the shared data model.
func (c *Cipher) EncryptBlock(dst, src []byte) {
	n1 := binary.LittleEndian.Uint32(src[0:4])
	n2 := binary.LittleEndian.Uint32(src[4:8])
	n1, n2 = c.encryptWords(n1, n2)
	binary.LittleEndian.PutUint32(dst[0:4], n1)
	binary.LittleEndian.PutUint32(dst[4:8], n2)
}

// DecryptBlock decrypts the 8-byte block src into dst. src and dst may
// overlap entirely (in-place).
func (c *Cipher) DecryptBlock(dst, src []byte) {
	n1 := binary.LittleEndian.Uint32(src[0:4])
	n2 := binary.LittleEndian.Uint32(src[4:8])
	n1, n2 = c.decryptWords(n1, n2)
	binary.LittleEndian.PutUint32(dst[0:4], n1)
	binary.LittleEndian.PutUint32(dst[4:8], n2)
}

// Destroy wipes the key schedule so it cannot be recovered from freed
// memory. The cipher must not be used afterwards.
func (c *Cipher) Destroy() {
	for i := range c.k {
		c.k[i] = 0
	}
	for i := range c.k87 {
		c.k87[i], c.k65[i], c.k43[i], c.k21[i] = 0, 0, 0, 0
	}
	var scratch [4]byte
	bytesutil.ClearBytes(scratch[:])
}
