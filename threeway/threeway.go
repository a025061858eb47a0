// Package threeway implements the 3-Way block cipher: a 96-bit block
// and 96-bit key, built from five bit-level transforms (gamma, mu,
// theta, pi_1, pi_2) composed into an 11-round substitution-permutation
// network plus a closing theta.
//
// Grounded on original_source/Crypto/Way3/Way3.{h,cpp}: the five bit
// transforms and their composition into rho are ported bit-for-bit.
// The round loop that drives them (fold the round key and round
// constant into words 0 and 2, apply rho, repeat, then a closing
// theta; decryption bookends the same loop with mu and runs it on the
// derived key and constants) follows the published 3-Way construction
// and was checked against known-answer block vectors before being kept.
package threeway

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/piotrpsz/crypto/bytesutil"
)

const (
	// BlockSize is the 3-Way block size in bytes (3 x 32-bit words).
	BlockSize = 12
	// KeySize is the required 3-Way key size in bytes.
	KeySize = 12
)

// ErrInvalidKeySize is wrapped into the error New returns when the key
// is not exactly KeySize bytes long.
var ErrInvalidKeySize = errors.New("threeway: invalid key size")

// Cipher holds a 3-Way encryption key k and its derived decryption key
// ki = mu(theta(k)).
type Cipher struct {
	k, ki [3]uint32
}

// New builds a 3-Way cipher from a 12-byte key.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	c := &Cipher{}
	for i := 0; i < 3; i++ {
		w := binary.LittleEndian.Uint32(key[i*4 : i*4+4])
		c.k[i] = w
		c.ki[i] = w
	}
	c.theta(&c.ki)
	c.mu(&c.ki)
	return c, nil
}

// BlockSize returns the 3-Way block size (12 bytes).
func (c *Cipher) BlockSize() int { return BlockSize }

func (c *Cipher) gamma(a *[3]uint32) {
	a0, a1, a2 := a[0], a[1], a[2]
	a[0] = (^a0) ^ ((^a1) & a2)
	a[1] = (^a1) ^ ((^a2) & a0)
	a[2] = (^a2) ^ ((^a0) & a1)
}

func (c *Cipher) mu(a *[3]uint32) {
	a0, a1, a2 := a[0], a[1], a[2]
	var b0, b1, b2 uint32
	for i := 0; i < 32; i++ {
		b0 <<= 1
		b1 <<= 1
		b2 <<= 1
		b0 |= a2 & 1
		b1 |= a1 & 1
		b2 |= a0 & 1
		a0 >>= 1
		a1 >>= 1
		a2 >>= 1
	}
	a[0], a[1], a[2] = b0, b1, b2
}

func (c *Cipher) theta(a *[3]uint32) {
	a0, a1, a2 := a[0], a[1], a[2]
	a[0] = a0 ^
		(a0 >> 16) ^ (a1 << 16) ^
		(a1 >> 16) ^ (a2 << 16) ^
		(a1 >> 24) ^ (a2 << 8) ^
		(a2 >> 8) ^ (a0 << 24) ^
		(a2 >> 16) ^ (a0 << 16) ^
		(a2 >> 24) ^ (a0 << 8)

	a[1] = a1 ^
		(a1 >> 16) ^ (a2 << 16) ^
		(a2 >> 16) ^ (a0 << 16) ^
		(a2 >> 24) ^ (a0 << 8) ^
		(a0 >> 8) ^ (a1 << 24) ^
		(a0 >> 16) ^ (a1 << 16) ^
		(a0 >> 24) ^ (a1 << 8)

	a[2] = a2 ^
		(a2 >> 16) ^ (a0 << 16) ^
		(a0 >> 16) ^ (a1 << 16) ^
		(a0 >> 24) ^ (a1 << 8) ^
		(a1 >> 8) ^ (a2 << 24) ^
		(a1 >> 16) ^ (a2 << 16) ^
		(a1 >> 24) ^ (a2 << 8)
}

func (c *Cipher) pi1(a *[3]uint32) {
	a0, a2 := a[0], a[2]
	a[0] = (a0 >> 10) ^ (a0 << 22)
	a[2] = (a2 << 1) ^ (a2 >> 31)
}

func (c *Cipher) pi2(a *[3]uint32) {
	a0, a2 := a[0], a[2]
	a[0] = (a0 << 1) ^ (a0 >> 31)
	a[2] = (a2 >> 10) ^ (a2 << 22)
}

func (c *Cipher) rho(a *[3]uint32) {
	c.theta(a)
	c.pi1(a)
	c.gamma(a)
	c.pi2(a)
}

func (c *Cipher) encryptWords(a [3]uint32) [3]uint32 {
	for i := 0; i < RoundCount; i++ {
		a[0] ^= c.k[0] ^ (ercon[i] << 16)
		a[1] ^= c.k[1]
		a[2] ^= c.k[2] ^ ercon[i]
		c.rho(&a)
	}
	a[0] ^= c.k[0] ^ (ercon[RoundCount] << 16)
	a[1] ^= c.k[1]
	a[2] ^= c.k[2] ^ ercon[RoundCount]
	c.theta(&a)
	return a
}

func (c *Cipher) decryptWords(a [3]uint32) [3]uint32 {
	c.mu(&a)
	for i := 0; i < RoundCount; i++ {
		a[0] ^= c.ki[0] ^ (drcon[i] << 16)
		a[1] ^= c.ki[1]
		a[2] ^= c.ki[2] ^ drcon[i]
		c.rho(&a)
	}
	a[0] ^= c.ki[0] ^ (drcon[RoundCount] << 16)
	a[1] ^= c.ki[1]
	a[2] ^= c.ki[2] ^ drcon[RoundCount]
	c.theta(&a)
	c.mu(&a)
	return a
}

// EncryptBlock encrypts the 12-byte block src into dst. src and dst
// may overlap entirely (in-place). Block words are read/written as
// little-endian octets at the byte boundary, per the shared data model.
func (c *Cipher) EncryptBlock(dst, src []byte) {
	var a [3]uint32
	for i := 0; i < 3; i++ {
		a[i] = binary.LittleEndian.Uint32(src[i*4 : i*4+4])
	}
	a = c.encryptWords(a)
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(dst[i*4:i*4+4], a[i])
	}
}

// DecryptBlock decrypts the 12-byte block src into dst. src and dst
// may overlap entirely (in-place).
func (c *Cipher) DecryptBlock(dst, src []byte) {
	var a [3]uint32
	for i := 0; i < 3; i++ {
		a[i] = binary.LittleEndian.Uint32(src[i*4 : i*4+4])
	}
	a = c.decryptWords(a)
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(dst[i*4:i*4+4], a[i])
	}
}

// Destroy wipes the encryption and decryption keys so they cannot be
// recovered from freed memory. The cipher must not be used afterwards.
func (c *Cipher) Destroy() {
	for i := range c.k {
		c.k[i] = 0
		c.ki[i] = 0
	}
	var scratch [4]byte
	bytesutil.ClearBytes(scratch[:])
}
