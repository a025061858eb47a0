// Package mode layers ECB and CBC over any cipher.Block implementation:
// bit-padding on encrypt, padding-index trimming on decrypt, IV
// generation and embedding for CBC. Blowfish, gost and threeway each
// satisfy cipher.Block, so this package is written once instead of
// once per algorithm.
//
// Grounded on Qwertymart-crypto/lab_1/cipher_modes.go (ECB/CBC block
// iteration shape) and lab_3/padding/padding.go (pad/unpad as a small
// pair of pure functions), generalized to this library's bit-padding
// scheme and its shared cipher.Block capability.
package mode

import (
	"github.com/piotrpsz/crypto/bytesutil"
	"github.com/piotrpsz/crypto/cipher"
)

// Mode names the two modes of operation this package implements.
// Kept to the two spec.md names; the teacher's own enum additionally
// carries PCBC/CFB/OFB/CTR/RandomDelta, which are out of scope here.
type Mode int

const (
	ECB Mode = iota
	CBC
)

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	default:
		return "Unknown"
	}
}

// paddedLength returns nbytes rounded up to the next multiple of block,
// or nbytes unchanged when it is already a multiple. Computed as
// nbytes + (block - nbytes%block) % block rather than the simpler
// nbytes + nbytes%block, which overshoots whenever the residue is more
// than one byte.
func paddedLength(nbytes, block int) int {
	return nbytes + (block-nbytes%block)%block
}

// pad copies data into a padded-length work buffer, appending the
// bit-padding marker (0x80 followed by zeros) when padding is needed.
func pad(data []byte, block int) []byte {
	padded := paddedLength(len(data), block)
	buf := make([]byte, padded)
	copy(buf, data)
	if padded != len(data) {
		buf[len(data)] = bytesutil.PaddingByte
	}
	return buf
}

// unpad trims buf at its padding index when one is found, otherwise
// returns it at its original length. Best-effort: see bytesutil's
// PaddingIndex for the ambiguity this can't resolve.
func unpad(buf []byte, originalLen int) []byte {
	if i := bytesutil.PaddingIndex(buf); i >= 0 {
		return buf[:i]
	}
	return buf[:originalLen]
}

// EncryptECB pads data to a block-size multiple and encrypts it block
// by block. Returns nil for nil or empty input without touching c.
func EncryptECB(c cipher.Block, data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	block := c.BlockSize()
	buf := pad(data, block)
	out := make([]byte, len(buf))
	for off := 0; off < len(buf); off += block {
		c.EncryptBlock(out[off:off+block], buf[off:off+block])
	}
	return out
}

// DecryptECB decrypts data block by block and trims the bit-padding
// found at the end of the result. Returns nil for nil or empty input.
func DecryptECB(c cipher.Block, data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	block := c.BlockSize()
	out := make([]byte, len(data))
	for off := 0; off < len(data); off += block {
		c.DecryptBlock(out[off:off+block], data[off:off+block])
	}
	return unpad(out, len(data))
}

// EncryptCBC pads data, chains blocks under XOR feedback starting from
// iv (a fresh random IV is generated when iv is nil, and its scratch
// buffer is wiped before returning), and returns the IV followed by the
// ciphertext blocks. Returns nil for nil or empty
// input, including when iv is nil — no IV-only output is produced.
func EncryptCBC(c cipher.Block, data []byte, iv []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	block := c.BlockSize()

	feedback := make([]byte, block)
	if iv == nil {
		bytesutil.RandomBytes(feedback)
		defer bytesutil.ClearBytes(feedback)
	} else {
		copy(feedback, iv)
	}

	buf := pad(data, block)
	out := make([]byte, block+len(buf))
	copy(out[:block], feedback)

	xored := make([]byte, block)
	for off := 0; off < len(buf); off += block {
		xorBytes(xored, buf[off:off+block], feedback)
		dst := out[block+off : block+off+block]
		c.EncryptBlock(dst, xored)
		feedback = dst
	}
	return out
}

// DecryptCBC treats the first block of data as the IV, decrypts the
// remaining blocks under XOR feedback, and trims the bit-padding.
// Returns nil for nil or empty input.
func DecryptCBC(c cipher.Block, data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	block := c.BlockSize()
	feedback := data[:block]
	ciphertext := data[block:]

	out := make([]byte, len(ciphertext))
	plain := make([]byte, block)
	for off := 0; off < len(ciphertext); off += block {
		current := ciphertext[off : off+block]
		c.DecryptBlock(plain, current)
		xorBytes(out[off:off+block], plain, feedback)
		feedback = current
	}
	return unpad(out, len(ciphertext))
}

// xorBytes writes a[i]^b[i] into dst. Byte-wise XOR here is equivalent
// to the word-wise XOR the block's 32-bit-word view describes, since
// XOR is bit-linear and both sides share the same byte/word packing.
func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
