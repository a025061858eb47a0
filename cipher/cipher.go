// Package cipher defines the capability every block primitive in this
// module exposes to the mode framework: a block size and an
// encrypt/decrypt pair operating on fixed-size buffers. Blowfish, GOST
// and 3-Way each implement it so package mode can be written once
// instead of once per algorithm.
package cipher

// Block is the shared surface the mode package drives. EncryptBlock and
// DecryptBlock must accept dst == src (in-place transform).
type Block interface {
	// BlockSize returns the cipher's fixed block length in bytes.
	BlockSize() int

	// EncryptBlock writes the encryption of src into dst. Both slices
	// must be at least BlockSize() long.
	EncryptBlock(dst, src []byte)

	// DecryptBlock writes the decryption of src into dst. Both slices
	// must be at least BlockSize() long.
	DecryptBlock(dst, src []byte)
}

// Destroyer is implemented by ciphers that hold key-schedule memory
// worth wiping explicitly rather than leaving to the garbage collector.
type Destroyer interface {
	// Destroy overwrites the cipher's key schedule so it cannot be
	// recovered by inspecting freed memory. The cipher must not be used
	// afterwards.
	Destroy()
}
