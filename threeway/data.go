package threeway

// RoundCount is the number of full rounds 3-Way applies before the
// closing theta, per original_source/Crypto/Way3/Way3.cpp's Nmbr.
const RoundCount = 11

// ercon and drcon are the encryption/decryption round constants, one
// per round plus a twelfth entry consumed by the closing theta step.
// Values as declared in original_source/Crypto/Way3/Way3.cpp.
var ercon = [RoundCount + 1]uint32{
	0x0b0b, 0x1616, 0x2c2c, 0x5858, 0xb0b0, 0x7171,
	0xe2e2, 0xd5d5, 0xbbbb, 0x6767, 0xcece, 0x8d8d,
}

var drcon = [RoundCount + 1]uint32{
	0xb1b1, 0x7373, 0xe6e6, 0xdddd, 0xabab, 0x4747,
	0x8e8e, 0x0d0d, 0x1a1a, 0x3434, 0x6868, 0xd0d0,
}
