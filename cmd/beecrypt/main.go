// Command beecrypt is a small demonstration driver for the block-cipher
// library: pick an algorithm and a mode from flags, then either encrypt
// stdin and print the ciphertext in hex, or decrypt hex from stdin and
// write the raw plaintext. It exercises the library end to
// end the way a one-file smoke test would, but is not part of the
// tested core — see mode/mode_test.go and the per-cipher test files
// for the library's own test coverage.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	hexcodec "github.com/tmthrgd/go-hex"

	"github.com/piotrpsz/crypto/blowfish"
	"github.com/piotrpsz/crypto/cipher"
	"github.com/piotrpsz/crypto/gost"
	"github.com/piotrpsz/crypto/mode"
	"github.com/piotrpsz/crypto/threeway"
)

var log = logrus.New()

var (
	algFlag     = flag.String("alg", "blowfish", "cipher to use: blowfish|gost|threeway")
	modeFlag    = flag.String("mode", "cbc", "mode of operation: ecb|cbc")
	keyFlag     = flag.String("key", "", "key, as raw text")
	ivFlag      = flag.String("iv", "", "hex-encoded IV for CBC (omit to auto-generate on encrypt)")
	decryptFlag = flag.Bool("decrypt", false, "decrypt stdin (hex) instead of encrypting")
)

func main() {
	flag.Parse()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	c, err := newCipher(*algFlag, []byte(*keyFlag))
	if err != nil {
		log.WithError(err).Fatal("could not build cipher")
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.WithError(err).Fatal("could not read stdin")
	}

	if *decryptFlag {
		runDecrypt(c, input)
		return
	}
	runEncrypt(c, input)
}

func newCipher(alg string, key []byte) (cipher.Block, error) {
	switch alg {
	case "blowfish":
		return blowfish.New(key)
	case "gost":
		return gost.New(key)
	case "threeway":
		return threeway.New(key)
	default:
		return nil, fmt.Errorf("beecrypt: unknown algorithm %q", alg)
	}
}

func runEncrypt(c cipher.Block, plain []byte) {
	var iv []byte
	if *ivFlag != "" {
		decoded, err := hexcodec.DecodeString(*ivFlag)
		if err != nil {
			log.WithError(err).Fatal("invalid -iv")
		}
		iv = decoded
	}

	var out []byte
	switch *modeFlag {
	case "ecb":
		out = mode.EncryptECB(c, plain)
	case "cbc":
		out = mode.EncryptCBC(c, plain, iv)
	default:
		log.Fatalf("unknown mode %q", *modeFlag)
	}

	log.WithFields(logrus.Fields{"alg": *algFlag, "mode": *modeFlag, "bytes": len(out)}).Info("encrypted")
	fmt.Println(hexcodec.EncodeToString(out))
}

func runDecrypt(c cipher.Block, hexInput []byte) {
	data, err := hexcodec.DecodeString(trimNewline(hexInput))
	if err != nil {
		log.WithError(err).Fatal("stdin is not valid hex")
	}

	var out []byte
	switch *modeFlag {
	case "ecb":
		out = mode.DecryptECB(c, data)
	case "cbc":
		out = mode.DecryptCBC(c, data)
	default:
		log.Fatalf("unknown mode %q", *modeFlag)
	}

	log.WithFields(logrus.Fields{"alg": *algFlag, "mode": *modeFlag, "bytes": len(out)}).Info("decrypted")
	os.Stdout.Write(out)
}

func trimNewline(b []byte) string {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return string(b)
}
