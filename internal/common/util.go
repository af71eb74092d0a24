package common

import "crypto/rand"

// GenerateRandByteArray returns n bytes from crypto/rand. It panics if the
// system random source fails, which crypto/rand documents as unrecoverable.
func GenerateRandByteArray(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray zeroes b in place. Used for passwords read from the terminal.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
