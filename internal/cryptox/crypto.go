// Package cryptox seals small blobs (the persisted console session) under a
// passphrase.
//
// Layout of a sealed blob:
//
//	salt (16 bytes) | nonce (24 bytes) | XChaCha20-Poly1305 ciphertext
//
// The key is derived from the passphrase and salt with Argon2id.
package cryptox

import (
	"errors"

	"github.com/dmitrijs2005/storerating/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const saltSize = 16

var (
	ErrEmptyPassphrase = errors.New("empty passphrase")
	ErrMalformed       = errors.New("malformed sealed data")
)

// DeriveKey stretches passphrase into a 32-byte key.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, chacha20poly1305.KeySize)
}

// Seal encrypts plaintext under passphrase. Every call uses a fresh salt and
// nonce, so sealing the same input twice yields different output.
func Seal(plaintext, passphrase []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}

	salt := common.GenerateRandByteArray(saltSize)
	key := DeriveKey(passphrase, salt)
	defer common.WipeByteArray(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := common.GenerateRandByteArray(aead.NonceSize())

	out := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, nil), nil
}

// Open reverses Seal. A wrong passphrase or tampered input returns an error.
func Open(sealed, passphrase []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}
	if len(sealed) < saltSize+chacha20poly1305.NonceSizeX {
		return nil, ErrMalformed
	}

	salt := sealed[:saltSize]
	nonce := sealed[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	ciphertext := sealed[saltSize+chacha20poly1305.NonceSizeX:]

	key := DeriveKey(passphrase, salt)
	defer common.WipeByteArray(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, ciphertext, nil)
}
