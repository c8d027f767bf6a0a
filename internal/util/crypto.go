package util

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	kdfSalt       = "expense-ledger/field-cipher"
	kdfIterations = 10_000
)

// FieldCipher encrypts short values (audit paths) with AES-256-GCM. The key
// is derived once from the configured passphrase.
type FieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher returns nil for an empty key; a nil cipher stores values
// in plaintext.
func NewFieldCipher(key string) (*FieldCipher, error) {
	if key == "" {
		return nil, nil
	}
	derived := pbkdf2.Key([]byte(key), []byte(kdfSalt), kdfIterations, 32, sha256.New)

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return &FieldCipher{aead: aead}, nil
}

// Seal returns nonce+ciphertext.
func (f *FieldCipher) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, f.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}
	return f.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal.
func (f *FieldCipher) Open(data []byte) ([]byte, error) {
	ns := f.aead.NonceSize()
	if len(data) < ns {
		return nil, fmt.Errorf("cipher too short")
	}
	plaintext, err := f.aead.Open(nil, data[:ns], data[ns:], nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}

// EncryptString seals s and encodes it as base64. A nil cipher returns s.
func (f *FieldCipher) EncryptString(s string) (string, error) {
	if f == nil {
		return s, nil
	}
	sealed, err := f.Seal([]byte(s))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (f *FieldCipher) DecryptString(s string) (string, error) {
	if f == nil {
		return s, nil
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	plain, err := f.Open(raw)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
