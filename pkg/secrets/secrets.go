package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const keySize = 32

var (
	ErrInvalidAppKey       = errors.New("secrets: app key must be 32 bytes")
	ErrInvalidScopeKey     = errors.New("secrets: scope key must be 32 bytes")
	ErrKeyDerivationFailed = errors.New("secrets: key derivation failed")
	ErrEncryptionFailed    = errors.New("secrets: encryption failed")
	ErrDecryptionFailed    = errors.New("secrets: decryption failed")
	ErrInvalidCiphertext   = errors.New("secrets: invalid ciphertext")
)

// hkdfInfo domain-separates the derived keys from any other HKDF use of
// the same input material.
var hkdfInfo = []byte("appkit/secrets/v1")

// GenerateKey returns a new 32-byte key from the system CSPRNG.
func GenerateKey() ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// deriveKey combines the app and scope keys through HKDF-SHA256. The
// scope key serves as salt so each scope lands in an unrelated key space.
func deriveKey(appKey, scopeKey []byte) ([]byte, error) {
	if len(appKey) != keySize {
		return nil, ErrInvalidAppKey
	}
	if len(scopeKey) != keySize {
		return nil, ErrInvalidScopeKey
	}

	derived := make([]byte, keySize)
	r := hkdf.New(sha256.New, appKey, scopeKey, hkdfInfo)
	if _, err := io.ReadFull(r, derived); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return derived, nil
}

// EncryptBytes encrypts plaintext under the derived compound key. The
// returned slice is nonce || ciphertext || tag.
func EncryptBytes(appKey, scopeKey, plaintext []byte) ([]byte, error) {
	key, err := deriveKey(appKey, scopeKey)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)

	aead, err := newAEAD(key)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// DecryptBytes reverses EncryptBytes. Tampered or truncated input returns
// ErrDecryptionFailed or ErrInvalidCiphertext.
func DecryptBytes(appKey, scopeKey, data []byte) ([]byte, error) {
	key, err := deriveKey(appKey, scopeKey)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)

	aead, err := newAEAD(key)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}

	if len(data) < aead.NonceSize() {
		return nil, ErrInvalidCiphertext
	}
	nonce, ciphertext := data[:aead.NonceSize()], data[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

// EncryptString encrypts and base64-encodes, for storage in text columns.
func EncryptString(appKey, scopeKey []byte, plaintext string) (string, error) {
	encrypted, err := EncryptBytes(appKey, scopeKey, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(encrypted), nil
}

// DecryptString reverses EncryptString.
func DecryptString(appKey, scopeKey []byte, ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}
	plaintext, err := DecryptBytes(appKey, scopeKey, data)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
