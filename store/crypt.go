package store

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters.
const (
	scryptN  = 1 << 15
	scryptR  = 8
	scryptP  = 1
	saltSize = 16
)

// errSealed reports a blob that cannot be opened with the given passphrase.
var errSealed = errors.New("cannot open sealed data")

func deriveKey(passphrase string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, chacha20poly1305.KeySize)
}

// seal encrypts plaintext with a key derived from passphrase. The result is
// the base64 encoding of salt, nonce and ciphertext concatenated.
func seal(passphrase, plaintext string) (string, error) {
	salt := make([]byte, saltSize, saltSize+chacha20poly1305.NonceSizeX+len(plaintext)+chacha20poly1305.Overhead)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	blob := append(salt, nonce...)
	blob = aead.Seal(blob, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// unseal reverses seal. Any failure, including a wrong passphrase, is reported as errSealed.
func unseal(passphrase, sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(blob) < saltSize+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return "", errSealed
	}
	salt, rest := blob[:saltSize], blob[saltSize:]
	nonce, ciphertext := rest[:chacha20poly1305.NonceSizeX], rest[chacha20poly1305.NonceSizeX:]

	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return "", errSealed
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return "", errSealed
	}
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errSealed
	}
	return string(plain), nil
}
