package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"notelock/internal/domain"
)

const (
	// ContentKeyBytes is the symmetric content key size (256-bit).
	ContentKeyBytes = chacha20poly1305.KeySize
	// NonceBytes is the AEAD nonce size (96-bit).
	NonceBytes = chacha20poly1305.NonceSize
	// SaltBytes is the KDF salt size.
	SaltBytes = 16
)

// GenerateContentKey returns a fresh symmetric key for one payload.
func GenerateContentKey() ([]byte, error) {
	return randomBytes(ContentKeyBytes)
}

// GenerateNonce returns a fresh AEAD nonce.
func GenerateNonce() ([]byte, error) {
	return randomBytes(NonceBytes)
}

// GenerateSalt returns a fresh KDF salt.
func GenerateSalt() ([]byte, error) {
	return randomBytes(SaltBytes)
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEntropyUnavailable, err)
	}
	return b, nil
}
