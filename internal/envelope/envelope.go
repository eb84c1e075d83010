package envelope

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"notelock/internal/crypto"
	"notelock/internal/domain"
	"notelock/internal/util/memzero"
)

const (
	// Version1 is the current payload format version.
	Version1 = 1
	// AlgV1 identifies both ciphers of the version 1 scheme.
	AlgV1 = "RSA-OAEP-SHA256+CHACHA20-POLY1305"
)

// Encrypt seals plaintext for a single recipient.
func Encrypt(plaintext []byte, recipient *rsa.PublicKey) (domain.EncryptedPayload, error) {
	ct, iv, wrapped, err := seal(plaintext, map[domain.OwnerID]*rsa.PublicKey{"": recipient})
	if err != nil {
		return domain.EncryptedPayload{}, err
	}
	return domain.EncryptedPayload{
		Version:           Version1,
		Algorithm:         AlgV1,
		Ciphertext:        ct,
		IV:                iv,
		WrappedContentKey: wrapped[""],
	}, nil
}

// EncryptForMany seals plaintext once and wraps the content key for every
// recipient in the map, keyed by recipient id.
func EncryptForMany(plaintext []byte, recipients map[domain.OwnerID]*rsa.PublicKey) (domain.MultiRecipientEncryptedPayload, error) {
	if len(recipients) == 0 {
		return domain.MultiRecipientEncryptedPayload{}, fmt.Errorf("no recipients")
	}
	ct, iv, wrapped, err := seal(plaintext, recipients)
	if err != nil {
		return domain.MultiRecipientEncryptedPayload{}, err
	}
	return domain.MultiRecipientEncryptedPayload{
		Version:            Version1,
		Algorithm:          AlgV1,
		Ciphertext:         ct,
		IV:                 iv,
		WrappedContentKeys: wrapped,
	}, nil
}

// Decrypt reverses Encrypt.
func Decrypt(payload domain.EncryptedPayload, priv *rsa.PrivateKey) ([]byte, error) {
	if err := checkScheme(payload.Version, payload.Algorithm); err != nil {
		return nil, err
	}
	return open(payload.Ciphertext, payload.IV, payload.WrappedContentKey, priv)
}

// DecryptFromMany recovers the plaintext for selfID. It fails with
// domain.ErrMissingRecipientKey when the payload carries no entry for
// selfID; it never falls back to another recipient's entry.
func DecryptFromMany(payload domain.MultiRecipientEncryptedPayload, selfID domain.OwnerID, priv *rsa.PrivateKey) ([]byte, error) {
	if err := checkScheme(payload.Version, payload.Algorithm); err != nil {
		return nil, err
	}
	wrapped, ok := payload.WrappedContentKeys[selfID]
	if !ok {
		return nil, domain.ErrMissingRecipientKey
	}
	return open(payload.Ciphertext, payload.IV, wrapped, priv)
}

// seal does the shared work: fresh content key and nonce, one AEAD pass,
// one OAEP wrap per recipient.
func seal(plaintext []byte, recipients map[domain.OwnerID]*rsa.PublicKey) (ct, iv []byte, wrapped map[domain.OwnerID][]byte, err error) {
	contentKey, err := crypto.GenerateContentKey()
	if err != nil {
		return nil, nil, nil, err
	}
	defer memzero.Zero(contentKey)

	iv, err = crypto.GenerateNonce()
	if err != nil {
		return nil, nil, nil, err
	}

	aead, err := chacha20poly1305.New(contentKey)
	if err != nil {
		return nil, nil, nil, err
	}
	ct = aead.Seal(nil, iv, plaintext, nil)

	wrapped = make(map[domain.OwnerID][]byte, len(recipients))
	for id, pub := range recipients {
		wk, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, contentKey, nil)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("wrap content key for %q: %w", id, err)
		}
		wrapped[id] = wk
	}
	return ct, iv, wrapped, nil
}

// open unwraps the content key and opens the ciphertext. Every failure maps
// to domain.ErrDecryptionFailed.
func open(ct, iv, wrappedKey []byte, priv *rsa.PrivateKey) ([]byte, error) {
	contentKey, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, wrappedKey, nil)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}
	defer memzero.Zero(contentKey)

	if len(contentKey) != chacha20poly1305.KeySize || len(iv) != chacha20poly1305.NonceSize {
		return nil, domain.ErrDecryptionFailed
	}
	aead, err := chacha20poly1305.New(contentKey)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}
	pt, err := aead.Open(nil, iv, ct, nil)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}
	return pt, nil
}

// checkScheme rejects unknown versions and algorithms explicitly instead of
// coercing them. Version tags are public metadata, not an oracle.
func checkScheme(version int, alg string) error {
	if version != Version1 {
		return fmt.Errorf("unsupported payload version %d", version)
	}
	if alg != AlgV1 {
		return fmt.Errorf("unsupported payload algorithm %q", alg)
	}
	return nil
}
