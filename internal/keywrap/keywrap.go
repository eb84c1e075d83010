package keywrap

import (
	"crypto/rsa"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"notelock/internal/crypto"
	"notelock/internal/domain"
	"notelock/internal/util/memzero"
)

// blobVersion is the current wrapped-blob format version.
const blobVersion = 1

// maxMemKiB caps the Argon2id memory cost a blob may demand (1 GiB).
const maxMemKiB = 1 << 20

const kdfArgon2id = "argon2id"

// Params are the Argon2id cost parameters baked into each blob.
type Params struct {
	Time    uint32
	MemKiB  uint32
	Threads uint8
}

// DefaultParams is the interactive-login cost profile: a few hundred
// milliseconds on commodity hardware.
func DefaultParams() Params {
	return Params{Time: 3, MemKiB: 64 * 1024, Threads: 4}
}

// blob is the self-describing wrapped private key format. Salt, nonce and
// KDF parameters travel with the ciphertext so the blob alone plus the
// passphrase suffice to unwrap.
type blob struct {
	V       int    `json:"v"`
	KDF     string `json:"kdf"`
	Time    uint32 `json:"time"`
	MemKiB  uint32 `json:"mem_kib"`
	Threads uint8  `json:"threads"`
	Salt    []byte `json:"salt"`
	Nonce   []byte `json:"nonce"`
	Cipher  []byte `json:"cipher"`
}

// deriveKEK derives the key-encryption key from a passphrase and salt.
func deriveKEK(passphrase string, salt []byte, p Params) []byte {
	return argon2.IDKey([]byte(passphrase), salt, p.Time, p.MemKiB, p.Threads, chacha20poly1305.KeySize)
}

// Wrap seals priv under a key derived from passphrase and returns the
// self-describing blob.
func Wrap(priv *rsa.PrivateKey, passphrase string, p Params) ([]byte, error) {
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	nonce, err := crypto.GenerateNonce()
	if err != nil {
		return nil, err
	}

	kek := deriveKEK(passphrase, salt, p)
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return nil, err
	}

	der := crypto.MarshalPrivateKey(priv)
	ct := aead.Seal(nil, nonce, der, salt)
	memzero.Zero(der)

	return json.Marshal(blob{
		V:       blobVersion,
		KDF:     kdfArgon2id,
		Time:    p.Time,
		MemKiB:  p.MemKiB,
		Threads: p.Threads,
		Salt:    salt,
		Nonce:   nonce,
		Cipher:  ct,
	})
}

// Unwrap opens a blob produced by Wrap. Wrong passphrase, tampered
// ciphertext and truncated blobs all return domain.ErrAuthenticationFailed.
func Unwrap(wrapped []byte, passphrase string) (*rsa.PrivateKey, error) {
	var bl blob
	if err := json.Unmarshal(wrapped, &bl); err != nil {
		return nil, domain.ErrAuthenticationFailed
	}
	if bl.V > blobVersion {
		return nil, fmt.Errorf("unsupported wrapped key version %d", bl.V)
	}
	if bl.KDF != kdfArgon2id {
		return nil, fmt.Errorf("unsupported kdf %q", bl.KDF)
	}
	// Cost parameters come from the untrusted blob: reject values argon2
	// would refuse and cap the memory a blob can demand.
	if bl.Time < 1 || bl.Threads < 1 || bl.MemKiB > maxMemKiB {
		return nil, domain.ErrAuthenticationFailed
	}
	if len(bl.Nonce) != chacha20poly1305.NonceSize {
		return nil, domain.ErrAuthenticationFailed
	}

	kek := deriveKEK(passphrase, bl.Salt, Params{Time: bl.Time, MemKiB: bl.MemKiB, Threads: bl.Threads})
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return nil, domain.ErrAuthenticationFailed
	}
	der, err := aead.Open(nil, bl.Nonce, bl.Cipher, bl.Salt)
	if err != nil {
		return nil, domain.ErrAuthenticationFailed
	}
	defer memzero.Zero(der)

	priv, err := crypto.ParsePrivateKey(der)
	if err != nil {
		return nil, domain.ErrAuthenticationFailed
	}
	return priv, nil
}
