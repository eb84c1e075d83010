// Package keywrap converts a human passphrase into protection for the
// private key.
//
// Wrap derives a key-encryption key from the passphrase with Argon2id (per
// blob random salt, tunable cost) and seals the PKCS#1 private key with
// ChaCha20-Poly1305. The output blob embeds its version, KDF parameters,
// salt and nonce, so Unwrap needs nothing but the blob and the passphrase.
//
// Unwrap collapses every failure mode after the version check into
// domain.ErrAuthenticationFailed: a wrong passphrase is indistinguishable
// from a corrupted blob.
package keywrap
